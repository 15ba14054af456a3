package fixer

import (
	"strings"

	"github.com/temirov/fixcommits/internal/identity"
)

const (
	defaultGitExecutableConstant           = "git"
	gitExecutableConfigurationKeyConstant  = "git_executable"
	collectorConfigurationKeyConstant      = "collector"
	squelchWarningConfigurationKeyConstant = "squelch_filter_branch_warning"
	configurationKeySeparatorConstant      = "."
)

// CommandConfiguration captures persistent settings for the identity fix command.
type CommandConfiguration struct {
	GitExecutable              string                 `mapstructure:"git_executable"`
	Collector                  identity.CollectorMode `mapstructure:"collector"`
	SquelchFilterBranchWarning bool                   `mapstructure:"squelch_filter_branch_warning"`
}

// DefaultCommandConfiguration returns baseline configuration values for the identity fix command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		GitExecutable:              defaultGitExecutableConstant,
		Collector:                  identity.CollectorModeAuto,
		SquelchFilterBranchWarning: true,
	}
}

// DefaultConfigurationValues exposes the defaults as flat configuration keys under the provided prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		joinConfigurationKey(prefix, gitExecutableConfigurationKeyConstant):  defaults.GitExecutable,
		joinConfigurationKey(prefix, collectorConfigurationKeyConstant):      string(defaults.Collector),
		joinConfigurationKey(prefix, squelchWarningConfigurationKeyConstant): defaults.SquelchFilterBranchWarning,
	}
}

// sanitize trims values and restores defaults for blank settings.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.GitExecutable = strings.TrimSpace(configuration.GitExecutable)
	if len(sanitized.GitExecutable) == 0 {
		sanitized.GitExecutable = defaultGitExecutableConstant
	}
	if len(strings.TrimSpace(string(configuration.Collector))) == 0 {
		sanitized.Collector = identity.CollectorModeAuto
	}

	return sanitized
}

func joinConfigurationKey(prefix string, key string) string {
	trimmedPrefix := strings.TrimSpace(prefix)
	if len(trimmedPrefix) == 0 {
		return key
	}
	return trimmedPrefix + configurationKeySeparatorConstant + key
}
