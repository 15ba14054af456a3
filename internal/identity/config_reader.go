package identity

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/temirov/fixcommits/internal/execshell"
)

const (
	gitConfigSubcommandConstant      = "config"
	gitGetRegexpFlagConstant         = "--get-regexp"
	gitConfigNoMatchExitCodeConstant = 1
)

// ConfigReader lists configured values for identity keys.
type ConfigReader struct {
	executor GitExecutor
}

// NewConfigReader constructs a ConfigReader.
func NewConfigReader(executor GitExecutor) *ConfigReader {
	return &ConfigReader{executor: executor}
}

// ReadValues returns every configured value whose key is exactly configurationKey.
// A repository without matching entries yields an empty slice.
func (reader *ConfigReader) ReadValues(executionContext context.Context, repositoryPath string, configurationKey string) ([]string, error) {
	executionResult, executionError := reader.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitConfigSubcommandConstant, gitGetRegexpFlagConstant, configurationKey},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		if isMissingConfiguration(executionError) {
			return []string{}, nil
		}
		return nil, executionError
	}
	return FilterConfigEntries(executionResult.StandardOutput, configurationKey), nil
}

// FilterConfigEntries parses `key value` lines and keeps the values whose key equals configurationKey byte for byte.
func FilterConfigEntries(output string, configurationKey string) []string {
	values := []string{}
	for _, line := range strings.Split(output, lineSeparatorConstant) {
		trimmedLine := strings.TrimSpace(line)
		separatorIndex := strings.IndexFunc(trimmedLine, unicode.IsSpace)
		if separatorIndex < 0 {
			continue
		}
		if trimmedLine[:separatorIndex] != configurationKey {
			continue
		}
		values = append(values, strings.TrimSpace(trimmedLine[separatorIndex:]))
	}
	return values
}

// git config exits with status 1 and no diagnostics when nothing matches.
func isMissingConfiguration(executionError error) bool {
	var failedError execshell.CommandFailedError
	if !errors.As(executionError, &failedError) {
		return false
	}
	return failedError.Result.ExitCode == gitConfigNoMatchExitCodeConstant &&
		len(strings.TrimSpace(failedError.Result.StandardOutput)) == 0 &&
		len(strings.TrimSpace(failedError.Result.StandardError)) == 0
}
