package fixer

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/fixcommits/internal/identity"
	"github.com/temirov/fixcommits/internal/prompt"
	pathutils "github.com/temirov/fixcommits/internal/utils/path"
)

const (
	commandUseConstant              = usageLineConstant
	commandShortDescriptionConstant = "Rewrite a wrong author or committer identity across git history"
	commandLongDescriptionConstant  = "fixcommits lists the identities found in a repository's history, asks which one is wrong and what should replace it, and after confirmation rewrites every branch and tag with git filter-branch. Without a path the current directory is used."
	maximumArgumentCountConstant    = 1
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the effective command configuration.
type ConfigurationProvider func() CommandConfiguration

// RepositoryPathResolver turns the optional positional argument into an absolute repository path.
type RepositoryPathResolver interface {
	ResolveDefault() (string, error)
	Resolve(candidatePath string) (string, error)
}

// CommandBuilder assembles the identity fix command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        ConfigurationProvider
	GitExecutor                  identity.GitExecutor
	Collector                    identity.IdentityCollector
	PathResolver                 RepositoryPathResolver
	WarningColor                 *color.Color
}

// Build constructs the cobra command that runs one identity correction.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		Args:          validateArguments,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          builder.run,
	}
	return command, nil
}

func validateArguments(command *cobra.Command, arguments []string) error {
	if len(arguments) > maximumArgumentCountConstant {
		return UsageError{ArgumentCount: len(arguments)}
	}
	return nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	repositoryPath, pathError := builder.resolveRepositoryPath(arguments)
	if pathError != nil {
		return pathError
	}

	configuration := builder.resolveConfiguration()
	logger := builder.resolveLogger()

	gitExecutor, executorError := resolveGitExecutor(builder.GitExecutor, logger, builder.humanReadableLogging(), configuration.GitExecutable)
	if executorError != nil {
		return executorError
	}

	collector, collectorError := resolveIdentityCollector(builder.Collector, configuration.Collector, gitExecutor, logger)
	if collectorError != nil {
		return collectorError
	}

	prompter := prompt.NewPrompter(command.InOrStdin(), command.OutOrStdout())
	service := NewService(ServiceDependencies{
		Logger:              logger,
		Collector:           collector,
		ConfigurationReader: identity.NewConfigReader(gitExecutor),
		Selector:            prompt.NewSelector(prompter),
		Confirmer:           prompt.NewConfirmationGate(prompter, builder.WarningColor),
		Rewriter:            identity.NewHistoryRewriter(gitExecutor, configuration.SquelchFilterBranchWarning),
		OutputWriter:        command.OutOrStdout(),
		ErrorWriter:         command.ErrOrStderr(),
	})
	return service.Run(command.Context(), repositoryPath)
}

func (builder *CommandBuilder) resolveRepositoryPath(arguments []string) (string, error) {
	resolver := builder.PathResolver
	if resolver == nil {
		resolver = pathutils.NewRepositoryPathResolver()
	}
	if len(arguments) == 0 {
		return resolver.ResolveDefault()
	}
	return resolver.Resolve(arguments[0])
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) humanReadableLogging() bool {
	if builder.HumanReadableLoggingProvider == nil {
		return false
	}
	return builder.HumanReadableLoggingProvider()
}
