package fixer

import (
	"go.uber.org/zap"

	"github.com/temirov/fixcommits/internal/execshell"
	"github.com/temirov/fixcommits/internal/identity"
	"github.com/temirov/fixcommits/internal/ui"
)

// resolveGitExecutor returns the provided executor or a shell-backed default bound to the configured git executable.
// Human-readable logging replaces the structured command log with console messages.
func resolveGitExecutor(existing identity.GitExecutor, logger *zap.Logger, humanReadableLogging bool, gitExecutable string) (identity.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunnerWithExecutables(map[execshell.CommandName]string{
		execshell.CommandGit: gitExecutable,
	})
	if humanReadableLogging {
		return execshell.NewShellExecutorWithObserver(zap.NewNop(), commandRunner, ui.NewConsoleCommandEventLogger(logger))
	}
	return execshell.NewShellExecutor(logger, commandRunner)
}

func resolveIdentityCollector(existing identity.IdentityCollector, mode identity.CollectorMode, executor identity.GitExecutor, logger *zap.Logger) (identity.IdentityCollector, error) {
	if existing != nil {
		return existing, nil
	}
	return identity.NewIdentityCollector(mode, executor, logger)
}
