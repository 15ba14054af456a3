package execshell

import (
	"context"

	"go.uber.org/zap"
)

const (
	logMessageCommandStartedConstant         = "executing command"
	logMessageCommandCompletedConstant       = "command completed"
	logMessageCommandFailedConstant          = "command exited with failure"
	logMessageCommandExecutionFailedConstant = "command execution failed"
	logFieldCommandNameConstant              = "command_name"
	logFieldCommandArgumentsConstant         = "command_arguments"
	logFieldWorkingDirectoryConstant         = "working_directory"
	logFieldExitCodeConstant                 = "exit_code"
	logFieldStandardErrorConstant            = "standard_error"
	logFieldSummaryConstant                  = "summary"
)

// ShellExecutor runs external commands, logging their lifecycle and converting failures into typed errors.
type ShellExecutor struct {
	logger           *zap.Logger
	runner           CommandRunner
	observer         CommandEventObserver
	messageFormatter CommandMessageFormatter
}

// NewShellExecutor constructs a ShellExecutor that does not report command events.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner) (*ShellExecutor, error) {
	return NewShellExecutorWithObserver(logger, runner, nil)
}

// NewShellExecutorWithObserver constructs a ShellExecutor that forwards lifecycle events to the observer.
func NewShellExecutorWithObserver(logger *zap.Logger, runner CommandRunner, observer CommandEventObserver) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}
	if observer == nil {
		observer = noopCommandEventObserver{}
	}
	return &ShellExecutor{
		logger:           logger,
		runner:           runner,
		observer:         observer,
		messageFormatter: CommandMessageFormatter{},
	}, nil
}

// Execute runs the command and returns an error when it cannot start or exits with a non-zero status.
func (executor *ShellExecutor) Execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.logger.Info(
		logMessageCommandStartedConstant,
		zap.String(logFieldCommandNameConstant, string(command.Name)),
		zap.String(logFieldSummaryConstant, executor.messageFormatter.BuildStartedMessage(command)),
		zap.String(logFieldWorkingDirectoryConstant, command.Details.WorkingDirectory),
		zap.Strings(logFieldCommandArgumentsConstant, command.Details.Arguments),
	)
	executor.observer.CommandStarted(command)

	executionResult, runError := executor.runner.Run(executionContext, command)
	if runError != nil {
		executor.logger.Error(
			logMessageCommandExecutionFailedConstant,
			zap.String(logFieldCommandNameConstant, string(command.Name)),
			zap.String(logFieldSummaryConstant, executor.messageFormatter.BuildExecutionFailureMessage(command, runError)),
			zap.Error(runError),
		)
		executor.observer.CommandExecutionFailed(command, runError)
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: runError}
	}

	executor.observer.CommandCompleted(command, executionResult)

	if executionResult.ExitCode != 0 {
		executor.logger.Warn(
			logMessageCommandFailedConstant,
			zap.String(logFieldCommandNameConstant, string(command.Name)),
			zap.String(logFieldSummaryConstant, executor.messageFormatter.BuildFailureMessage(command, executionResult)),
			zap.Int(logFieldExitCodeConstant, executionResult.ExitCode),
			zap.String(logFieldStandardErrorConstant, executionResult.StandardError),
		)
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	executor.logger.Info(
		logMessageCommandCompletedConstant,
		zap.String(logFieldCommandNameConstant, string(command.Name)),
		zap.String(logFieldSummaryConstant, executor.messageFormatter.BuildSuccessMessage(command)),
	)

	return executionResult, nil
}

// ExecuteGit runs git with the provided details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandGit, Details: details})
}

