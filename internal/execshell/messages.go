package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
	configNoMatchExitCodeConstant           = 1
)

const (
	gitShortlogSubcommandNameConstant     = "shortlog"
	gitConfigSubcommandNameConstant       = "config"
	gitConfigGetRegexpFlagConstant        = "--get-regexp"
	gitFilterBranchSubcommandNameConstant = "filter-branch"
)

const (
	gitShortlogStartTemplateConstant                = "Summarizing commit authors in %s"
	gitShortlogSuccessTemplateConstant              = "Summarized commit authors in %s"
	gitShortlogFailureTemplateConstant              = "Failed to summarize commit authors in %s (exit code %d%s)"
	gitShortlogExecutionFailureTemplateConstant     = "Unable to summarize commit authors in %s: %s"
	gitConfigLookupStartTemplateConstant            = "Reading %s configuration in %s"
	gitConfigLookupSuccessTemplateConstant          = "Read %s configuration in %s"
	gitConfigLookupMissingTemplateConstant          = "No %s configuration found in %s"
	gitConfigLookupFailureTemplateConstant          = "Failed to read %s configuration in %s (exit code %d%s)"
	gitConfigLookupExecutionFailureTemplateConstant = "Unable to read %s configuration in %s: %s"
	gitFilterBranchStartTemplateConstant            = "Rewriting identities on all branches and tags in %s"
	gitFilterBranchSuccessTemplateConstant          = "Rewrote identities on all branches and tags in %s"
	gitFilterBranchFailureTemplateConstant          = "Failed to rewrite history in %s (exit code %d%s)"
	gitFilterBranchExecutionFailureTemplateConstant = "Unable to rewrite history in %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name != CommandGit || len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	switch strings.TrimSpace(command.Details.Arguments[0]) {
	case gitShortlogSubcommandNameConstant:
		return formatter.describeGitShortlogMessage(command, result, failure, stage)
	case gitConfigSubcommandNameConstant:
		if containsArgument(command.Details.Arguments, gitConfigGetRegexpFlagConstant) {
			return formatter.describeGitConfigMessage(command, result, failure, stage)
		}
		return formatter.buildGenericMessage(command, result, failure, stage)
	case gitFilterBranchSubcommandNameConstant:
		return formatter.describeGitFilterBranchMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitShortlogMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitShortlogStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitShortlogSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitShortlogFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitShortlogExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) describeGitConfigMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	configurationKey := formatter.ensureValue(findFlagValue(command.Details.Arguments, gitConfigGetRegexpFlagConstant))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitConfigLookupStartTemplateConstant, configurationKey, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitConfigLookupSuccessTemplateConstant, configurationKey, workingDirectory)
	case messageStageFailure:
		if result.ExitCode == configNoMatchExitCodeConstant && len(strings.TrimSpace(result.StandardError)) == 0 {
			return fmt.Sprintf(gitConfigLookupMissingTemplateConstant, configurationKey, workingDirectory)
		}
		return fmt.Sprintf(gitConfigLookupFailureTemplateConstant, configurationKey, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitConfigLookupExecutionFailureTemplateConstant, configurationKey, workingDirectory, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) describeGitFilterBranchMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitFilterBranchStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitFilterBranchSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitFilterBranchFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitFilterBranchExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandLabel := string(command.Name)
	if len(command.Details.Arguments) > 0 {
		commandLabel = fmt.Sprintf("%s %s", commandLabel, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, formatter.formatWorkingDirectorySuffix(command))
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}

func containsArgument(arguments []string, value string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == value {
			return true
		}
	}
	return false
}

func findFlagValue(arguments []string, flag string) string {
	for index := 0; index < len(arguments); index++ {
		if strings.TrimSpace(arguments[index]) == flag && index+1 < len(arguments) {
			return strings.TrimSpace(arguments[index+1])
		}
	}
	return emptyStringConstant
}
