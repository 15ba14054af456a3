package execshell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandMessageFormatterDescribesIdentityCommands(t *testing.T) {
	formatter := CommandMessageFormatter{}
	testCases := []struct {
		name     string
		command  ShellCommand
		result   ExecutionResult
		failure  error
		stage    messageStage
		expected string
	}{
		{
			name: "shortlog_start",
			command: ShellCommand{Name: CommandGit, Details: CommandDetails{
				Arguments:        []string{"shortlog", "--summary", "--numbered", "--email", "HEAD"},
				WorkingDirectory: "/workspace/repo",
			}},
			stage:    messageStageStart,
			expected: "Summarizing commit authors in /workspace/repo",
		},
		{
			name: "config_start",
			command: ShellCommand{Name: CommandGit, Details: CommandDetails{
				Arguments:        []string{"config", "--get-regexp", "user.email"},
				WorkingDirectory: "/workspace/repo",
			}},
			stage:    messageStageStart,
			expected: "Reading user.email configuration in /workspace/repo",
		},
		{
			name: "config_missing",
			command: ShellCommand{Name: CommandGit, Details: CommandDetails{
				Arguments: []string{"config", "--get-regexp", "user.name"},
			}},
			result:   ExecutionResult{ExitCode: 1},
			stage:    messageStageFailure,
			expected: "No user.name configuration found in current directory",
		},
		{
			name: "filter_branch_failure",
			command: ShellCommand{Name: CommandGit, Details: CommandDetails{
				Arguments:        []string{"filter-branch", "-f", "--env-filter", "true"},
				WorkingDirectory: "/workspace/repo",
			}},
			result:   ExecutionResult{ExitCode: 2, StandardError: "Cannot rewrite branches: You have unstaged changes.\n"},
			stage:    messageStageFailure,
			expected: "Failed to rewrite history in /workspace/repo (exit code 2: Cannot rewrite branches: You have unstaged changes.)",
		},
		{
			name: "filter_branch_execution_failure",
			command: ShellCommand{Name: CommandGit, Details: CommandDetails{
				Arguments:        []string{"filter-branch"},
				WorkingDirectory: "/workspace/repo",
			}},
			failure:  errors.New("signal: interrupt"),
			stage:    messageStageExecutionFailure,
			expected: "Unable to rewrite history in /workspace/repo: signal: interrupt",
		},
		{
			name: "generic_git",
			command: ShellCommand{Name: CommandGit, Details: CommandDetails{
				Arguments:        []string{"rev-parse", "HEAD"},
				WorkingDirectory: "/workspace/repo",
			}},
			stage:    messageStageSuccess,
			expected: "Completed git rev-parse HEAD (in /workspace/repo)",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			message := formatter.buildMessage(testCase.command, testCase.result, testCase.failure, testCase.stage)
			require.Equal(t, testCase.expected, message)
		})
	}
}
