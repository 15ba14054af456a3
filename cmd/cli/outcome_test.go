package cli_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/fixcommits/cmd/cli"
	"github.com/temirov/fixcommits/internal/fixer"
	"github.com/temirov/fixcommits/internal/prompt"
)

func TestReportOutcome(testInstance *testing.T) {
	testCases := []struct {
		name             string
		executionError   error
		expectedExitCode int
		expectedOutput   string
		expectedError    string
	}{
		{name: "success", expectedExitCode: 0},
		{
			name:             "interrupted_at_prompt",
			executionError:   prompt.ErrInterrupted,
			expectedExitCode: 0,
			expectedOutput:   "\nStopped\n",
		},
		{
			name:             "interrupted_during_rewrite",
			executionError:   fmt.Errorf("unable to rewrite history: %w", context.Canceled),
			expectedExitCode: 0,
			expectedOutput:   "\nStopped\n",
		},
		{
			name:             "usage",
			executionError:   fixer.UsageError{ArgumentCount: 2},
			expectedExitCode: 1,
			expectedOutput:   "fixcommits [git repository path]\n",
		},
		{
			name:             "invalid_choice",
			executionError:   prompt.UserInputError{Input: "9", UpperBound: 2, Cause: prompt.ErrSelectionOutOfRange},
			expectedExitCode: 1,
			expectedError:    "invalid choice \"9\" (expected a number between 1 and 2): selection out of range\n",
		},
		{
			name:             "engine_failure",
			executionError:   errors.New("unable to collect identities: git shortlog exited with code 128: fatal: not a git repository"),
			expectedExitCode: 1,
			expectedError:    "unable to collect identities: git shortlog exited with code 128: fatal: not a git repository\n",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			outputBuffer := &strings.Builder{}
			errorBuffer := &strings.Builder{}

			exitCode := cli.ReportOutcome(testCase.executionError, outputBuffer, errorBuffer)
			require.Equal(testInstance, testCase.expectedExitCode, exitCode)
			require.Equal(testInstance, testCase.expectedOutput, outputBuffer.String())
			require.Equal(testInstance, testCase.expectedError, errorBuffer.String())
		})
	}
}
