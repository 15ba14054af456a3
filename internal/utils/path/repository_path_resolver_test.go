package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/fixcommits/internal/utils/path"
)

const (
	testHomeDirectoryConstant    = "/home/operator"
	testWorkingDirectoryConstant = "/srv/checkouts"
)

func TestRepositoryPathResolverResolve(testInstance *testing.T) {
	resolver := pathutils.NewRepositoryPathResolverWithProviders(func() (string, error) {
		return testHomeDirectoryConstant, nil
	}, func() (string, error) {
		return testWorkingDirectoryConstant, nil
	})

	testCases := []struct {
		name         string
		input        string
		expectedPath string
		expectedErr  error
	}{
		{
			name:         "absolute_path_is_cleaned",
			input:        "/var/repos/project/../project/",
			expectedPath: filepath.Clean("/var/repos/project"),
		},
		{
			name:         "tilde_is_expanded",
			input:        "~/projects/example",
			expectedPath: filepath.Join(testHomeDirectoryConstant, "projects", "example"),
		},
		{
			name:         "bare_tilde_is_home",
			input:        "~",
			expectedPath: testHomeDirectoryConstant,
		},
		{
			name:         "tilde_user_is_left_relative",
			input:        "~other/project",
			expectedPath: filepath.Join(testWorkingDirectoryConstant, "~other", "project"),
		},
		{
			name:         "relative_path_is_anchored",
			input:        "  example\t",
			expectedPath: filepath.Join(testWorkingDirectoryConstant, "example"),
		},
		{
			name:         "dot_resolves_to_working_directory",
			input:        ".",
			expectedPath: testWorkingDirectoryConstant,
		},
		{
			name:        "whitespace_is_rejected",
			input:       "   ",
			expectedErr: pathutils.ErrEmptyRepositoryPath,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			resolvedPath, resolveError := resolver.Resolve(testCase.input)
			if testCase.expectedErr != nil {
				require.ErrorIs(testInstance, resolveError, testCase.expectedErr)
				return
			}
			require.NoError(testInstance, resolveError)
			require.Equal(testInstance, testCase.expectedPath, resolvedPath)
		})
	}
}

func TestRepositoryPathResolverResolveDefault(testInstance *testing.T) {
	lookupFailure := errors.New("getwd failed")
	testCases := []struct {
		name         string
		provider     pathutils.WorkingDirectoryProvider
		expectedPath string
		expectedErr  error
	}{
		{
			name:         "working_directory",
			provider:     func() (string, error) { return testWorkingDirectoryConstant + "/", nil },
			expectedPath: testWorkingDirectoryConstant,
		},
		{
			name:        "lookup_failure",
			provider:    func() (string, error) { return "", lookupFailure },
			expectedErr: lookupFailure,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			resolver := pathutils.NewRepositoryPathResolverWithProviders(nil, testCase.provider)
			resolvedPath, resolveError := resolver.ResolveDefault()
			if testCase.expectedErr != nil {
				require.ErrorIs(testInstance, resolveError, testCase.expectedErr)
				return
			}
			require.NoError(testInstance, resolveError)
			require.Equal(testInstance, testCase.expectedPath, resolvedPath)
		})
	}
}
