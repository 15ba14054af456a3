package fixer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/fixcommits/internal/fixer"
	"github.com/temirov/fixcommits/internal/identity"
)

func TestDefaultConfigurationValues(testInstance *testing.T) {
	require.Equal(testInstance, map[string]any{
		"tools.fix.git_executable":                "git",
		"tools.fix.collector":                     "auto",
		"tools.fix.squelch_filter_branch_warning": true,
	}, fixer.DefaultConfigurationValues("tools.fix"))

	require.Equal(testInstance, map[string]any{
		"git_executable":                "git",
		"collector":                     "auto",
		"squelch_filter_branch_warning": true,
	}, fixer.DefaultConfigurationValues(" "))
}

func TestDefaultCommandConfiguration(testInstance *testing.T) {
	require.Equal(testInstance, fixer.CommandConfiguration{
		GitExecutable:              "git",
		Collector:                  identity.CollectorModeAuto,
		SquelchFilterBranchWarning: true,
	}, fixer.DefaultCommandConfiguration())
}
