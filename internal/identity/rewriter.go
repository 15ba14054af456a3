package identity

import (
	"context"

	"github.com/temirov/fixcommits/internal/execshell"
)

const (
	gitFilterBranchSubcommandConstant       = "filter-branch"
	gitForceFlagConstant                    = "-f"
	gitEnvFilterFlagConstant                = "--env-filter"
	gitTagNameFilterFlagConstant            = "--tag-name-filter"
	gitTagNameIdentityFilterConstant        = "cat"
	gitRevisionSeparatorConstant            = "--"
	gitBranchesFlagConstant                 = "--branches"
	gitTagsFlagConstant                     = "--tags"
	filterBranchSquelchVariableConstant     = "FILTER_BRANCH_SQUELCH_WARNING"
	filterBranchSquelchEnabledValueConstant = "1"
)

// RewriteResult carries the engine output of a finished rewrite.
type RewriteResult struct {
	StandardOutput string
	StandardError  string
}

// HistoryRewriter applies a RewriteDirective to every branch and tag.
type HistoryRewriter struct {
	executor               GitExecutor
	squelchFilterBranchNag bool
}

// NewHistoryRewriter constructs a HistoryRewriter. When squelchWarning is set git skips its filter-branch deprecation pause.
func NewHistoryRewriter(executor GitExecutor, squelchWarning bool) *HistoryRewriter {
	return &HistoryRewriter{executor: executor, squelchFilterBranchNag: squelchWarning}
}

// Rewrite runs a forced filter-branch over all branches and tags, keeping tag names.
func (rewriter *HistoryRewriter) Rewrite(executionContext context.Context, repositoryPath string, directive RewriteDirective) (RewriteResult, error) {
	commandDetails := execshell.CommandDetails{
		Arguments: []string{
			gitFilterBranchSubcommandConstant,
			gitForceFlagConstant,
			gitEnvFilterFlagConstant,
			BuildEnvironmentFilter(directive),
			gitTagNameFilterFlagConstant,
			gitTagNameIdentityFilterConstant,
			gitRevisionSeparatorConstant,
			gitBranchesFlagConstant,
			gitTagsFlagConstant,
		},
		WorkingDirectory: repositoryPath,
	}
	if rewriter.squelchFilterBranchNag {
		commandDetails.EnvironmentVariables = map[string]string{
			filterBranchSquelchVariableConstant: filterBranchSquelchEnabledValueConstant,
		}
	}

	executionResult, executionError := rewriter.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return RewriteResult{}, executionError
	}
	return RewriteResult{
		StandardOutput: executionResult.StandardOutput,
		StandardError:  executionResult.StandardError,
	}, nil
}
