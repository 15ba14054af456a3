package identity

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/temirov/fixcommits/internal/execshell"
)

const (
	gitShortlogSubcommandConstant = "shortlog"
	gitSummaryFlagConstant        = "--summary"
	gitNumberedFlagConstant       = "--numbered"
	gitEmailFlagConstant          = "--email"
	gitHeadRevisionConstant       = "HEAD"
	lineSeparatorConstant         = "\n"
	carriageReturnConstant        = "\r"
)

var shortlogLinePattern = regexp.MustCompile(`^\s+(\d+)\s+([^<]*?)\s*<([^>]+)>`)

// ParseShortlog extracts identities from `git shortlog --summary --numbered --email` output.
// Lines that do not match the expected shape are skipped.
func ParseShortlog(output string) []CollectedIdentity {
	identities := []CollectedIdentity{}
	for _, line := range strings.Split(output, lineSeparatorConstant) {
		line = strings.TrimSuffix(line, carriageReturnConstant)
		matches := shortlogLinePattern.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		commitCount, parseError := strconv.Atoi(matches[1])
		if parseError != nil {
			continue
		}
		identities = append(identities, CollectedIdentity{
			Identity: Identity{
				Name:  strings.TrimSpace(matches[2]),
				Email: strings.TrimSpace(matches[3]),
			},
			CommitCount: commitCount,
		})
	}
	return identities
}

// ShortlogCollector enumerates identities by parsing git shortlog output.
type ShortlogCollector struct {
	executor GitExecutor
}

// NewShortlogCollector constructs a ShortlogCollector.
func NewShortlogCollector(executor GitExecutor) *ShortlogCollector {
	return &ShortlogCollector{executor: executor}
}

// CollectIdentities runs git shortlog in the repository and parses its summary.
// HEAD is named explicitly because shortlog reads a log from standard input when that is not a terminal.
func (collector *ShortlogCollector) CollectIdentities(executionContext context.Context, repositoryPath string) ([]CollectedIdentity, error) {
	executionResult, executionError := collector.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments: []string{
			gitShortlogSubcommandConstant,
			gitSummaryFlagConstant,
			gitNumberedFlagConstant,
			gitEmailFlagConstant,
			gitHeadRevisionConstant,
		},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return nil, executionError
	}
	return ParseShortlog(executionResult.StandardOutput), nil
}
