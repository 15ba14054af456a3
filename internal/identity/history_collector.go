package identity

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	openRepositoryErrorTemplateConstant = "unable to open repository %s: %w"
	resolveHeadErrorTemplateConstant    = "unable to resolve HEAD in %s: %w"
	walkHistoryErrorTemplateConstant    = "unable to walk history in %s: %w"
)

// HistoryCollector enumerates commit authors by walking the history reachable from HEAD with go-git.
type HistoryCollector struct{}

// NewHistoryCollector constructs a HistoryCollector.
func NewHistoryCollector() *HistoryCollector {
	return &HistoryCollector{}
}

// CollectIdentities counts commits per author and ranks them the way git shortlog --numbered does.
func (collector *HistoryCollector) CollectIdentities(executionContext context.Context, repositoryPath string) ([]CollectedIdentity, error) {
	repository, openError := git.PlainOpenWithOptions(repositoryPath, &git.PlainOpenOptions{DetectDotGit: true})
	if openError != nil {
		return nil, fmt.Errorf(openRepositoryErrorTemplateConstant, repositoryPath, openError)
	}

	headReference, headError := repository.Head()
	if headError != nil {
		return nil, fmt.Errorf(resolveHeadErrorTemplateConstant, repositoryPath, headError)
	}

	commitIterator, logError := repository.Log(&git.LogOptions{From: headReference.Hash()})
	if logError != nil {
		return nil, fmt.Errorf(walkHistoryErrorTemplateConstant, repositoryPath, logError)
	}
	defer commitIterator.Close()

	commitCounts := make(map[Identity]int)
	walkError := commitIterator.ForEach(func(commit *object.Commit) error {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}
		author := Identity{
			Name:  strings.TrimSpace(commit.Author.Name),
			Email: strings.TrimSpace(commit.Author.Email),
		}
		commitCounts[author]++
		return nil
	})
	if walkError != nil {
		return nil, fmt.Errorf(walkHistoryErrorTemplateConstant, repositoryPath, walkError)
	}

	return rankIdentities(commitCounts), nil
}

func rankIdentities(commitCounts map[Identity]int) []CollectedIdentity {
	ranked := make([]CollectedIdentity, 0, len(commitCounts))
	for author, commitCount := range commitCounts {
		ranked = append(ranked, CollectedIdentity{Identity: author, CommitCount: commitCount})
	}
	sort.Slice(ranked, func(first int, second int) bool {
		if ranked[first].CommitCount != ranked[second].CommitCount {
			return ranked[first].CommitCount > ranked[second].CommitCount
		}
		if ranked[first].Name != ranked[second].Name {
			return ranked[first].Name < ranked[second].Name
		}
		return ranked[first].Email < ranked[second].Email
	})
	return ranked
}
