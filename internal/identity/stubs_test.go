package identity_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"github.com/temirov/fixcommits/internal/execshell"
	"github.com/temirov/fixcommits/internal/identity"
)

type recordingGitExecutor struct {
	result          execshell.ExecutionResult
	err             error
	recordedDetails []execshell.CommandDetails
}

func (executor *recordingGitExecutor) ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedDetails = append(executor.recordedDetails, details)
	if executor.err != nil {
		return execshell.ExecutionResult{}, executor.err
	}
	return executor.result, nil
}

type staticCollector struct {
	identities []identity.CollectedIdentity
	err        error
	calls      int
}

func (collector *staticCollector) CollectIdentities(executionContext context.Context, repositoryPath string) ([]identity.CollectedIdentity, error) {
	collector.calls++
	return collector.identities, collector.err
}

// commitAs records one commit authored and committed by the given identity in a go-git repository.
func commitAs(testInstance *testing.T, repository *git.Repository, repositoryPath string, author identity.Identity, sequence int) {
	testInstance.Helper()

	worktree, worktreeError := repository.Worktree()
	require.NoError(testInstance, worktreeError)

	fileName := "file-" + strconv.Itoa(sequence) + ".txt"
	require.NoError(testInstance, os.WriteFile(filepath.Join(repositoryPath, fileName), []byte(strconv.Itoa(sequence)), 0o600))
	_, addError := worktree.Add(fileName)
	require.NoError(testInstance, addError)

	signature := &object.Signature{
		Name:  author.Name,
		Email: author.Email,
		When:  time.Date(2024, time.January, 1, 12, sequence, 0, 0, time.UTC),
	}
	_, commitError := worktree.Commit("commit "+strconv.Itoa(sequence), &git.CommitOptions{
		Author:    signature,
		Committer: signature,
	})
	require.NoError(testInstance, commitError)
}

func initializeRepository(testInstance *testing.T, authors ...identity.Identity) string {
	testInstance.Helper()

	repositoryPath := testInstance.TempDir()
	repository, initError := git.PlainInit(repositoryPath, false)
	require.NoError(testInstance, initError)

	for sequence, author := range authors {
		commitAs(testInstance, repository, repositoryPath, author, sequence)
	}
	return repositoryPath
}
