package pathutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	workingDirectoryErrorTemplateConstant = "unable to determine working directory: %w"
	absolutePathErrorTemplateConstant     = "unable to resolve repository path %q: %w"
	emptyRepositoryPathMessageConstant    = "repository path is empty"
	tildeSymbolConstant                   = "~"
	tildeForwardSlashPrefixConstant       = "~/"
)

// ErrEmptyRepositoryPath indicates an explicitly supplied path that contains only whitespace.
var ErrEmptyRepositoryPath = errors.New(emptyRepositoryPathMessageConstant)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// WorkingDirectoryProvider resolves the current working directory.
type WorkingDirectoryProvider func() (string, error)

// RepositoryPathResolver turns the optional repository argument into an absolute path.
type RepositoryPathResolver struct {
	homeDirectoryProvider    HomeDirectoryProvider
	workingDirectoryProvider WorkingDirectoryProvider
}

// NewRepositoryPathResolver constructs a resolver using the operating system lookups.
func NewRepositoryPathResolver() *RepositoryPathResolver {
	return NewRepositoryPathResolverWithProviders(nil, nil)
}

// NewRepositoryPathResolverWithProviders constructs a resolver with custom home and working directory lookups.
func NewRepositoryPathResolverWithProviders(homeDirectoryProvider HomeDirectoryProvider, workingDirectoryProvider WorkingDirectoryProvider) *RepositoryPathResolver {
	if homeDirectoryProvider == nil {
		homeDirectoryProvider = os.UserHomeDir
	}
	if workingDirectoryProvider == nil {
		workingDirectoryProvider = os.Getwd
	}
	return &RepositoryPathResolver{
		homeDirectoryProvider:    homeDirectoryProvider,
		workingDirectoryProvider: workingDirectoryProvider,
	}
}

// ResolveDefault returns the current working directory.
func (resolver *RepositoryPathResolver) ResolveDefault() (string, error) {
	workingDirectory, workingDirectoryError := resolver.workingDirectoryProvider()
	if workingDirectoryError != nil {
		return "", fmt.Errorf(workingDirectoryErrorTemplateConstant, workingDirectoryError)
	}
	return filepath.Clean(workingDirectory), nil
}

// Resolve trims the candidate, expands a leading tilde, and anchors relative paths at the working directory.
func (resolver *RepositoryPathResolver) Resolve(candidatePath string) (string, error) {
	trimmedCandidate := strings.TrimSpace(candidatePath)
	if len(trimmedCandidate) == 0 {
		return "", ErrEmptyRepositoryPath
	}

	expandedPath := resolver.expandHome(trimmedCandidate)
	if filepath.IsAbs(expandedPath) {
		return filepath.Clean(expandedPath), nil
	}

	workingDirectory, workingDirectoryError := resolver.ResolveDefault()
	if workingDirectoryError != nil {
		return "", fmt.Errorf(absolutePathErrorTemplateConstant, trimmedCandidate, workingDirectoryError)
	}
	return filepath.Join(workingDirectory, expandedPath), nil
}

func (resolver *RepositoryPathResolver) expandHome(candidatePath string) string {
	if !strings.HasPrefix(candidatePath, tildeSymbolConstant) {
		return candidatePath
	}

	homeDirectory, homeDirectoryError := resolver.homeDirectoryProvider()
	if homeDirectoryError != nil || len(homeDirectory) == 0 {
		return candidatePath
	}

	if candidatePath == tildeSymbolConstant {
		return homeDirectory
	}

	tildeWithSeparatorPrefix := tildeSymbolConstant + string(os.PathSeparator)
	for _, prefix := range []string{tildeForwardSlashPrefixConstant, tildeWithSeparatorPrefix} {
		if strings.HasPrefix(candidatePath, prefix) {
			return filepath.Join(homeDirectory, strings.TrimPrefix(candidatePath, prefix))
		}
	}

	return candidatePath
}
