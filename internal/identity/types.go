package identity

import (
	"context"
	"errors"

	"github.com/temirov/fixcommits/internal/execshell"
)

const (
	// ConfigKeyUserName is the git configuration key holding a user name.
	ConfigKeyUserName = "user.name"

	// ConfigKeyUserEmail is the git configuration key holding a user email.
	ConfigKeyUserEmail = "user.email"

	noIdentitiesMessageConstant = "no commit identities found in repository history"
)

// ErrNoIdentities indicates that history yielded nothing to select from.
var ErrNoIdentities = errors.New(noIdentitiesMessageConstant)

// Identity is a (display name, email) pair recorded on commits or in configuration.
type Identity struct {
	Name  string
	Email string
}

// CollectedIdentity is an identity together with the number of commits attributed to it.
type CollectedIdentity struct {
	Identity
	CommitCount int
}

// RewriteDirective describes which email to replace and the identity that replaces it.
type RewriteDirective struct {
	WrongName  string
	WrongEmail string
	NewName    string
	NewEmail   string
}

// GitExecutor runs git subcommands.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// IdentityCollector enumerates identities found in a repository's history, most active first.
type IdentityCollector interface {
	CollectIdentities(executionContext context.Context, repositoryPath string) ([]CollectedIdentity, error)
}

// Emails returns the email of every identity except those equal to excluded, preserving order.
func Emails(identities []CollectedIdentity, excluded string) []string {
	emails := make([]string, 0, len(identities))
	for _, collected := range identities {
		if collected.Email == excluded {
			continue
		}
		emails = append(emails, collected.Email)
	}
	return emails
}

// Names returns the name of every identity except those equal to excluded, preserving order.
func Names(identities []CollectedIdentity, excluded string) []string {
	names := make([]string, 0, len(identities))
	for _, collected := range identities {
		if collected.Name == excluded {
			continue
		}
		names = append(names, collected.Name)
	}
	return names
}
