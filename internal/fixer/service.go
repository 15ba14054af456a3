package fixer

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/fixcommits/internal/identity"
)

const (
	collectIdentitiesErrorTemplateConstant = "unable to collect identities: %w"
	readConfigurationErrorTemplateConstant = "unable to read %s: %w"
	rewriteHistoryErrorTemplateConstant    = "unable to rewrite history: %w"
	identitiesCollectedLogMessageConstant  = "identities collected"
	rewriteDeclinedLogMessageConstant      = "identity rewrite declined"
	rewriteStartedLogMessageConstant       = "rewriting identity across branches and tags"
	rewriteCompletedLogMessageConstant     = "identity rewrite completed"
	logFieldRepositoryPathConstant         = "repository_path"
	logFieldIdentityCountConstant          = "identity_count"
	logFieldWrongEmailConstant             = "wrong_email"
	logFieldNewEmailConstant               = "new_email"
	logFieldNewNameConstant                = "new_name"
)

// IdentitySelector runs the three selection rounds.
type IdentitySelector interface {
	SelectIdentity(executionContext context.Context, identities []identity.CollectedIdentity) (identity.Identity, error)
	SelectReplacementEmail(executionContext context.Context, wrongEmail string, candidates []string) (string, error)
	SelectReplacementName(executionContext context.Context, wrongName string, candidates []string) (string, error)
}

// Confirmer approves or declines a rewrite directive.
type Confirmer interface {
	Confirm(executionContext context.Context, directive identity.RewriteDirective) (bool, error)
}

// ConfigurationValueReader lists configured values for a git configuration key.
type ConfigurationValueReader interface {
	ReadValues(executionContext context.Context, repositoryPath string, configurationKey string) ([]string, error)
}

// HistoryRewriter applies a directive to the whole repository.
type HistoryRewriter interface {
	Rewrite(executionContext context.Context, repositoryPath string, directive identity.RewriteDirective) (identity.RewriteResult, error)
}

// ServiceDependencies groups the collaborators of Service.
type ServiceDependencies struct {
	Logger              *zap.Logger
	Collector           identity.IdentityCollector
	ConfigurationReader ConfigurationValueReader
	Selector            IdentitySelector
	Confirmer           Confirmer
	Rewriter            HistoryRewriter
	OutputWriter        io.Writer
	ErrorWriter         io.Writer
}

// Service performs one interactive identity correction.
type Service struct {
	logger              *zap.Logger
	collector           identity.IdentityCollector
	configurationReader ConfigurationValueReader
	selector            IdentitySelector
	confirmer           Confirmer
	rewriter            HistoryRewriter
	outputWriter        io.Writer
	errorWriter         io.Writer
}

// NewService constructs a Service from its dependencies.
func NewService(dependencies ServiceDependencies) *Service {
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	outputWriter := dependencies.OutputWriter
	if outputWriter == nil {
		outputWriter = io.Discard
	}
	errorWriter := dependencies.ErrorWriter
	if errorWriter == nil {
		errorWriter = io.Discard
	}
	return &Service{
		logger:              logger,
		collector:           dependencies.Collector,
		configurationReader: dependencies.ConfigurationReader,
		selector:            dependencies.Selector,
		confirmer:           dependencies.Confirmer,
		rewriter:            dependencies.Rewriter,
		outputWriter:        outputWriter,
		errorWriter:         errorWriter,
	}
}

// Run collects identities, gathers the operator's choices, and rewrites history once confirmed.
// Declining the confirmation is not an error.
func (service *Service) Run(executionContext context.Context, repositoryPath string) error {
	identities, collectError := service.collector.CollectIdentities(executionContext, repositoryPath)
	if collectError != nil {
		return fmt.Errorf(collectIdentitiesErrorTemplateConstant, collectError)
	}
	if len(identities) == 0 {
		return identity.ErrNoIdentities
	}
	service.logger.Info(
		identitiesCollectedLogMessageConstant,
		zap.String(logFieldRepositoryPathConstant, repositoryPath),
		zap.Int(logFieldIdentityCountConstant, len(identities)),
	)

	wrongIdentity, selectError := service.selector.SelectIdentity(executionContext, identities)
	if selectError != nil {
		return selectError
	}

	emailCandidates, emailCandidatesError := service.candidates(executionContext, repositoryPath, identity.ConfigKeyUserEmail, identity.Emails(identities, wrongIdentity.Email))
	if emailCandidatesError != nil {
		return emailCandidatesError
	}
	newEmail, emailError := service.selector.SelectReplacementEmail(executionContext, wrongIdentity.Email, emailCandidates)
	if emailError != nil {
		return emailError
	}

	nameCandidates, nameCandidatesError := service.candidates(executionContext, repositoryPath, identity.ConfigKeyUserName, identity.Names(identities, wrongIdentity.Name))
	if nameCandidatesError != nil {
		return nameCandidatesError
	}
	newName, nameError := service.selector.SelectReplacementName(executionContext, wrongIdentity.Name, nameCandidates)
	if nameError != nil {
		return nameError
	}

	directive := identity.RewriteDirective{
		WrongName:  wrongIdentity.Name,
		WrongEmail: wrongIdentity.Email,
		NewName:    newName,
		NewEmail:   newEmail,
	}

	accepted, confirmError := service.confirmer.Confirm(executionContext, directive)
	if confirmError != nil {
		return confirmError
	}
	if !accepted {
		service.logger.Info(rewriteDeclinedLogMessageConstant, zap.String(logFieldRepositoryPathConstant, repositoryPath))
		return nil
	}

	return service.rewrite(executionContext, repositoryPath, directive)
}

func (service *Service) candidates(executionContext context.Context, repositoryPath string, configurationKey string, collected []string) ([]string, error) {
	configuredValues, readError := service.configurationReader.ReadValues(executionContext, repositoryPath, configurationKey)
	if readError != nil {
		return nil, fmt.Errorf(readConfigurationErrorTemplateConstant, configurationKey, readError)
	}
	return append(collected, configuredValues...), nil
}

func (service *Service) rewrite(executionContext context.Context, repositoryPath string, directive identity.RewriteDirective) error {
	service.logger.Info(
		rewriteStartedLogMessageConstant,
		zap.String(logFieldRepositoryPathConstant, repositoryPath),
		zap.String(logFieldWrongEmailConstant, directive.WrongEmail),
		zap.String(logFieldNewEmailConstant, directive.NewEmail),
		zap.String(logFieldNewNameConstant, directive.NewName),
	)

	rewriteResult, rewriteError := service.rewriter.Rewrite(executionContext, repositoryPath, directive)
	if rewriteError != nil {
		return fmt.Errorf(rewriteHistoryErrorTemplateConstant, rewriteError)
	}

	if _, writeError := io.WriteString(service.errorWriter, rewriteResult.StandardError); writeError != nil {
		return writeError
	}
	if _, writeError := io.WriteString(service.outputWriter, rewriteResult.StandardOutput); writeError != nil {
		return writeError
	}

	service.logger.Info(rewriteCompletedLogMessageConstant, zap.String(logFieldRepositoryPathConstant, repositoryPath))
	return nil
}
