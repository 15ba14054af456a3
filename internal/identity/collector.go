package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	collectorModeAutoConstant             = "auto"
	collectorModeHistoryConstant          = "history"
	collectorModeShortlogConstant         = "shortlog"
	unsupportedCollectorTemplateConstant  = "unsupported identity collector %q (expected auto, history, or shortlog)"
	fallbackLogMessageConstant            = "structured history query failed; falling back to shortlog"
	logFieldRepositoryPathConstant        = "repository_path"
	logFieldCollectorModeConstant         = "collector"
	logFieldIdentityCountConstant         = "identity_count"
	collectedIdentitiesLogMessageConstant = "collected commit identities"
)

// CollectorMode selects how identities are enumerated.
type CollectorMode string

// Supported collector modes.
const (
	CollectorModeAuto     CollectorMode = CollectorMode(collectorModeAutoConstant)
	CollectorModeHistory  CollectorMode = CollectorMode(collectorModeHistoryConstant)
	CollectorModeShortlog CollectorMode = CollectorMode(collectorModeShortlogConstant)
)

// UnmarshalText implements encoding.TextUnmarshaler so configuration values are validated on load.
func (mode *CollectorMode) UnmarshalText(text []byte) error {
	normalized := CollectorMode(strings.ToLower(strings.TrimSpace(string(text))))
	switch normalized {
	case "":
		*mode = CollectorModeAuto
	case CollectorModeAuto, CollectorModeHistory, CollectorModeShortlog:
		*mode = normalized
	default:
		return fmt.Errorf(unsupportedCollectorTemplateConstant, string(text))
	}
	return nil
}

// NewIdentityCollector builds the collector for the requested mode.
func NewIdentityCollector(mode CollectorMode, executor GitExecutor, logger *zap.Logger) (IdentityCollector, error) {
	switch mode {
	case CollectorModeHistory:
		return NewHistoryCollector(), nil
	case CollectorModeShortlog:
		return NewShortlogCollector(executor), nil
	case CollectorModeAuto, "":
		return NewFallbackCollector(NewHistoryCollector(), NewShortlogCollector(executor), logger), nil
	default:
		return nil, fmt.Errorf(unsupportedCollectorTemplateConstant, string(mode))
	}
}

// FallbackCollector prefers a structured collector and reverts to a secondary one when it fails.
type FallbackCollector struct {
	primary   IdentityCollector
	secondary IdentityCollector
	logger    *zap.Logger
}

// NewFallbackCollector constructs a FallbackCollector.
func NewFallbackCollector(primary IdentityCollector, secondary IdentityCollector, logger *zap.Logger) *FallbackCollector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackCollector{primary: primary, secondary: secondary, logger: logger}
}

// CollectIdentities returns the primary collector's result, or the secondary's when the primary fails.
func (collector *FallbackCollector) CollectIdentities(executionContext context.Context, repositoryPath string) ([]CollectedIdentity, error) {
	identities, primaryError := collector.primary.CollectIdentities(executionContext, repositoryPath)
	if primaryError == nil {
		collector.logger.Debug(
			collectedIdentitiesLogMessageConstant,
			zap.String(logFieldCollectorModeConstant, collectorModeHistoryConstant),
			zap.Int(logFieldIdentityCountConstant, len(identities)),
		)
		return identities, nil
	}
	if errors.Is(primaryError, context.Canceled) || errors.Is(primaryError, context.DeadlineExceeded) {
		return nil, primaryError
	}

	collector.logger.Warn(
		fallbackLogMessageConstant,
		zap.String(logFieldRepositoryPathConstant, repositoryPath),
		zap.Error(primaryError),
	)

	identities, secondaryError := collector.secondary.CollectIdentities(executionContext, repositoryPath)
	if secondaryError != nil {
		return nil, secondaryError
	}
	collector.logger.Debug(
		collectedIdentitiesLogMessageConstant,
		zap.String(logFieldCollectorModeConstant, collectorModeShortlogConstant),
		zap.Int(logFieldIdentityCountConstant, len(identities)),
	)
	return identities, nil
}
