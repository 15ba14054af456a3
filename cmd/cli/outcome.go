package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/temirov/fixcommits/internal/fixer"
	"github.com/temirov/fixcommits/internal/prompt"
)

const (
	exitCodeSuccessConstant     = 0
	exitCodeFailureConstant     = 1
	stoppedMessageConstant      = "\nStopped\n"
	usageOutputTemplateConstant = "%s\n"
	errorOutputTemplateConstant = "%v\n"
)

// ReportOutcome prints the final message for an execution error and returns the process exit code.
// An interrupt is a clean stop; a malformed command line prints the usage line.
func ReportOutcome(executionError error, outputWriter io.Writer, errorWriter io.Writer) int {
	if executionError == nil {
		return exitCodeSuccessConstant
	}

	if errors.Is(executionError, prompt.ErrInterrupted) || errors.Is(executionError, context.Canceled) {
		fmt.Fprint(outputWriter, stoppedMessageConstant)
		return exitCodeSuccessConstant
	}

	var usageError fixer.UsageError
	if errors.As(executionError, &usageError) {
		fmt.Fprintf(outputWriter, usageOutputTemplateConstant, usageError.Error())
		return exitCodeFailureConstant
	}

	fmt.Fprintf(errorWriter, errorOutputTemplateConstant, executionError)
	return exitCodeFailureConstant
}
