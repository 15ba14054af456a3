package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/temirov/fixcommits/internal/identity"
)

const (
	replacementSummaryTemplateConstant = "Old name/email \"%s <%s>\" will be replaced with \"%s <%s>\""
	destructiveWarningConstant         = "This operation may break your git repository."
	confirmationPromptConstant         = "start operation (Y/N)[N]: "
	confirmationAcceptedAnswerConstant = "Y"
	operationStoppedMessageConstant    = "Operation stopped"
)

// ConfirmationGate asks the operator to approve a rewrite before it happens.
type ConfirmationGate struct {
	prompter *Prompter
	warning  *color.Color
}

// NewConfirmationGate constructs a ConfirmationGate. A nil warning color renders the warning in bold red.
func NewConfirmationGate(prompter *Prompter, warning *color.Color) *ConfirmationGate {
	if warning == nil {
		warning = color.New(color.FgRed, color.Bold)
	}
	return &ConfirmationGate{prompter: prompter, warning: warning}
}

// Confirm shows the pending replacement and reports whether the operator answered exactly "Y".
// Any other answer, including closed input, declines and prints that the operation stopped.
func (gate *ConfirmationGate) Confirm(executionContext context.Context, directive identity.RewriteDirective) (bool, error) {
	summary := fmt.Sprintf(
		replacementSummaryTemplateConstant,
		directive.WrongName,
		directive.WrongEmail,
		directive.NewName,
		directive.NewEmail,
	)
	if writeError := gate.prompter.WriteLine(summary); writeError != nil {
		return false, writeError
	}
	if writeError := gate.prompter.WriteLine(gate.warning.Sprint(destructiveWarningConstant)); writeError != nil {
		return false, writeError
	}

	answer, readError := gate.prompter.ReadLine(executionContext, confirmationPromptConstant)
	if readError != nil && !errors.Is(readError, ErrInputClosed) {
		return false, readError
	}
	if readError == nil && answer == confirmationAcceptedAnswerConstant {
		return true, nil
	}

	if writeError := gate.prompter.WriteLine(operationStoppedMessageConstant); writeError != nil {
		return false, writeError
	}
	return false, nil
}
