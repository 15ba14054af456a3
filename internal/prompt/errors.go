package prompt

import (
	"errors"
	"fmt"
)

const (
	interruptedMessageConstant         = "interrupted"
	inputClosedMessageConstant         = "input closed before an answer was given"
	selectionOutOfRangeMessageConstant = "selection out of range"
	selectionNotNumericMessageConstant = "selection is not a number"
	userInputErrorTemplateConstant     = "invalid choice %q (expected a number between 1 and %d): %v"
)

// ErrInterrupted indicates that the operator interrupted the program while it waited for input.
var ErrInterrupted = errors.New(interruptedMessageConstant)

// ErrInputClosed indicates that standard input ended while an answer was required.
var ErrInputClosed = errors.New(inputClosedMessageConstant)

// ErrSelectionOutOfRange indicates a numeric choice outside the menu.
var ErrSelectionOutOfRange = errors.New(selectionOutOfRangeMessageConstant)

// ErrSelectionNotNumeric indicates a choice that is not an integer.
var ErrSelectionNotNumeric = errors.New(selectionNotNumericMessageConstant)

// UserInputError reports an unusable menu answer.
type UserInputError struct {
	Input      string
	UpperBound int
	Cause      error
}

// Error describes the rejected answer and the accepted range.
func (inputError UserInputError) Error() string {
	return fmt.Sprintf(userInputErrorTemplateConstant, inputError.Input, inputError.UpperBound, inputError.Cause)
}

// Unwrap exposes the underlying cause.
func (inputError UserInputError) Unwrap() error {
	return inputError.Cause
}
