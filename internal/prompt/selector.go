package prompt

import (
	"context"
	"fmt"

	"github.com/temirov/fixcommits/internal/identity"
)

const (
	identityHeaderConstant            = "Please choose the email and name for corrections:"
	identityLabelTemplateConstant     = "<%s> %s"
	emailHeaderTemplateConstant       = "Please enter new email for replace \"%s\""
	nameHeaderTemplateConstant        = "Please enter new name for replace \"%s\""
	manualEmailPromptTemplateConstant = "New email [%s]: "
	manualNamePromptTemplateConstant  = "New name [%s]: "
	roundSeparatorConstant            = ""
)

// ValueRequest describes one replacement round: a header, the candidate values, and the prompt used for manual entry.
type ValueRequest struct {
	Header       string
	Candidates   []string
	ManualPrompt string
}

// Selector runs the numbered selection rounds.
type Selector struct {
	prompter *Prompter
}

// NewSelector constructs a Selector reading answers through the prompter.
func NewSelector(prompter *Prompter) *Selector {
	return &Selector{prompter: prompter}
}

// SelectIdentity lists the collected identities and returns the one the operator picks.
func (selector *Selector) SelectIdentity(executionContext context.Context, identities []identity.CollectedIdentity) (identity.Identity, error) {
	if len(identities) == 0 {
		return identity.Identity{}, identity.ErrNoIdentities
	}

	menu := Menu{Entries: make([]MenuEntry, 0, len(identities))}
	for _, collected := range identities {
		menu.Entries = append(menu.Entries, MenuEntry{
			Label: fmt.Sprintf(identityLabelTemplateConstant, collected.Name, collected.Email),
			Value: collected.Email,
		})
	}

	choice, choiceError := selector.choose(executionContext, identityHeaderConstant, menu)
	if choiceError != nil {
		return identity.Identity{}, choiceError
	}
	if writeError := selector.prompter.WriteLine(roundSeparatorConstant); writeError != nil {
		return identity.Identity{}, writeError
	}
	return identities[choice-firstMenuIndexConstant].Identity, nil
}

// SelectReplacementEmail asks for the email that replaces wrongEmail.
func (selector *Selector) SelectReplacementEmail(executionContext context.Context, wrongEmail string, candidates []string) (string, error) {
	return selector.SelectValue(executionContext, ValueRequest{
		Header:       fmt.Sprintf(emailHeaderTemplateConstant, wrongEmail),
		Candidates:   candidates,
		ManualPrompt: fmt.Sprintf(manualEmailPromptTemplateConstant, wrongEmail),
	})
}

// SelectReplacementName asks for the name that replaces wrongName.
func (selector *Selector) SelectReplacementName(executionContext context.Context, wrongName string, candidates []string) (string, error) {
	return selector.SelectValue(executionContext, ValueRequest{
		Header:       fmt.Sprintf(nameHeaderTemplateConstant, wrongName),
		Candidates:   candidates,
		ManualPrompt: fmt.Sprintf(manualNamePromptTemplateConstant, wrongName),
	})
}

// SelectValue lists the candidates plus a manual entry option and returns the chosen or typed value.
// A typed value is returned exactly as entered.
func (selector *Selector) SelectValue(executionContext context.Context, request ValueRequest) (string, error) {
	menu := NewValueMenu(request.Candidates)

	choice, choiceError := selector.choose(executionContext, request.Header, menu)
	if choiceError != nil {
		return "", choiceError
	}

	var selectedValue string
	if choice == menu.ManualIndex() {
		typedValue, readError := selector.prompter.ReadLine(executionContext, request.ManualPrompt)
		if readError != nil {
			return "", readError
		}
		selectedValue = typedValue
	} else {
		selectedValue = menu.Entries[choice-firstMenuIndexConstant].Value
	}

	if writeError := selector.prompter.WriteLine(roundSeparatorConstant); writeError != nil {
		return "", writeError
	}
	return selectedValue, nil
}

func (selector *Selector) choose(executionContext context.Context, header string, menu Menu) (int, error) {
	if writeError := selector.prompter.WriteLine(header); writeError != nil {
		return 0, writeError
	}
	for _, line := range menu.Lines() {
		if writeError := selector.prompter.WriteLine(line); writeError != nil {
			return 0, writeError
		}
	}

	answer, readError := selector.prompter.ReadLine(executionContext, menu.ChoicePrompt())
	if readError != nil {
		return 0, readError
	}
	return menu.ParseChoice(answer)
}
