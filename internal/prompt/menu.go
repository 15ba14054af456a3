package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	menuEntryTemplateConstant    = "    [%d] %s"
	manualEntryLabelConstant     = "Manually enter"
	choicePromptTemplateConstant = "  Enter your choice [1-%d]: "
	firstMenuIndexConstant       = 1
)

// MenuEntry is one numbered line of a menu.
type MenuEntry struct {
	Label string
	Value string
}

// Menu is an ordered list of entries numbered from one, optionally followed by a manual entry option.
type Menu struct {
	Entries     []MenuEntry
	ManualEntry bool
}

// NewValueMenu builds a menu whose labels are the values themselves, followed by the manual entry option.
func NewValueMenu(values []string) Menu {
	entries := make([]MenuEntry, 0, len(values))
	for _, value := range values {
		entries = append(entries, MenuEntry{Label: value, Value: value})
	}
	return Menu{Entries: entries, ManualEntry: true}
}

// ManualIndex is the index of the manual entry option, one past the last entry.
func (menu Menu) ManualIndex() int {
	return len(menu.Entries) + 1
}

// UpperBound is the largest index the operator may choose.
func (menu Menu) UpperBound() int {
	if menu.ManualEntry {
		return menu.ManualIndex()
	}
	return len(menu.Entries)
}

// Lines renders the menu, one line per index.
func (menu Menu) Lines() []string {
	lines := make([]string, 0, menu.UpperBound())
	for entryIndex, entry := range menu.Entries {
		lines = append(lines, fmt.Sprintf(menuEntryTemplateConstant, entryIndex+firstMenuIndexConstant, entry.Label))
	}
	if menu.ManualEntry {
		lines = append(lines, fmt.Sprintf(menuEntryTemplateConstant, menu.ManualIndex(), manualEntryLabelConstant))
	}
	return lines
}

// ChoicePrompt is the prompt asking for an index.
func (menu Menu) ChoicePrompt() string {
	return fmt.Sprintf(choicePromptTemplateConstant, menu.UpperBound())
}

// ParseChoice converts an answer into a menu index, rejecting non-numbers and indices outside [1, UpperBound].
func (menu Menu) ParseChoice(answer string) (int, error) {
	choice, parseError := strconv.Atoi(strings.TrimSpace(answer))
	if parseError != nil {
		return 0, UserInputError{Input: answer, UpperBound: menu.UpperBound(), Cause: ErrSelectionNotNumeric}
	}
	if choice < firstMenuIndexConstant || choice > menu.UpperBound() {
		return 0, UserInputError{Input: answer, UpperBound: menu.UpperBound(), Cause: ErrSelectionOutOfRange}
	}
	return choice, nil
}
