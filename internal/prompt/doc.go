// Package prompt renders numbered choice menus on a terminal, reads the
// operator's answers line by line, and gates destructive operations behind an
// explicit confirmation.
package prompt
