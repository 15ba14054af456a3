// Package cli constructs the fixcommits command-line interface: the Cobra
// root command, the configuration loader with its embedded defaults,
// structured logging, and the mapping from execution errors to exit codes.
package cli
