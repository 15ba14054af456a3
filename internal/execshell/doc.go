// Package execshell provides structured helpers for invoking git.
//
// ShellExecutor wraps a CommandRunner with lifecycle logging and typed errors,
// OSCommandRunner is the os/exec backed runner, and CommandMessageFormatter
// renders human-readable descriptions of the shortlog, config, and
// filter-branch invocations used by fixcommits.
package execshell
