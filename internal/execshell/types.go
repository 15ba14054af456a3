package execshell

import "context"

const (
	commandGitNameConstant = "git"
)

// CommandName identifies an external executable.
type CommandName string

// CommandGit is the version-control engine every operation delegates to.
const CommandGit CommandName = CommandName(commandGitNameConstant)

// CommandDetails describes a single invocation of an external executable.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
}

// ShellCommand combines the executable name with invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outcome of a finished process.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner runs shell commands.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}
