package fixer

const usageLineConstant = "fixcommits [git repository path]"

// UsageError reports a command line the program cannot interpret.
type UsageError struct {
	ArgumentCount int
}

// Error returns the usage line.
func (UsageError) Error() string {
	return usageLineConstant
}
