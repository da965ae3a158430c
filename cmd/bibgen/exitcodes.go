package main

// Exit codes used by all bibgen commands.
const (
	ExitSuccess      = 0 // Success
	ExitError        = 1 // General error (invalid arguments, runtime failure)
	ExitResolveError = 2 // No DOI could be resolved from the identifier
	ExitAPIError     = 3 // CrossRef API or network failure
)
