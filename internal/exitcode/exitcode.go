// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	// Soft failures such as an unresolved selector also exit with Success.
	Success = 0

	// UserError indicates a fatal user error (unparseable edit index, bad list name).
	UserError = 1

	// AuthError indicates an auth/config error.
	AuthError = 2

	// BackendError indicates a backend/API/network error.
	BackendError = 3

	// StoreError indicates the store could not be located, read, decoded or written.
	StoreError = 4
)
