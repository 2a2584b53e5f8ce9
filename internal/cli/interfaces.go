package cli

import "context"

// Runner defines the minimal lifecycle contract for runnable command-line
// applications.
type Runner interface {
	// Run executes the selected command and returns when it completes.
	Run(ctx context.Context) error
}
