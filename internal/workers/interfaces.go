// Package workers runs the periodic background jobs of the server: purging
// expired sessions and pulling step counts from connected health apps.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
