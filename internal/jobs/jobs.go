// Package jobs defines the background job payloads shared between the queue
// workers and the components that enqueue them.
package jobs

import "github.com/riverqueue/river"

// QueueDefault is the river queue carrying pipeline jobs.
const QueueDefault = "default"

// ProcessApplicationArgs is the payload of an automated pipeline run. Jobs are
// unique by args, so at most one queued run exists per application number;
// together with per-application locking this keeps stage transitions
// single-writer.
type ProcessApplicationArgs struct {
	// Number is the application number to process.
	Number string `json:"number"`
}

// Kind returns the unique string that identifies this job type.
func (ProcessApplicationArgs) Kind() string { return "ProcessApplicationJob" }

// InsertOpts returns the default insertion options for this job type.
func (ProcessApplicationArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		// The workflow never retries a failed run on its own; a failed
		// application is parked in the error status for operator action.
		MaxAttempts: 1,
		Queue:       QueueDefault,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	}
}
