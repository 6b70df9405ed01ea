package status

// Package status maintains the single editable status message a session
// owns: progress events are coalesced to a throttled edit rate and every
// edit is best-effort, so reporting never stalls or fails the pipeline.
