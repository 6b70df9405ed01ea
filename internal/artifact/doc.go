package artifact

// Package artifact turns a finished workspace into a deliverable: it ranks
// the files the engine left behind by container preference and size, and
// gates the winner against the upload ceiling.
