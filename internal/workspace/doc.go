package workspace

// Package workspace manages the per-session scratch directory: a uniquely
// named directory under a shared root, acquired before the download starts
// and removed exactly once when the session reaches a terminal state.
