package session

// Package session implements the per-request state machine: it sequences
// validation, the optional availability probe, the engine download,
// artifact selection, the size gate, and delivery, guaranteeing exactly one
// workspace cleanup on every terminal path. One goroutine owns one session.
