package model

// Package model defines domain data structures shared across the bot:
// sessions, pipeline states, classified failures, and artifact candidates.
// Structures are owned by a single session goroutine and carry explicit
// state transitions.
