package config

// Package config reads process-wide settings from the environment once at
// startup. Unset or unparsable variables fall back to defaults; Validate
// rejects configurations that cannot run a bot at all.
