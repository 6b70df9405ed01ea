package bot

// Package bot runs the inbound update loop: commands get usage text,
// private messages matching the URL pattern become sessions, and everything
// else is rejected or ignored. Shutdown waits for in-flight sessions.
