package fetch

// Package fetch wraps the external yt-dlp engine (via
// github.com/lrstanley/go-ytdlp): timeout-bounded downloads, non-blocking
// progress events, an optional availability probe, and classification of
// engine failures into the session taxonomy.
