package delivery

// Package delivery uploads the selected artifact to the chat: streamable
// containers go out as inline-playable video first, everything else (and
// any rejected video upload) falls back to a plain document.
