package telegram

// Package telegram adapts the Telegram Bot API (via
// github.com/go-telegram-bot-api/telegram-bot-api/v5) to the narrow
// surfaces the pipeline consumes: update source, status-message notifier,
// and artifact uploader.
