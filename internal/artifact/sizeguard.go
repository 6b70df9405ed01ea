package artifact

import (
	"github.com/dustin/go-humanize"

	"github.com/ytget/yt-telegram-bot/internal/model"
)

// GuardSize rejects artifacts strictly larger than maxBytes; a file of
// exactly maxBytes passes. The configured ceiling must sit below the
// transport's hard limit, since wire overhead can push a borderline file
// over it.
func GuardSize(c *model.ArtifactCandidate, maxBytes int64) error {
	if c.SizeBytes > maxBytes {
		return model.NewFailure(model.FailureTooLarge, "it's too large for Telegram (%s > %s)",
			humanize.Bytes(uint64(c.SizeBytes)), humanize.Bytes(uint64(maxBytes)))
	}
	return nil
}
