package fetch

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-telegram-bot/internal/config"
	"github.com/ytget/yt-telegram-bot/internal/model"
)

const (
	// outputTemplate names files by video id so selection stays predictable
	outputTemplate = "%(id)s.%(ext)s"

	// concurrentFragments parallelizes segmented (DASH/HLS) downloads
	concurrentFragments = 5

	// browserUserAgent replaces the engine's default identity; some hosts
	// throttle or reject non-browser user agents
	browserUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	progressInterval = 500 * time.Millisecond
	probeTimeout     = 60 * time.Second
)

// Service invokes the external engine for one URL at a time. It is
// stateless apart from the read-only config and may be shared by all
// sessions.
type Service struct {
	cfg    config.Config
	logger *log.Logger
}

// NewService creates a new extraction service
func NewService(cfg config.Config, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{cfg: cfg, logger: logger}
}

// Fetch downloads the best combined video+audio rendition of url into dir,
// streaming progress events to sink. It returns the path the engine
// declared for its primary output; the engine may have remuxed to a
// container other than the requested one, so callers must not trust the
// extension. sink is closed before Fetch returns.
func (s *Service) Fetch(ctx context.Context, url, dir string, sink chan Progress) (string, error) {
	defer close(sink)

	ctx, cancel := context.WithTimeout(ctx, s.cfg.DownloadTimeout)
	defer cancel()

	// MergeOutputFormat only applies when separate streams are merged;
	// RemuxVideo also rewraps a single-stream pick into the preferred
	// container so streamable uploads stay possible.
	dl := ytdlp.New().
		Format(s.cfg.FormatSpec).
		MergeOutputFormat(s.cfg.PreferredContainer).
		RemuxVideo(s.cfg.PreferredContainer).
		ConcurrentFragments(concurrentFragments).
		UserAgent(browserUserAgent).
		NoPlaylist().
		RestrictFilenames().
		ForceOverwrites().
		Output(filepath.Join(dir, outputTemplate))

	dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
		Push(sink, toProgress(update))
	})

	result, err := dl.Run(ctx, url)
	if err != nil {
		return "", classifyRun(ctx, err, result)
	}

	return declaredPath(result), nil
}

// Probe runs a metadata-only fetch to fail fast on live or restricted
// content before committing to a full download. It is advisory: skipping
// it only delays the failure to the download itself.
func (s *Service) Probe(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	dl := ytdlp.New().
		SkipDownload().
		DumpSingleJSON().
		NoPlaylist()

	result, err := dl.Run(ctx, url)
	if err != nil {
		return classifyRun(ctx, err, result)
	}

	var info probeInfo
	if err := json.Unmarshal([]byte(result.Stdout), &info); err != nil {
		// Unreadable metadata is not fatal; the real download decides.
		s.logger.Printf("probe: decode metadata: %v", err)
		return nil
	}
	if info.IsLive || info.LiveStatus == "is_live" || info.LiveStatus == "is_upcoming" {
		return &model.Failure{Kind: model.FailureLiveStream, Detail: "live streams are not supported"}
	}
	return nil
}

// probeInfo is the subset of the engine's metadata dump the probe reads
type probeInfo struct {
	ID         string `json:"id"`
	IsLive     bool   `json:"is_live"`
	LiveStatus string `json:"live_status"`
}

func toProgress(update ytdlp.ProgressUpdate) Progress {
	p := Progress{
		Phase:           PhaseDownloading,
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
	}
	if update.Status == ytdlp.ProgressStatusPostProcessing {
		p.Phase = PhaseMerging
	}
	if p.TotalBytes > 0 {
		p.Percent = float64(p.DownloadedBytes) / float64(p.TotalBytes) * 100
	}
	return p
}

func declaredPath(result *ytdlp.Result) string {
	if result == nil {
		return ""
	}
	info, err := result.GetExtractedInfo()
	if err != nil || len(info) == 0 || info[0].Filename == nil {
		return ""
	}
	return *info[0].Filename
}
