package session

import (
	"context"
	"fmt"
	"io"
	"log"
	"regexp"
	"sync/atomic"
	"time"

	"github.com/ytget/yt-telegram-bot/internal/artifact"
	"github.com/ytget/yt-telegram-bot/internal/config"
	"github.com/ytget/yt-telegram-bot/internal/fetch"
	"github.com/ytget/yt-telegram-bot/internal/model"
	"github.com/ytget/yt-telegram-bot/internal/status"
	"github.com/ytget/yt-telegram-bot/internal/workspace"
)

// URLPattern accepts YouTube watch and short-form links
var URLPattern = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?(?:youtube\.com/watch\?v=[\w-]{11}|youtu\.be/[\w-]{11}).*$`)

// progressBuffer bounds the channel between the engine callback and the
// status reporter; Push drops the oldest event under backpressure.
const progressBuffer = 16

// Request is one inbound URL message to handle
type Request struct {
	ChatID    int64
	MessageID int
	URL       string
}

// Orchestrator drives one session per request through the pipeline:
// validate, optionally probe, download, select, size-check, upload, clean
// up. Sessions share nothing but the read-only config and the download
// slots.
type Orchestrator struct {
	cfg       config.Config
	fetcher   Fetcher
	deliverer Deliverer
	notifier  Notifier
	logger    *log.Logger
	slots     chan struct{}
	counter   atomic.Uint64
}

// NewOrchestrator creates a session orchestrator
func NewOrchestrator(cfg config.Config, fetcher Fetcher, deliverer Deliverer, notifier Notifier, logger *log.Logger) *Orchestrator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	maxParallel := cfg.MaxParallel
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Orchestrator{
		cfg:       cfg,
		fetcher:   fetcher,
		deliverer: deliverer,
		notifier:  notifier,
		logger:    logger,
		slots:     make(chan struct{}, maxParallel),
	}
}

// Run handles one request to its terminal state and returns the finished
// session. It never returns an error: every failure ends inside the
// session and is reported to the user through the status message.
func (o *Orchestrator) Run(ctx context.Context, req Request) *model.Session {
	id := fmt.Sprintf("%d-%d", req.ChatID, o.counter.Add(1))
	s := model.NewSession(id, req.URL, req.ChatID)

	if !URLPattern.MatchString(req.URL) {
		o.fail(s, nil, model.NewFailure(model.FailureInvalidURL, "not a recognized video URL"))
		return s
	}

	statusID, err := o.notifier.ReplyText(req.ChatID, req.MessageID, "Analyzing link…")
	if err != nil {
		// No status message means no session surface at all; there is
		// nothing left to report to.
		o.fail(s, nil, model.NewFailure(model.FailureUpload, "create status message: %v", err))
		return s
	}
	s.StatusMessageID = statusID
	rep := status.NewReporter(o.notifier, req.ChatID, statusID, o.logger)

	// Liveness only.
	if err := o.notifier.SendTyping(req.ChatID); err != nil {
		o.logger.Printf("session %s: typing indicator dropped: %v", id, err)
	}

	ws, err := workspace.Acquire(o.cfg.WorkspaceRoot, o.logger)
	if err != nil {
		o.fail(s, rep, model.NewFailure(model.FailureEngine, "no scratch space: %v", err))
		return s
	}
	defer ws.Release()
	s.WorkspaceDir = ws.Dir()

	if o.cfg.ProbeBeforeDownload {
		s.Advance(model.StateProbing)
		if err := o.fetcher.Probe(ctx, req.URL); err != nil {
			o.fail(s, rep, model.FailureFrom(err, model.FailureEngine))
			return s
		}
	}

	// Wait for a download slot so concurrent sessions don't saturate the
	// network or the disk.
	select {
	case o.slots <- struct{}{}:
	case <-ctx.Done():
		// Not a timeout; nothing was even started yet.
		o.fail(s, rep, model.NewFailure(model.FailureEngine, "cancelled before the download started"))
		return s
	}

	s.Advance(model.StateDownloading)
	events := make(chan fetch.Progress, progressBuffer)
	watchDone := make(chan struct{})
	go func() {
		rep.Watch(ctx, events)
		close(watchDone)
	}()

	declared, fetchErr := o.fetcher.Fetch(ctx, req.URL, ws.Dir(), events)
	<-o.slots
	<-watchDone

	if fetchErr != nil {
		o.fail(s, rep, model.FailureFrom(fetchErr, model.FailureEngine))
		return s
	}

	s.Advance(model.StateSelecting)
	cand, ok := artifact.Select(ws.Dir(), declared, o.cfg.PreferredContainer)
	if !ok {
		o.fail(s, rep, model.NewFailure(model.FailureNoOutput, "the engine produced no output file"))
		return s
	}
	s.SetArtifact(cand)

	s.Advance(model.StateSizeChecking)
	if err := artifact.GuardSize(cand, o.cfg.MaxUploadBytes); err != nil {
		o.fail(s, rep, model.FailureFrom(err, model.FailureTooLarge))
		return s
	}

	s.Advance(model.StateUploading)
	rep.Set("Uploading to Telegram…")
	if err := o.deliverer.Deliver(req.ChatID, cand); err != nil {
		o.fail(s, rep, model.FailureFrom(err, model.FailureUpload))
		return s
	}

	s.Advance(model.StateDone)
	rep.Set("Done ✅")
	o.logger.Printf("session %s: done in %s (%s)", s.ID, s.EndedAt.Sub(s.StartedAt).Round(time.Second), cand.Name())
	return s
}

func (o *Orchestrator) fail(s *model.Session, rep *status.Reporter, f *model.Failure) {
	s.Fail(f)
	if rep != nil {
		rep.Set(failureText(f))
	}
	o.logger.Printf("session %s: %s: %v", s.ID, s.URL, f)
}

// failureText renders a classified failure as the final status line,
// appending the bounded diagnostic tail where one helps.
func failureText(f *model.Failure) string {
	switch f.Kind {
	case model.FailureInvalidURL:
		return "Please send a valid YouTube video URL."
	case model.FailureRestrictedContent:
		return withDetail("Sorry, that video is restricted and can't be downloaded", f.Detail)
	case model.FailureLiveStream:
		return "Live streams aren't supported."
	case model.FailureNoFormats:
		return "No downloadable formats were found for that video."
	case model.FailureTimeout:
		return "Sorry, the download took too long and was cancelled."
	case model.FailureNoOutput:
		return "Sorry, I couldn't download that video."
	case model.FailureTooLarge:
		return "Downloaded the video but " + f.Detail + "."
	case model.FailureUpload:
		return withDetail("Uploading to Telegram failed", f.Detail)
	default:
		return withDetail("Sorry, the download failed", f.Detail)
	}
}

func withDetail(text, detail string) string {
	if detail == "" {
		return text + "."
	}
	return text + ":\n" + detail
}
