package fetch

// Phase labels what the engine is doing while a session downloads
type Phase string

const (
	// PhaseDownloading means media bytes are being fetched
	PhaseDownloading Phase = "downloading"

	// PhaseMerging means streams are being merged/remuxed into one file
	PhaseMerging Phase = "merging"
)

// Progress is one engine progress event. Events flow through a bounded
// channel; percentages may regress when the engine switches phase, so
// consumers must not assume monotonicity.
type Progress struct {
	Phase           Phase
	DownloadedBytes int64
	TotalBytes      int64 // 0 when the engine doesn't know
	Percent         float64
}

// Push delivers p without ever blocking the engine callback. When the
// channel is full the oldest queued event is dropped so the latest wins.
func Push(ch chan Progress, p Progress) {
	select {
	case ch <- p:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- p:
	default:
	}
}
