package fetch

import "testing"

func TestPush_NeverBlocks(t *testing.T) {
	ch := make(chan Progress, 1)

	// Fill the channel, then keep pushing; none of these may block.
	for i := 0; i < 10; i++ {
		Push(ch, Progress{DownloadedBytes: int64(i)})
	}
}

func TestPush_DropsOldestUnderBackpressure(t *testing.T) {
	ch := make(chan Progress, 2)

	Push(ch, Progress{DownloadedBytes: 1})
	Push(ch, Progress{DownloadedBytes: 2})
	Push(ch, Progress{DownloadedBytes: 3}) // full: 1 is dropped

	first := <-ch
	second := <-ch
	if first.DownloadedBytes != 2 || second.DownloadedBytes != 3 {
		t.Errorf("queue = [%d %d], expected oldest dropped -> [2 3]",
			first.DownloadedBytes, second.DownloadedBytes)
	}

	select {
	case extra := <-ch:
		t.Errorf("unexpected extra event: %+v", extra)
	default:
	}
}
