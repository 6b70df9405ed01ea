package fetch

import (
	"strings"
	"testing"
)

func TestDownloadTuning(t *testing.T) {
	if concurrentFragments != 5 {
		t.Errorf("concurrentFragments = %d, expected 5 parallel fragment downloads", concurrentFragments)
	}
	if !strings.HasPrefix(browserUserAgent, "Mozilla/5.0") {
		t.Errorf("browserUserAgent = %q, expected a browser identity", browserUserAgent)
	}
	if strings.ContainsAny(browserUserAgent, "\r\n") {
		t.Errorf("browserUserAgent contains header-breaking characters: %q", browserUserAgent)
	}
}

func TestOutputTemplateKeyedByVideoID(t *testing.T) {
	if !strings.HasPrefix(outputTemplate, "%(id)s") {
		t.Errorf("outputTemplate = %q, expected files named by video id", outputTemplate)
	}
}
