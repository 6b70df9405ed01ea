package artifact

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/ytget/yt-telegram-bot/internal/model"
)

// Engine scratch files that must never be selected.
var skippedExtensions = []string{".part", ".ytdl", ".tmp"}

// defaultPriority orders container extensions most-compatible-first. The
// preferred container from config always ranks ahead of this list.
var defaultPriority = []string{".mp4", ".mkv", ".webm", ".mov", ".m4v"}

// Select picks the final artifact out of a session workspace: highest
// extension-priority tier first, largest file within the tier. The engine
// may merge/remux to a container other than the requested one and leave
// partial or sidecar files behind, so the declared path alone cannot be
// trusted. When the scan finds nothing it falls back to the declared path
// if that file exists; otherwise there is no artifact.
func Select(dir, declared, preferred string) (*model.ArtifactCandidate, bool) {
	candidates := scan(dir, preferred)
	if len(candidates) == 0 {
		return fromDeclared(declared, preferred)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority < candidates[j].Priority
		}
		return candidates[i].SizeBytes > candidates[j].SizeBytes
	})
	return candidates[0], true
}

func scan(dir, preferred string) []*model.ArtifactCandidate {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var out []*model.ArtifactCandidate
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if slices.Contains(skippedExtensions, ext) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		out = append(out, &model.ArtifactCandidate{
			Path:      filepath.Join(dir, entry.Name()),
			SizeBytes: info.Size(),
			Extension: ext,
			Priority:  priorityOf(ext, preferred),
		})
	}
	return out
}

func fromDeclared(declared, preferred string) (*model.ArtifactCandidate, bool) {
	if declared == "" {
		return nil, false
	}
	info, err := os.Stat(declared)
	if err != nil || info.IsDir() {
		return nil, false
	}
	ext := strings.ToLower(filepath.Ext(declared))
	return &model.ArtifactCandidate{
		Path:      declared,
		SizeBytes: info.Size(),
		Extension: ext,
		Priority:  priorityOf(ext, preferred),
	}, true
}

// priorityOf ranks an extension: 0 for the configured preference, then the
// default compatibility order, then everything else.
func priorityOf(ext, preferred string) int {
	if preferred != "" && ext == normalizeExt(preferred) {
		return 0
	}
	for i, p := range defaultPriority {
		if ext == p {
			return i + 1
		}
	}
	return len(defaultPriority) + 1
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
