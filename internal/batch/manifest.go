package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame    int     `json:"frame"`
	Time     float64 `json:"time"`
	Position float64 `json:"position"`
	Velocity float64 `json:"velocity"`
	Hovered  *int    `json:"hovered"`
	Image    string  `json:"image,omitempty"`
}

// WriteManifest writes the frame manifest to path. Frames whose result
// failed are listed without an image.
func WriteManifest(path string, frames []Frame, results []Result) error {
	ok := make(map[int]string, len(results))
	for _, r := range results {
		if r.Success {
			ok[r.Frame] = r.Image
		}
	}

	entries := make([]ManifestEntry, len(frames))
	for i, f := range frames {
		e := ManifestEntry{
			Frame:    f.Index,
			Time:     f.Time.Seconds(),
			Position: f.Position,
			Velocity: f.Velocity,
			Image:    ok[f.Index],
		}
		if f.Hovered >= 0 {
			h := f.Hovered
			e.Hovered = &h
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
