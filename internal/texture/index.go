package texture

import (
	"os"
	"path/filepath"
	"strings"
)

var imageExts = map[string]int{
	".tga":  3,
	".png":  2,
	".jpg":  1,
	".jpeg": 1,
}

// Index maps lowercase file stems to image paths.
// When several files share a stem, formats with alpha win (TGA, then PNG).
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex scans dir (recursively) for hover images. A missing or empty
// dir yields an empty index.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}
	if dir == "" {
		return idx
	}

	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		rank, ok := imageExts[ext]
		if !ok {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

		existing, exists := idx.entries[stem]
		if !exists || rank > imageExts[strings.ToLower(filepath.Ext(existing))] {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the image path for a label, or ("", false).
// Labels match stems case-insensitively with spaces as underscores.
func (idx *Index) ResolvePath(label string) (string, bool) {
	stem := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(label), " ", "_"))
	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed images.
func (idx *Index) Len() int {
	return len(idx.entries)
}
