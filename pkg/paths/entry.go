package paths

import (
	"path/filepath"
	"strings"
)

// Separator is the separator archive listings are split on.
var Separator = string(filepath.Separator)

// Entry is a relative archive path carried in both its original and its
// lowered form. The two segment slices always have the same length.
type Entry struct {
	Original        string
	Lowered         string
	Segments        []string
	LoweredSegments []string
}

// NewEntry splits path into an Entry. Empty segments are kept so indexes
// line up with a plain split of the listed string.
func NewEntry(path string) Entry {
	lowered := strings.ToLower(path)
	return Entry{
		Original:        path,
		Lowered:         lowered,
		Segments:        Split(path),
		LoweredSegments: Split(lowered),
	}
}

// NewEntries converts a file list into entries, preserving order.
func NewEntries(files []string) []Entry {
	entries := make([]Entry, len(files))
	for i, f := range files {
		entries[i] = NewEntry(f)
	}
	return entries
}

// Split splits a path on Separator without dropping empty segments.
func Split(path string) []string {
	return strings.Split(path, Separator)
}

// Join joins segments with Separator without cleaning the result.
func Join(segments []string) string {
	return strings.Join(segments, Separator)
}

// NonEmpty returns the segments that are not empty strings.
func NonEmpty(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// IndexOf returns the index of the first segment equal to name, or -1.
func IndexOf(segments []string, name string) int {
	for i, s := range segments {
		if s == name {
			return i
		}
	}
	return -1
}

// Base returns the final segment of the entry, which may be empty when the
// listed path ends in a separator.
func (e Entry) Base() string {
	return e.Segments[len(e.Segments)-1]
}

// LoweredBase returns the final segment of the lowered view.
func (e Entry) LoweredBase() string {
	return e.LoweredSegments[len(e.LoweredSegments)-1]
}

// LoweredAt returns the lowered segment at idx and whether idx is in range.
func (e Entry) LoweredAt(idx int) (string, bool) {
	if idx < 0 || idx >= len(e.LoweredSegments) {
		return "", false
	}
	return e.LoweredSegments[idx], true
}

// IsDirectoryMarker reports whether the final segment has no extension.
func (e Entry) IsDirectoryMarker() bool {
	return Ext(e.Base()) == ""
}

// Ext returns the extension of a single path segment: everything from the
// last dot, unless that dot leads the segment. "file." and "..." yield ".",
// while ".hidden" and ".." yield "".
func Ext(segment string) string {
	if segment == ".." {
		return ""
	}
	idx := strings.LastIndex(segment, ".")
	if idx <= 0 {
		return ""
	}
	return segment[idx:]
}
