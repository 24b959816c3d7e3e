package policy

import (
	"strings"
	"unicode/utf8"
)

const (
	defaultChunkSize    = 1000
	defaultChunkOverlap = 200
)

// SplitText cuts text into chunks of at most chunkSize characters with the
// given overlap between consecutive chunks. Cuts prefer paragraph breaks,
// then line breaks, then spaces, so policy sections stay intact where
// possible.
func SplitText(text string, chunkSize, overlap int) []string {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = defaultChunkOverlap
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= chunkSize {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + chunkSize
		if end >= len(text) {
			chunk := strings.TrimSpace(text[start:])
			if chunk != "" {
				chunks = append(chunks, chunk)
			}
			break
		}

		cut := findCut(text, start, end)
		chunk := strings.TrimSpace(text[start:cut])
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		next := cut - overlap
		if next <= start {
			next = cut
		}
		start = runeBoundary(text, next)
	}

	return chunks
}

// findCut picks the best split point in text[start:end], scanning backwards
// for a natural boundary. Never cuts earlier than the middle of the window.
func findCut(text string, start, end int) int {
	minCut := start + (end-start)/2
	for _, sep := range []string{"\n\n", "\n", " "} {
		if idx := strings.LastIndex(text[minCut:end], sep); idx >= 0 {
			return minCut + idx + len(sep)
		}
	}
	return runeBoundary(text, end)
}

// runeBoundary advances a byte offset to the start of the next rune so slices
// taken at it stay valid UTF-8.
func runeBoundary(text string, i int) int {
	for i < len(text) && !utf8.RuneStart(text[i]) {
		i++
	}
	return i
}
