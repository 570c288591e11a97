package rag

import (
	"regexp"
	"strings"
)

var paragraphBreak = regexp.MustCompile(`\n{2,}`)

// Chunker splits raw document text into bounded-size chunks along paragraph
// boundaries. Paragraphs are never split unless a single paragraph alone
// exceeds the size budget, in which case it is emitted whole.
type Chunker struct {
	maxChunkSize   int
	minChunkLength int
}

func NewChunker(maxChunkSize, minChunkLength int) *Chunker {
	return &Chunker{
		maxChunkSize:   maxChunkSize,
		minChunkLength: minChunkLength,
	}
}

// Chunk splits text on blank-line boundaries and greedily accumulates
// trimmed paragraphs, joined by a blank line, up to the size budget.
// Chunks shorter than the minimum length are dropped as noise (stray
// headers, page numbers).
func (c *Chunker) Chunk(text string) []string {
	paragraphs := paragraphBreak.Split(text, -1)

	var chunks []string
	current := ""

	for _, paragraph := range paragraphs {
		trimmed := strings.TrimSpace(paragraph)
		if trimmed == "" {
			continue
		}

		switch {
		case current == "":
			current = trimmed
		case len(current)+len("\n\n")+len(trimmed) > c.maxChunkSize:
			chunks = append(chunks, current)
			current = trimmed
		default:
			current += "\n\n" + trimmed
		}
	}

	if current != "" {
		chunks = append(chunks, current)
	}

	filtered := chunks[:0]
	for _, chunk := range chunks {
		if len(chunk) >= c.minChunkLength {
			filtered = append(filtered, chunk)
		}
	}

	return filtered
}
