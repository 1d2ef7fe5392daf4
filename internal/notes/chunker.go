// Package notes splits note text into overlapping chunks sized for
// embedding. The parameters match what the python companion records in the
// file store.
package notes

const (
	DefaultChunkSize    = 512
	DefaultChunkOverlap = 24
)

// Chunk pairs a chunk id with its text.
type Chunk struct {
	ID   string
	Text string
}

// Split cuts text into chunks of at most size runes, each chunk overlapping
// the previous one by overlap runes. An empty text yields no chunks; a text
// shorter than size yields one.
func Split(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = DefaultChunkOverlap
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	step := size - overlap
	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}
