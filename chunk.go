package askweb

import "strings"

// ChunkWords splits text into segments of at most size words each.
// Words are runs of non-whitespace; the original spacing is not preserved
// and segments are rejoined with single spaces. Every segment except the
// last holds exactly size words. Returns nil for empty text or size <= 0.
func ChunkWords(text string, size int) []string {
	if size <= 0 {
		return nil
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		end := min(start+size, len(words))
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
