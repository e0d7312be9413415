package vectorstore

// Split segments text into verbatim character windows of at most size runes
// with overlap runes shared between consecutive windows (stride =
// size-overlap). The final window may be shorter; every character of the
// input appears in at least one window. Boundaries depend only on the input
// and the two parameters, so rebuilding from unchanged input is idempotent.
func Split(text string, size, overlap int) []string {
	if text == "" {
		return nil
	}
	if size <= 0 {
		size = DefaultChunkSize
	}
	stride := size - overlap
	if stride <= 0 {
		stride = size
	}

	runes := []rune(text)
	var chunks []string
	for start := 0; start < len(runes); start += stride {
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
