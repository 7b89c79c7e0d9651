package port

// Segmenter splits raw text into an ordered sequence of sentences.
type Segmenter interface {
	Segment(text string) []string
}
