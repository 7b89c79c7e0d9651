package analyzer

import (
	"regexp"
	"strings"
)

// Character classes for the sentence grammar. The CJK ranges follow the
// Unicode blocks for ideographs (U+4E00-U+9FFF plus the extensions and
// compatibility blocks) and Kangxi/CJK radicals.
const (
	ideographs = `\x{3007}\x{3400}-\x{4DBF}\x{4E00}-\x{9FFF}\x{F900}-\x{FAFF}` +
		`\x{20000}-\x{2A6DF}\x{2A700}-\x{2B73F}\x{2B740}-\x{2B81F}\x{2F800}-\x{2FA1F}`
	radicals = `\x{2E80}-\x{2EF3}\x{2F00}-\x{2FD5}`

	// Word characters, the Unicode way (letters, digits, underscore).
	wordChars = `\p{L}\p{N}_`

	// Chinese punctuation that does not terminate a sentence.
	cjkNonStops = `＂＃＄％＆＇（）＊＋，－／：；＜＝＞＠［＼］＾＿｀｛｜｝～｟｠｢｣､` +
		"　" + `、〃〈〉《》「」『』【】〔〕〖〗〘〙〚〛〜〝〞〟〰〾〿` +
		`–—‘’‛“”„‟…‧﹏﹑﹔·─．○`

	// Latin punctuation and separators allowed mid-sentence.
	latinNonStops = `\.\-#(),;:%$&*+/<=>@\[\]\^_` + "`" + `{|}~\\ `

	// Sentence-terminal punctuation.
	cjkStops   = `。！？｡`
	latinStops = `!?`

	// Closing quotes and brackets that may trail the terminal mark.
	closers = `」﹂”』’》）］｝〕〗〙〛〉】`
)

var sentencePattern = regexp.MustCompile(
	`[` + ideographs + wordChars + `]+` +
		`[` + ideographs + wordChars + radicals + cjkNonStops + latinNonStops + `]*` +
		`[` + cjkStops + `…` + "\n" + latinStops + `]` +
		`[` + closers + `]*`)

// SentenceSegmenter splits Chinese text into sentences with a single greedy
// left-to-right scan: a sentence starts with ideographs or word characters,
// may continue with radicals and non-stop punctuation, and ends at one
// sentence-stop mark optionally followed by closing quotes or brackets.
type SentenceSegmenter struct{}

func NewSentenceSegmenter() *SentenceSegmenter {
	return &SentenceSegmenter{}
}

// Segment returns the trimmed, non-empty sentences of text in order of first
// appearance. The result is empty when the text contains no recognizable
// sentence.
func (s *SentenceSegmenter) Segment(text string) []string {
	matches := sentencePattern.FindAllString(text, -1)
	sentences := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if m != "" {
			sentences = append(sentences, m)
		}
	}
	return sentences
}
