package domnav

import (
	"strings"

	"github.com/rivo/uniseg"
)

// span is one granularity unit within a text node's data, as byte
// offsets into the data string.
type span struct {
	start, end int
}

// segment splits text into granularity units. Word and sentence
// segmentation follow UAX #29 via uniseg; whitespace-only units are
// dropped for those granularities so navigation lands on content.
func segment(text string, g Granularity) []span {
	switch g {
	case Character:
		return graphemes(text)
	case Word:
		return words(text)
	case Sentence:
		return sentences(text)
	default:
		if text == "" {
			return nil
		}
		return []span{{0, len(text)}}
	}
}

func graphemes(text string) []span {
	var out []span
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		a, b := gr.Positions()
		out = append(out, span{a, b})
	}
	return out
}

func words(text string) []span {
	var out []span
	rest := text
	off := 0
	state := -1
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if strings.TrimSpace(word) != "" {
			out = append(out, span{off, off + len(word)})
		}
		off += len(word)
	}
	return out
}

func sentences(text string) []span {
	var out []span
	rest := text
	off := 0
	state := -1
	for len(rest) > 0 {
		var sentence string
		sentence, rest, state = uniseg.FirstSentenceInString(rest, state)
		if strings.TrimSpace(sentence) != "" {
			out = append(out, span{off, off + len(sentence)})
		}
		off += len(sentence)
	}
	return out
}

// segmentIndex locates the unit containing a byte offset. Offsets past
// the last unit clamp to it; an offset before the first clamps to 0.
func segmentIndex(segs []span, offset int) int {
	if len(segs) == 0 {
		return -1
	}
	for i, s := range segs {
		if offset < s.end {
			return i
		}
	}
	return len(segs) - 1
}
