package flashcards

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	paragraphSep = regexp.MustCompile(`\n\s*\n|\r\n\s*\r\n`)
	sentenceRe   = regexp.MustCompile(`[^.!?]+[.!?]*`)
)

// paragraphs splits text on blank lines and drops empty paragraphs.
func paragraphs(text string) []string {
	var out []string
	for _, p := range paragraphSep.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// sentences returns the trimmed sentences of one paragraph, each keeping its
// terminal punctuation.
func sentences(paragraph string) []string {
	var out []string
	for _, s := range sentenceRe.FindAllString(paragraph, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func allSentences(paras []string) []string {
	var out []string
	for _, p := range paras {
		out = append(out, sentences(p)...)
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// splitPunct separates a token into leading punctuation, the word itself and
// trailing punctuation.
func splitPunct(token string) (lead, word, trail string) {
	start := strings.IndexFunc(token, isWordRune)
	if start < 0 {
		return token, "", ""
	}
	end := strings.LastIndexFunc(token, isWordRune)
	_, size := utf8.DecodeRuneInString(token[end:])
	end += size
	return token[:start], token[start:end], token[end:]
}

func stripPunct(token string) string {
	_, w, _ := splitPunct(token)
	return w
}

// significantWords lowercases and strips every token, keeping those longer
// than four characters.
func significantWords(text string) []string {
	var out []string
	for _, tok := range strings.Fields(text) {
		w := strings.ToLower(stripPunct(tok))
		if utf8.RuneCountInString(w) > 4 {
			out = append(out, w)
		}
	}
	return out
}

func charCount(s string) int { return utf8.RuneCountInString(s) }
