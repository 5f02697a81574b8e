// Package topics extracts normalized topic tokens from free-form post text
// Pipeline order
// 1 Unicode fold via NFKD decomposition, case folding, mark stripping, recompose
// 2 Strip URLs
// 3 Pull hashtag tokens
// 4 Tokenize the remaining prose into letter-only words of length >= 3
// 5 Drop stop words and dedupe
package topics

import (
	"regexp"
	"sort"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var (
	urlRe     = regexp.MustCompile(`https?://\S+`)
	hashtagRe = regexp.MustCompile(`#[A-Za-z0-9_]+`)
	wordRe    = regexp.MustCompile(`[A-Za-z]{3,}`)
)

// pool of fresh transformer chains, mirrors the documented pipeline
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,                          // decompose so marks detach from base letters
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map remaining width variants to ASCII
			norm.NFC,                           // recompose what survived
		)
	},
}

// fold lowercases and ASCII-folds s so the letter-only tokenizer sees as much as possible
func fold(s string) string {
	if s == "" {
		return ""
	}
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	return ns
}

// Extract returns the deduplicated topic set for text as a sorted slice
// Hashtags contribute their tag text, the remaining prose contributes
// letter-only words of length three or more, stop words are dropped
// Empty input yields an empty slice and the function never fails
func Extract(text string) []string {
	if text == "" {
		return nil
	}

	s := fold(text)
	s = urlRe.ReplaceAllString(s, " ")

	seen := map[string]struct{}{}
	add := func(tok string) {
		if _, stop := stopWords[tok]; stop {
			return
		}
		seen[tok] = struct{}{}
	}

	for _, h := range hashtagRe.FindAllString(s, -1) {
		add(h[1:]) // folding already lowercased the tag text
	}

	// tokenize prose with hashtags removed so tag bodies are not double counted
	prose := hashtagRe.ReplaceAllString(s, " ")
	for _, w := range wordRe.FindAllString(prose, -1) {
		add(w)
	}

	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
