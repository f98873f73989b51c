// Package textnorm provides the deterministic name-cleanup primitives.
//
// Every function is pure string -> string. Apply composes the enabled steps in
// a fixed order: emoji strip, illegal-character sanitize, whitespace collapse,
// NFKC, CJK/Latin spacing (followed by another collapse), truncation.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Steps selects which cleanup stages run. Zero value runs nothing.
type Steps struct {
	RemoveEmoji bool
	Sanitize    bool
	TrimSpaces  bool
	Normalize   bool
	CJKSpace    bool

	// MaxLen truncates names longer than this many runes; 0 means unlimited.
	MaxLen int
}

// Apply runs the enabled steps over s in the fixed order.
func Apply(s string, st Steps) string {
	if st.RemoveEmoji {
		s = RemoveEmoji(s)
	}
	if st.Sanitize {
		s = Sanitize(s)
	}
	if st.TrimSpaces {
		s = CollapseSpaces(s)
	}
	if st.Normalize {
		s = norm.NFKC.String(s)
	}
	if st.CJKSpace {
		s = CollapseSpaces(SpaceCJK(s))
	}
	if st.MaxLen > 0 {
		s = Truncate(s, st.MaxLen)
	}
	return s
}

// RemoveEmoji deletes astral-plane pictographs (U+1F000..U+1FAFF, which covers
// the regional-indicator letters). BMP symbols are kept as-is.
func RemoveEmoji(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0x1F000 && r <= 0x1FAFF {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Sanitize replaces characters that are illegal in most client UIs and file
// names with '-'.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\\', '/', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, s)
}

// CollapseSpaces folds runs of two or more whitespace characters into a single
// space and trims both ends. A lone tab or NBSP inside the name is kept.
func CollapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	run := 0
	var last rune
	for _, r := range s {
		if isSpace(r) {
			run++
			last = r
			continue
		}
		switch run {
		case 0:
		case 1:
			b.WriteRune(last)
		default:
			b.WriteByte(' ')
		}
		run = 0
		b.WriteRune(r)
	}
	if run == 1 {
		b.WriteRune(last)
	} else if run > 1 {
		b.WriteByte(' ')
	}
	return strings.TrimSpace(b.String())
}

// SpaceCJK inserts exactly one space at every boundary between a CJK character
// and a Latin letter or digit. Existing spaces are not duplicated; Apply runs
// a collapse right after.
func SpaceCJK(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	var prev rune
	first := true
	for _, r := range s {
		if !first && ((isCJK(prev) && isLatinWord(r)) || (isLatinWord(prev) && isCJK(r))) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
		first = false
	}
	return b.String()
}

// Truncate cuts s to maxLen-1 runes and appends an ellipsis when s exceeds
// maxLen runes.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	n := 0
	cut := -1
	for i := range s {
		if n == maxLen-1 {
			cut = i
		}
		n++
		if n > maxLen {
			return s[:cut] + "…"
		}
	}
	return s
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0x85, 0xA0, 0x3000:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

func isLatinWord(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isCJK(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // CJK unified
		return true
	case r >= 0x3400 && r <= 0x4DBF: // extension A
		return true
	case r >= 0x3040 && r <= 0x30FF: // hiragana + katakana
		return true
	case r >= 0xAC00 && r <= 0xD7AF: // hangul syllables
		return true
	case r >= 0xF900 && r <= 0xFAFF: // compatibility ideographs
		return true
	}
	return false
}
