// Package region detects a geographic origin from a node name using an
// ordered, first-match-wins rule table. User rules always run before the
// built-in table; priority is strictly positional, never scored.
package region

import (
	"regexp"
	"strings"

	"github.com/John-Robertt/nodefmt-go/internal/textnorm"
)

// Rule maps a detection pattern to a localized label pair and a flag glyph.
type Rule struct {
	Pattern *regexp.Regexp
	ZH      string
	EN      string
	Flag    string
}

// Classifier holds the per-invocation rule set. The zero value uses only the
// built-in table.
type Classifier struct {
	// User rules are checked before the built-in table, in declaration order.
	User []Rule
}

// ParseUserRules parses the regionMap option: "+"-separated pattern:label:flag
// entries. Entries missing a separator or carrying an uncompilable pattern are
// skipped individually; the rest still apply. The single user label is used
// for both language variants.
func ParseUserRules(raw string) []Rule {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []Rule
	for _, entry := range strings.Split(raw, "+") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) < 3 {
			continue
		}
		pat, err := regexp.Compile("(?i)" + parts[0])
		if err != nil {
			continue
		}
		label := strings.TrimSpace(parts[1])
		flag := strings.TrimSpace(parts[2])
		out = append(out, Rule{Pattern: pat, ZH: label, EN: label, Flag: flag})
	}
	return out
}

// Detect returns the first rule whose pattern matches name, scanning user
// rules first and then the built-in table.
func (c *Classifier) Detect(name string) (Rule, bool) {
	for _, r := range c.User {
		if r.Pattern.MatchString(name) {
			return r, true
		}
	}
	for _, r := range builtin {
		if r.Pattern.MatchString(name) {
			return r, true
		}
	}
	return Rule{}, false
}

// RegionString builds the region segment for a name. Empty when flag
// annotation is off. lang is "zh", "en" or "flag"; unknown values behave like
// "zh". fallbackFlag is used when no rule matches.
func (c *Classifier) RegionString(name, lang, fallbackFlag string, addFlag bool) string {
	if !addFlag {
		return ""
	}
	rule, ok := c.Detect(name)
	flag := fallbackFlag
	if ok && rule.Flag != "" {
		flag = rule.Flag
	}
	if lang == "flag" {
		return flag
	}
	label := ""
	if ok {
		if lang == "en" {
			label = rule.EN
		} else {
			label = rule.ZH
		}
	}
	if label == "" {
		return flag
	}
	return flag + " " + label
}

var (
	riPairPattern = regexp.MustCompile(`[\x{1F1E6}-\x{1F1FF}]{2}`)

	// Flag glyphs that are not regional-indicator pairs. Longest first so the
	// ZWJ sequences win over their base glyph.
	looseFlagGlyphs = []string{
		"\U0001F3F4\U000E0067\U000E0062\U000E0065\U000E006E\U000E0067\U000E007F", // england
		"\U0001F3F4\U000E0067\U000E0062\U000E0073\U000E0063\U000E0074\U000E007F", // scotland
		"\U0001F3F4\U000E0067\U000E0062\U000E0077\U000E006C\U000E0073\U000E007F", // wales
		"\U0001F3F4‍☠️", // pirate
		"\U0001F3F3️‍\U0001F308", // rainbow
		"\U0001F3F4", "\U0001F3F3️", "\U0001F3F3",
		"\U0001F3C1", "\U0001F6A9", "\U0001F38C",
	}
)

// StripTokens removes every region-detection pattern occurrence from name:
// user rules first, then built-ins, then two-code-point regional-indicator
// flags, then the loose flag glyphs, collapsing whitespace after each pass.
//
// Stripping is independent of Detect and intentionally broad: a pattern may
// match inside an unrelated token and still be removed.
func (c *Classifier) StripTokens(name string) string {
	for _, r := range c.User {
		name = textnorm.CollapseSpaces(r.Pattern.ReplaceAllString(name, ""))
	}
	for _, r := range builtin {
		name = textnorm.CollapseSpaces(r.Pattern.ReplaceAllString(name, ""))
	}
	name = textnorm.CollapseSpaces(riPairPattern.ReplaceAllString(name, ""))
	for _, g := range looseFlagGlyphs {
		name = strings.ReplaceAll(name, g, "")
	}
	return textnorm.CollapseSpaces(name)
}
