// Package options turns the flat option map into a fully-resolved, immutable
// Config. Every recognized key is enumerated here and resolved to a concrete
// value or its documented default. Malformed values never fail: they degrade
// to the default (regexes to "feature absent").
package options

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/John-Robertt/nodefmt-go/internal/region"
	"github.com/John-Robertt/nodefmt-go/internal/textnorm"
)

// Config is built once per invocation and never mutated afterwards.
type Config struct {
	// Name composition.
	Prefix      string
	Abbr        bool   // abbreviation vs full type name
	TypeFormat  string // "bracket" | "paren" | "none"
	LabelCase   string // "upper" | "lower"
	IncludeType bool
	TypeAfter   bool // pos=after places the label behind the base name
	Sep         string
	Template    string
	UnknownType string // "short" | "full" | "ignore"
	TypeAbbrs   map[string]string

	// Text cleanup.
	Clean textnorm.Steps

	// Filtering.
	Include      []string
	Exclude      []string
	RegexInclude *regexp.Regexp
	RegexExclude *regexp.Regexp
	OnlyTypes    []string
	DropTypes    []string

	// Dedupe / sort.
	Dedupe   string // "" | "addr" | "name" | "all"
	SortBy   string // "" | "name" | "type"
	SortDesc bool

	// Region / flag.
	AddFlag          bool
	LocLang          string // "zh" | "en" | "flag"
	Region           *region.Classifier
	FallbackFlag     string
	RemoveRegionName bool

	// Conflict resolution.
	Conflict string // "index" | "hash" | "drop" | "none"
	IndexPad int    // >= 2
	HashLen  int    // >= 1
}

const defaultFallbackFlag = "\U0001F3F4‍☠️"

// Parse resolves raw option values into a Config. raw values arrive decoded by
// the host except for the keys the wire contract ships pre-encoded (name, sep,
// template, regionMap, fallbackFlag, regexInclude, regexExclude); those are
// percent-decoded here.
func Parse(raw map[string]string) *Config {
	get := func(key string) string { return raw[key] }
	getPct := func(key string) string { return pctDecode(raw[key]) }

	prefix := getPct("name")
	if prefix == "" {
		prefix = getPct("subName")
	}

	cfg := &Config{
		Prefix:      prefix,
		Abbr:        parseBool(get("abbr"), true),
		TypeFormat:  parseEnum(get("typeFmt"), "bracket", "bracket", "paren", "none"),
		LabelCase:   parseEnum(get("case"), "upper", "upper", "lower"),
		IncludeType: parseBool(get("includeType"), true),
		TypeAfter:   parseEnum(get("pos"), "before", "before", "after") == "after",
		Sep:         withDefault(getPct("sep"), " - "),
		Template:    getPct("template"),
		UnknownType: parseEnum(get("keepUnknownType"), "short", "short", "full", "ignore"),
		TypeAbbrs:   mergeAbbrs(get("map")),

		Clean: textnorm.Steps{
			RemoveEmoji: parseBool(get("removeEmoji"), false),
			Sanitize:    parseBool(get("sanitize"), false),
			TrimSpaces:  parseBool(get("trimSpaces"), false),
			Normalize:   parseBool(get("normalize"), false),
			CJKSpace:    parseBool(get("cjkSpace"), false),
			MaxLen:      parseInt(get("maxLen"), 0, 0),
		},

		Include:      parseList(get("include")),
		Exclude:      parseList(get("exclude")),
		RegexInclude: parseRegex(getPct("regexInclude")),
		RegexExclude: parseRegex(getPct("regexExclude")),
		OnlyTypes:    parseList(get("onlyTypes")),
		DropTypes:    parseList(get("dropTypes")),

		Dedupe:   parseEnum(get("dedupe"), "", "addr", "name", "all"),
		SortBy:   parseEnum(get("sortBy"), "", "name", "type"),
		SortDesc: parseEnum(get("sortOrder"), "asc", "asc", "desc") == "desc",

		AddFlag:          parseBool(get("addFlag"), false),
		LocLang:          parseEnum(get("locLang"), "zh", "zh", "en", "flag"),
		Region:           &region.Classifier{User: region.ParseUserRules(getPct("regionMap"))},
		FallbackFlag:     withDefault(getPct("fallbackFlag"), defaultFallbackFlag),
		RemoveRegionName: parseBool(get("removeRegionName"), false),

		Conflict: parseEnum(get("conflict"), "index", "index", "hash", "drop", "none"),
		IndexPad: parseInt(get("indexPad"), 2, 2),
		HashLen:  parseInt(get("hashLen"), 4, 1),
	}
	return cfg
}

// ShouldRename reports whether the composer rewrites names at all. Without a
// trigger the original name passes through untouched (identity law).
func (c *Config) ShouldRename() bool {
	return c.Prefix != "" || c.Template != "" || !c.IncludeType || c.AddFlag
}

func pctDecode(s string) string {
	if s == "" || !strings.ContainsAny(s, "%+") {
		return s
	}
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

func withDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// parseBool is the loose boolean coercion: anything outside the two accepted
// sets falls back to def, never errors.
func parseBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	case "0", "false", "off", "no":
		return false
	default:
		return def
	}
}

func parseEnum(s, def string, allowed ...string) string {
	s = strings.TrimSpace(s)
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	return def
}

func parseInt(s string, def, min int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	return n
}

// parseList splits on '+' or ',', trims, and drops empty tokens. Order is
// preserved; duplicates are allowed.
func parseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '+' || r == ',' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// parseRegex compiles a case-insensitive pattern. Compile failure disables the
// feature entirely (nil), which is treated as "absent" downstream.
func parseRegex(s string) *regexp.Regexp {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	re, err := regexp.Compile("(?i)" + s)
	if err != nil {
		return nil
	}
	return re
}
