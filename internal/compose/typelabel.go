package compose

import (
	"strings"

	"github.com/John-Robertt/nodefmt-go/internal/options"
)

// TypeLabel derives the displayed protocol-type label: abbreviation lookup,
// unknown-type policy, case, then bracket style. Empty means the label is
// suppressed entirely.
func TypeLabel(cfg *options.Config, typ string) string {
	up := strings.ToUpper(strings.TrimSpace(typ))
	label, ok := cfg.TypeAbbrs[up]
	switch {
	case !ok && cfg.UnknownType == "ignore":
		return ""
	case !ok && cfg.UnknownType == "full":
		label = up
	case !ok:
		label = shortCode(up)
	case !cfg.Abbr:
		label = up
	}
	if label == "" {
		return ""
	}
	if cfg.LabelCase == "lower" {
		label = strings.ToLower(label)
	} else {
		label = strings.ToUpper(label)
	}
	switch cfg.TypeFormat {
	case "paren":
		return "(" + label + ")"
	case "none":
		return label
	default:
		return "[" + label + "]"
	}
}

// shortCode is the first two characters of the uppercase type name.
func shortCode(up string) string {
	runes := []rune(up)
	if len(runes) <= 2 {
		return up
	}
	return string(runes[:2])
}
