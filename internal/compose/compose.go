// Package compose decides whether and how a node's display name is rewritten:
// template substitution or ordered-part assembly, finished by the text
// normalizer.
package compose

import (
	"strings"

	"github.com/John-Robertt/nodefmt-go/internal/options"
	"github.com/John-Robertt/nodefmt-go/internal/textnorm"
)

// Name composes the final display name for a node with the given raw name and
// protocol type. Without a rename trigger (prefix, template, type display
// disabled, or flag annotation) the raw name is returned byte-for-byte.
func Name(cfg *options.Config, rawName, typ string) string {
	if !cfg.ShouldRename() {
		return rawName
	}

	regionStr := cfg.Region.RegionString(rawName, cfg.LocLang, cfg.FallbackFlag, cfg.AddFlag)
	base := rawName
	if cfg.RemoveRegionName {
		base = cfg.Region.StripTokens(base)
	}
	label := ""
	if cfg.IncludeType {
		label = TypeLabel(cfg, typ)
	}

	var out string
	if cfg.Template != "" {
		// Placeholders are disjoint literals; every one resolves, possibly to
		// the empty string.
		out = strings.NewReplacer(
			"{prefix}", cfg.Prefix,
			"{sep}", cfg.Sep,
			"{type}", label,
			"{region}", regionStr,
			"{name}", base,
		).Replace(cfg.Template)
	} else {
		parts := make([]string, 0, 4)
		if regionStr != "" {
			parts = append(parts, regionStr)
		}
		if cfg.Prefix != "" {
			parts = append(parts, cfg.Prefix)
		}
		if cfg.TypeAfter {
			parts = appendNonEmpty(parts, base, label)
		} else {
			parts = appendNonEmpty(parts, label, base)
		}
		out = strings.Join(parts, cfg.Sep)
	}

	return textnorm.Apply(out, cfg.Clean)
}

func appendNonEmpty(parts []string, vals ...string) []string {
	for _, v := range vals {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return parts
}
