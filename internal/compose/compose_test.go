package compose

import (
	"testing"

	"github.com/John-Robertt/nodefmt-go/internal/options"
)

func parse(t *testing.T, raw map[string]string) *options.Config {
	t.Helper()
	return options.Parse(raw)
}

func TestName_PassthroughLaw(t *testing.T) {
	// No prefix, no template, includeType default, addFlag off: identity.
	cfg := parse(t, map[string]string{"removeEmoji": "true", "trimSpaces": "true"})
	for _, name := range []string{"HK-01", "  spaced  ", "🇺🇸 US", ""} {
		if got := Name(cfg, name, "vmess"); got != name {
			t.Fatalf("passthrough broken: %q -> %q", name, got)
		}
	}
}

func TestTypeLabel(t *testing.T) {
	tests := []struct {
		opts map[string]string
		typ  string
		want string
	}{
		{map[string]string{}, "vmess", "[VM]"},
		{map[string]string{"abbr": "false"}, "vmess", "[VMESS]"},
		{map[string]string{"typeFmt": "paren"}, "ss", "(SS)"},
		{map[string]string{"typeFmt": "none"}, "trojan", "TR"},
		{map[string]string{"case": "lower"}, "vless", "[vl]"},
		// Unknown type policies.
		{map[string]string{}, "mystery", "[MY]"},
		{map[string]string{"keepUnknownType": "full"}, "mystery", "[MYSTERY]"},
		{map[string]string{"keepUnknownType": "ignore"}, "mystery", ""},
		// User override.
		{map[string]string{"map": "VMESS:V2"}, "vmess", "[V2]"},
	}
	for _, tt := range tests {
		cfg := parse(t, tt.opts)
		if got := TypeLabel(cfg, tt.typ); got != tt.want {
			t.Fatalf("TypeLabel(%v, %q)=%q, want %q", tt.opts, tt.typ, got, tt.want)
		}
	}
}

func TestName_PartsMode(t *testing.T) {
	cfg := parse(t, map[string]string{"name": "Sub"})
	if got := Name(cfg, "HK-01", "vmess"); got != "Sub - [VM] - HK-01" {
		t.Fatalf("got %q", got)
	}

	cfg = parse(t, map[string]string{"name": "Sub", "pos": "after", "sep": "%20%2F%20"})
	if got := Name(cfg, "HK-01", "vmess"); got != "Sub / HK-01 / [VM]" {
		t.Fatalf("pos=after got %q", got)
	}

	// Type display disabled is itself a rename trigger but yields just the
	// remaining parts.
	cfg = parse(t, map[string]string{"includeType": "false", "name": "Sub"})
	if got := Name(cfg, "HK-01", "vmess"); got != "Sub - HK-01" {
		t.Fatalf("includeType=false got %q", got)
	}
}

func TestName_RegionSegment(t *testing.T) {
	cfg := parse(t, map[string]string{"addFlag": "on"})
	if got := Name(cfg, "US-LosAngeles-01", "vmess"); got != "🇺🇸 美国 - [VM] - US-LosAngeles-01" {
		t.Fatalf("got %q", got)
	}

	cfg = parse(t, map[string]string{"addFlag": "on", "locLang": "flag", "removeRegionName": "on"})
	if got := Name(cfg, "US PRO", "vmess"); got != "🇺🇸 - [VM] - PRO" {
		t.Fatalf("stripped got %q", got)
	}
}

func TestName_TemplateMode(t *testing.T) {
	cfg := parse(t, map[string]string{
		"template": "%7Bprefix%7D%7Bsep%7D%7Btype%7D%20%7Bname%7D",
		"name":     "Sub",
	})
	if got := Name(cfg, "HK-01", "ss"); got != "Sub - [SS] HK-01" {
		t.Fatalf("template got %q", got)
	}

	// All placeholders resolve, possibly to empty strings.
	cfg = parse(t, map[string]string{"template": "%7Bregion%7D%7Bname%7D"})
	if got := Name(cfg, "HK-01", "ss"); got != "HK-01" {
		t.Fatalf("empty region placeholder got %q", got)
	}
}

func TestName_CleanupAfterCompose(t *testing.T) {
	cfg := parse(t, map[string]string{"name": "Sub", "trimSpaces": "true", "maxLen": "10"})
	if got := Name(cfg, "HK   01", "vmess"); got != "Sub - [VM…" {
		t.Fatalf("got %q", got)
	}
}
