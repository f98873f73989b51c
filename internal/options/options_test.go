package options

import "testing"

func TestParse_Defaults(t *testing.T) {
	cfg := Parse(map[string]string{})

	if cfg.Prefix != "" {
		t.Fatalf("Prefix=%q, want empty", cfg.Prefix)
	}
	if !cfg.Abbr || !cfg.IncludeType {
		t.Fatalf("Abbr/IncludeType defaults wrong: %v/%v", cfg.Abbr, cfg.IncludeType)
	}
	if cfg.TypeFormat != "bracket" || cfg.LabelCase != "upper" || cfg.TypeAfter {
		t.Fatalf("type display defaults wrong: %q/%q/%v", cfg.TypeFormat, cfg.LabelCase, cfg.TypeAfter)
	}
	if cfg.Sep != " - " {
		t.Fatalf("Sep=%q, want %q", cfg.Sep, " - ")
	}
	if cfg.UnknownType != "short" {
		t.Fatalf("UnknownType=%q", cfg.UnknownType)
	}
	if cfg.Dedupe != "" || cfg.SortBy != "" || cfg.SortDesc {
		t.Fatalf("dedupe/sort defaults wrong: %q/%q/%v", cfg.Dedupe, cfg.SortBy, cfg.SortDesc)
	}
	if cfg.AddFlag || cfg.LocLang != "zh" || cfg.RemoveRegionName {
		t.Fatalf("region defaults wrong")
	}
	if cfg.FallbackFlag == "" {
		t.Fatalf("FallbackFlag should have a default")
	}
	if cfg.Conflict != "index" || cfg.IndexPad != 2 || cfg.HashLen != 4 {
		t.Fatalf("conflict defaults wrong: %q/%d/%d", cfg.Conflict, cfg.IndexPad, cfg.HashLen)
	}
	if cfg.ShouldRename() {
		t.Fatalf("default config must not trigger renaming")
	}
}

func TestParse_BoolCoercion(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"1", true}, {"true", true}, {"ON", true}, {"Yes", true},
		{"0", false}, {"false", false}, {"off", false}, {"NO", false},
		{"maybe", false}, // unrecognized -> stated default (false for addFlag)
		{"", false},
	}
	for _, tt := range tests {
		cfg := Parse(map[string]string{"addFlag": tt.raw})
		if cfg.AddFlag != tt.want {
			t.Fatalf("addFlag=%q -> %v, want %v", tt.raw, cfg.AddFlag, tt.want)
		}
	}

	// Unrecognized value falls back to the option's own default, not false.
	cfg := Parse(map[string]string{"abbr": "whatever"})
	if !cfg.Abbr {
		t.Fatalf("abbr garbage should keep default true")
	}
}

func TestParse_Lists(t *testing.T) {
	cfg := Parse(map[string]string{
		"include":   "HK+SG, JP ,,+",
		"onlyTypes": "VMESS,VLESS",
	})
	if len(cfg.Include) != 3 || cfg.Include[0] != "HK" || cfg.Include[1] != "SG" || cfg.Include[2] != "JP" {
		t.Fatalf("Include=%v", cfg.Include)
	}
	if len(cfg.OnlyTypes) != 2 {
		t.Fatalf("OnlyTypes=%v", cfg.OnlyTypes)
	}
}

func TestParse_BadRegexDisablesFeature(t *testing.T) {
	cfg := Parse(map[string]string{
		"regexInclude": "(unclosed",
		"regexExclude": "ok.*",
	})
	if cfg.RegexInclude != nil {
		t.Fatalf("bad regex must disable the feature")
	}
	if cfg.RegexExclude == nil {
		t.Fatalf("valid regex must compile")
	}
	if !cfg.RegexExclude.MatchString("OKAY") {
		t.Fatalf("regex must be case-insensitive")
	}
}

func TestParse_IntClamps(t *testing.T) {
	cfg := Parse(map[string]string{"indexPad": "1", "hashLen": "0", "maxLen": "-3"})
	if cfg.IndexPad != 2 {
		t.Fatalf("IndexPad=%d, want clamp to 2", cfg.IndexPad)
	}
	if cfg.HashLen != 1 {
		t.Fatalf("HashLen=%d, want clamp to 1", cfg.HashLen)
	}
	if cfg.Clean.MaxLen != 0 {
		t.Fatalf("MaxLen=%d, want clamp to 0", cfg.Clean.MaxLen)
	}

	cfg = Parse(map[string]string{"indexPad": "junk"})
	if cfg.IndexPad != 2 {
		t.Fatalf("IndexPad junk=%d, want default 2", cfg.IndexPad)
	}
}

func TestParse_PercentDecodedValues(t *testing.T) {
	cfg := Parse(map[string]string{
		"name":     "My%20Sub",
		"sep":      "%7C",
		"template": "%7Bprefix%7D%7Bsep%7D%7Bname%7D",
	})
	if cfg.Prefix != "My Sub" {
		t.Fatalf("Prefix=%q", cfg.Prefix)
	}
	if cfg.Sep != "|" {
		t.Fatalf("Sep=%q", cfg.Sep)
	}
	if cfg.Template != "{prefix}{sep}{name}" {
		t.Fatalf("Template=%q", cfg.Template)
	}
}

func TestParse_SubNameFallback(t *testing.T) {
	cfg := Parse(map[string]string{"subName": "B"})
	if cfg.Prefix != "B" {
		t.Fatalf("Prefix=%q, want subName fallback", cfg.Prefix)
	}
	cfg = Parse(map[string]string{"name": "A", "subName": "B"})
	if cfg.Prefix != "A" {
		t.Fatalf("Prefix=%q, name must win over subName", cfg.Prefix)
	}
}

func TestMergeAbbrs(t *testing.T) {
	m := mergeAbbrs("VMESS:V2+CUSTOM:CS+broken+:noval")
	if m["VMESS"] != "V2" {
		t.Fatalf("override lost: %q", m["VMESS"])
	}
	if m["CUSTOM"] != "CS" {
		t.Fatalf("new entry lost: %q", m["CUSTOM"])
	}
	if m["SHADOWSOCKS"] != "SS" {
		t.Fatalf("builtin lost: %q", m["SHADOWSOCKS"])
	}

	// Later entries overwrite earlier ones.
	m = mergeAbbrs("X:1+X:2")
	if m["X"] != "2" {
		t.Fatalf("X=%q, want last entry", m["X"])
	}
}

func TestParse_NeverPanics(t *testing.T) {
	// Error-handling contract: any combination of documented keys with junk
	// values degrades, never raises.
	junk := map[string]string{
		"name": "%zz", "abbr": "??", "typeFmt": "curly", "case": "mixed",
		"includeType": "nah", "pos": "middle", "sep": "%", "template": "%E4%ZZ",
		"keepUnknownType": "explode", "map": ":::+x", "removeEmoji": "2",
		"maxLen": "NaN", "include": "+,+", "regexInclude": "([",
		"regexExclude": "**", "onlyTypes": ",", "dedupe": "everything",
		"sortBy": "color", "sortOrder": "sideways", "addFlag": "flag",
		"locLang": "fr", "regionMap": "::+bad", "fallbackFlag": "%",
		"removeRegionName": "-1", "conflict": "fight", "indexPad": "-9",
		"hashLen": "ten", "unknownKey": "ignored",
	}
	cfg := Parse(junk)
	if cfg == nil {
		t.Fatalf("nil config")
	}
	if cfg.Conflict != "index" || cfg.LocLang != "zh" {
		t.Fatalf("junk enums must fall back to defaults: %q/%q", cfg.Conflict, cfg.LocLang)
	}
}
