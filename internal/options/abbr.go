package options

import "strings"

// builtinAbbrs maps uppercase protocol names to their short display code.
// Keys cover both the long and the already-short spellings seen in the wild.
var builtinAbbrs = map[string]string{
	"SHADOWSOCKS":  "SS",
	"SS":           "SS",
	"SHADOWSOCKSR": "SSR",
	"SSR":          "SSR",
	"VMESS":        "VM",
	"VLESS":        "VL",
	"TROJAN":       "TR",
	"HYSTERIA":     "HY",
	"HYSTERIA2":    "HY2",
	"TUIC":         "TC",
	"WIREGUARD":    "WG",
	"WG":           "WG",
	"SNELL":        "SN",
	"SOCKS5":       "S5",
	"HTTP":         "HT",
	"HTTPS":        "HT",
	"ANYTLS":       "AT",
}

// mergeAbbrs copies the built-in table and applies "KEY:VAL+KEY:VAL" user
// overrides on top. Entries without a ':' are ignored individually; later
// entries overwrite earlier ones and built-ins.
func mergeAbbrs(raw string) map[string]string {
	out := make(map[string]string, len(builtinAbbrs)+4)
	for k, v := range builtinAbbrs {
		out[k] = v
	}
	for _, entry := range strings.Split(raw, "+") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, val, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}
		key = strings.ToUpper(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(val)
	}
	return out
}
