// Package pipeline orchestrates one formatting invocation over a node list:
// sanitize, filter, dedupe, rename, sort, conflict-resolve. Every stage is
// order-preserving except sort, and the whole run is pure CPU work: no I/O,
// no state shared across invocations.
package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/John-Robertt/nodefmt-go/internal/compose"
	"github.com/John-Robertt/nodefmt-go/internal/model"
	"github.com/John-Robertt/nodefmt-go/internal/options"
)

// Apply runs the full pipeline and returns the resulting list. Input order is
// the tiebreaker everywhere: dedupe keeps the first occurrence, sorting is
// stable, conflict numbering follows final list order.
func Apply(cfg *options.Config, in []model.Node) []model.Node {
	// 1) Sanitize: drop entries that are not structured node records.
	nodes := make([]model.Node, 0, len(in))
	for _, n := range in {
		if n.Valid() {
			nodes = append(nodes, n)
		}
	}

	// 2) Filter: all active constraints are conjunctive; keyword lists are
	// OR within themselves.
	nodes = filter(cfg, nodes)

	// 3) Dedupe: first occurrence per key wins, order kept.
	if cfg.Dedupe != "" {
		seen := make(map[string]struct{}, len(nodes))
		deduped := nodes[:0]
		for _, n := range nodes {
			key := dedupeKey(cfg.Dedupe, n)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			deduped = append(deduped, n)
		}
		nodes = deduped
	}

	// 4) Rename: only the name changes, everything else stays untouched.
	for i := range nodes {
		name := compose.Name(cfg, nodes[i].Name, nodes[i].Type)
		if name != nodes[i].Name {
			nodes[i].SetName(name)
		}
	}

	// 5) Sort: locale-aware, stable; descending negates the comparator so
	// ties keep their relative order either way.
	if cfg.SortBy != "" {
		cl := collate.New(language.Und)
		cmp := func(a, b model.Node) int {
			if cfg.SortBy == "type" {
				return cl.CompareString(strings.ToUpper(a.Type), strings.ToUpper(b.Type))
			}
			return cl.CompareString(a.Name, b.Name)
		}
		sort.SliceStable(nodes, func(i, j int) bool {
			c := cmp(nodes[i], nodes[j])
			if cfg.SortDesc {
				c = -c
			}
			return c < 0
		})
	}

	// 6) Conflict resolution over the final order.
	if cfg.Conflict != "none" {
		nodes = resolveConflicts(cfg, nodes)
	}
	return nodes
}

func filter(cfg *options.Config, nodes []model.Node) []model.Node {
	out := nodes[:0]
	for _, n := range nodes {
		if len(cfg.OnlyTypes) > 0 && !containsFold(cfg.OnlyTypes, n.Type) {
			continue
		}
		if containsFold(cfg.DropTypes, n.Type) {
			continue
		}
		if len(cfg.Include) > 0 && !containsAnyKeyword(n.Name, cfg.Include) {
			continue
		}
		if containsAnyKeyword(n.Name, cfg.Exclude) {
			continue
		}
		if cfg.RegexInclude != nil && !cfg.RegexInclude.MatchString(n.Name) {
			continue
		}
		if cfg.RegexExclude != nil && cfg.RegexExclude.MatchString(n.Name) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func dedupeKey(mode string, n model.Node) string {
	switch mode {
	case "name":
		return n.Name
	case "all":
		return n.AddrKey() + ":" + n.Name
	default: // addr
		return n.AddrKey()
	}
}

func resolveConflicts(cfg *options.Config, nodes []model.Node) []model.Node {
	counts := make(map[string]int, len(nodes))
	out := make([]model.Node, 0, len(nodes))
	for _, n := range nodes {
		counts[n.Name]++
		c := counts[n.Name]
		if c == 1 {
			out = append(out, n)
			continue
		}
		switch cfg.Conflict {
		case "drop":
			continue
		case "hash":
			n.SetName(n.Name + "-" + nameHash(n, cfg.HashLen))
		default: // index
			n.SetName(fmt.Sprintf("%s %0*d", n.Name, cfg.IndexPad, c))
		}
		out = append(out, n)
	}
	return out
}

// nameHash is a djb2 rolling hash over server:port:type:name, rendered as
// lowercase hex and right-truncated. Deterministic across runs.
func nameHash(n model.Node, hashLen int) string {
	key := fmt.Sprintf("%s:%d:%s:%s", n.Server, n.Port, n.Type, n.Name)
	var h uint32 = 5381
	for _, r := range key {
		h = h*33 + uint32(r)
	}
	s := fmt.Sprintf("%x", h)
	if hashLen < 1 {
		hashLen = 1
	}
	if len(s) > hashLen {
		s = s[:hashLen]
	}
	return s
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

func containsAnyKeyword(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
