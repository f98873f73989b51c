// Package sub parses a node-list document into model.Node values.
//
// Accepted shapes: a top-level sequence of mappings, or a mapping carrying a
// "proxies" sequence (Clash style). JSON documents go through the same path
// since YAML is a superset. Sequence entries that are not mappings are dropped
// silently; that is the pipeline's sanitize stage.
package sub

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/John-Robertt/nodefmt-go/internal/model"
)

type ParseError struct {
	AppError model.AppError
	Cause    error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.AppError.Code, e.AppError.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.AppError.Code, e.AppError.Message, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// ParseNodeList decodes content into the node list. source labels errors only.
func ParseNodeList(source, content string) ([]model.Node, error) {
	s := strings.TrimSpace(stripUTF8BOM(content))
	if s == "" {
		return nil, newParseError(source, "", "NODES_PARSE_ERROR", "节点列表为空", "", nil)
	}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(s), &root); err != nil {
		return nil, newParseError(source, truncateSnippet(s, 200), "NODES_PARSE_ERROR", "节点列表解析失败（需要 YAML 或 JSON）", "", err)
	}

	seq := findNodeSequence(&root)
	if seq == nil {
		return nil, newParseError(source, truncateSnippet(s, 200), "NODES_PARSE_ERROR", "未找到节点序列", "expected: top-level sequence or proxies: [...]", nil)
	}

	out := make([]model.Node, 0, len(seq.Content))
	for _, entry := range seq.Content {
		if entry.Kind != yaml.MappingNode {
			// Not a structured record; dropped, not reported.
			continue
		}
		out = append(out, decodeNode(entry))
	}
	if len(out) == 0 {
		return nil, newParseError(source, "", "NODES_PARSE_ERROR", "没有任何可用节点", "", nil)
	}
	return out, nil
}

func findNodeSequence(root *yaml.Node) *yaml.Node {
	n := root
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil
		}
		n = n.Content[0]
	}
	switch n.Kind {
	case yaml.SequenceNode:
		return n
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == "proxies" && n.Content[i+1].Kind == yaml.SequenceNode {
				return n.Content[i+1]
			}
		}
	}
	return nil
}

func decodeNode(doc *yaml.Node) model.Node {
	n := model.Node{Doc: doc}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i].Value
		val := doc.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			continue
		}
		switch key {
		case "type":
			n.Type = val.Value
		case "name":
			n.Name = val.Value
		case "server":
			n.Server = val.Value
		case "port":
			n.Port = loosePort(val.Value)
		}
	}
	return n
}

// loosePort tolerates quoted and fractional port scalars; anything else is 0,
// which only weakens the dedupe key, never fails.
func loosePort(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if p, err := strconv.Atoi(s); err == nil {
		return p
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func stripUTF8BOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}

func truncateSnippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func newParseError(source, snippet, code, message, hint string, cause error) error {
	return &ParseError{
		AppError: model.AppError{
			Code:    code,
			Message: message,
			Stage:   "parse_nodes",
			Source:  source,
			Snippet: snippet,
			Hint:    hint,
		},
		Cause: cause,
	}
}
