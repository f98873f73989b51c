// Package render serializes a processed node list. The output re-emits the
// mapping nodes parsed from the input, so field order and unrelated fields
// survive verbatim; only the name value was rewritten by the pipeline.
package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/John-Robertt/nodefmt-go/internal/model"
)

type Target string

const (
	// TargetClash emits a "proxies:" YAML document.
	TargetClash Target = "clash"
	// TargetList emits a bare YAML sequence of nodes.
	TargetList Target = "list"
)

type RenderError struct {
	AppError model.AppError
	Cause    error
}

func (e *RenderError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.AppError.Code, e.AppError.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.AppError.Code, e.AppError.Message, e.Cause)
}

func (e *RenderError) Unwrap() error { return e.Cause }

func Render(target Target, nodes []model.Node) (string, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, n := range nodes {
		if n.Doc != nil {
			seq.Content = append(seq.Content, n.Doc)
		}
	}
	if len(seq.Content) == 0 {
		return "", &RenderError{
			AppError: model.AppError{
				Code:    "NO_NODES",
				Message: "没有可输出节点",
				Stage:   "render",
			},
		}
	}

	var doc *yaml.Node
	switch target {
	case TargetList:
		doc = seq
	case TargetClash:
		doc = &yaml.Node{
			Kind: yaml.MappingNode,
			Tag:  "!!map",
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: "proxies"},
				seq,
			},
		}
	default:
		return "", &RenderError{
			AppError: model.AppError{
				Code:    "UNSUPPORTED_TARGET",
				Message: fmt.Sprintf("不支持的 target：%s", target),
				Stage:   "render",
			},
		}
	}

	b, err := yaml.Marshal(doc)
	if err != nil {
		return "", &RenderError{
			AppError: model.AppError{
				Code:    "RENDER_ERROR",
				Message: "节点列表序列化失败",
				Stage:   "render",
			},
			Cause: err,
		}
	}
	return string(b), nil
}
