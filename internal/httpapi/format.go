package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/John-Robertt/nodefmt-go/internal/model"
	"github.com/John-Robertt/nodefmt-go/internal/options"
	"github.com/John-Robertt/nodefmt-go/internal/pipeline"
	"github.com/John-Robertt/nodefmt-go/internal/render"
	"github.com/John-Robertt/nodefmt-go/internal/sub"
)

type formatHandler struct {
	opt Options
}

// handleFormat is the host surface around the pure pipeline: the request body
// carries the node-list document, the query string carries the flat option
// map. Everything except "target" is an option key; unrecognized options are
// ignored by design, never rejected.
func (h formatHandler) handleFormat(w http.ResponseWriter, r *http.Request) {
	out, err := h.runFormat(r)
	if err != nil {
		writeErrorFromErr(w, err)
		return
	}
	WriteYAML(w, http.StatusOK, out)
}

func (h formatHandler) runFormat(r *http.Request) (string, error) {
	target, optMap, err := parseFormatQuery(r.URL.Query())
	if err != nil {
		return "", err
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, h.opt.MaxBodyBytes+1))
	if err != nil {
		return "", apiError(http.StatusBadRequest, model.AppError{
			Code:    "BODY_READ_ERROR",
			Message: "读取请求 body 失败",
			Stage:   "validate_request",
		}, err)
	}
	if int64(len(body)) > h.opt.MaxBodyBytes {
		return "", apiError(http.StatusRequestEntityTooLarge, model.AppError{
			Code:    "TOO_LARGE",
			Message: fmt.Sprintf("节点列表过大（>%d bytes）", h.opt.MaxBodyBytes),
			Stage:   "validate_request",
		}, nil)
	}

	nodes, err := sub.ParseNodeList("request", string(body))
	if err != nil {
		return "", err
	}

	cfg := options.Parse(optMap)
	return render.Render(target, pipeline.Apply(cfg, nodes))
}

func parseFormatQuery(q url.Values) (render.Target, map[string]string, error) {
	target := render.TargetClash
	switch q.Get("target") {
	case "", string(render.TargetClash):
	case string(render.TargetList):
		target = render.TargetList
	default:
		return "", nil, requestError("INVALID_ARGUMENT", "不支持的 target（仅支持 clash/list）", q.Get("target"))
	}

	// First value wins for repeated option keys; the option layer owns every
	// further coercion rule.
	optMap := make(map[string]string, len(q))
	for key, values := range q {
		if key == "target" || len(values) == 0 {
			continue
		}
		optMap[key] = values[0]
	}
	return target, optMap, nil
}
