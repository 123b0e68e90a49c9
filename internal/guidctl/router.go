package guidctl

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VitamPoc/VitamCommon/pkg/app"
	"github.com/VitamPoc/VitamCommon/pkg/errors"
	"github.com/VitamPoc/VitamCommon/pkg/guid"
	"github.com/VitamPoc/VitamCommon/pkg/utils/json"
)

// handler serves the identifier API.
type handler struct {
	gen      func() *guid.Generator
	maxBatch int
}

// NewRouter builds the HTTP API. gen is consulted on every request so a
// rebuilt generator takes effect immediately.
func NewRouter(gen func() *guid.Generator, maxBatch int) *gin.Engine {
	h := &handler{gen: gen, maxBatch: maxBatch}

	r := gin.New()
	r.Use(Recovery(), RequestID(gen), AccessLog("/healthz"))
	r.NoRoute(func(c *gin.Context) {
		writer(c).Fail(errors.ErrNotFound)
	})

	r.GET("/healthz", h.health)
	v1 := r.Group("/v1")
	{
		v1.GET("/guids", h.generate)
		v1.GET("/guids/:id", h.inspect)
		v1.POST("/paths/inspect", h.inspectPath)
	}
	return r
}

func (h *handler) health(c *gin.Context) {
	writer(c).OK(gin.H{
		"status":  "ok",
		"version": app.GetVersion(),
	})
}

func (h *handler) generate(c *gin.Context) {
	n := 1
	if s := c.Query("n"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			writer(c).Fail(ErrInvalidCount.WithMessagef("n must be an integer, got %q", s))
			return
		}
		n = v
	}
	if n <= 0 || n > h.maxBatch {
		writer(c).Fail(ErrInvalidCount.WithMessagef("n must be in [1, %d], got %d", h.maxBatch, n))
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", FormatBase64))
	if _, err := FormatID(guid.Nil, format); err != nil {
		writer(c).FailWithError(err)
		return
	}

	gen := h.gen()
	next := gen.New
	if format == FormatUUID || c.Query("compact") == "true" {
		next = gen.New128
	}
	ids := make([]string, n)
	for i := range ids {
		ids[i], _ = FormatID(next(), format)
	}
	writer(c).OK(gin.H{"ids": ids})
}

func (h *handler) inspect(c *gin.Context) {
	in := Inspect(c.Param("id"))
	if !in.Valid {
		writer(c).Fail(guid.ErrInvalidFormat.WithMessage(in.Error))
		return
	}
	writer(c).OK(in)
}

// PathRequest is the body of POST /v1/paths/inspect.
type PathRequest struct {
	Path  string `json:"path"`
	Sharp bool   `json:"sharp"`
}

// PathInspection lists every identifier of a path.
type PathInspection struct {
	Path     string       `json:"path"`
	Count    int          `json:"count"`
	Multiple bool         `json:"multiple"`
	Sharp    string       `json:"sharp"`
	IDs      []Inspection `json:"ids"`
}

func (h *handler) inspectPath(c *gin.Context) {
	var req PathRequest
	body, err := c.GetRawData()
	if err == nil {
		err = json.Unmarshal(body, &req)
	}
	if err != nil {
		writer(c).Fail(errors.ErrInvalidParam.WithMessage(err.Error()))
		return
	}
	if req.Path == "" {
		writer(c).Fail(errors.ErrInvalidParam.WithMessage("path is required"))
		return
	}

	res, err := ApplyPathOp(OpSharp, req.Path, req.Sharp, nil)
	if err != nil {
		writer(c).FailWithError(err)
		return
	}

	out := PathInspection{
		Path:     res.Path,
		Count:    res.Count,
		Multiple: res.Multiple,
		Sharp:    res.Sharp,
		IDs:      make([]Inspection, len(res.IDs)),
	}
	for i, s := range res.IDs {
		out.IDs[i] = Inspect(s)
	}
	writer(c).OK(out)
}
