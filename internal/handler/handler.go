package handler

import (
	"bytes"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"penal-engine/internal/engine"
	"penal-engine/internal/metrics"
	"penal-engine/internal/model"
	"penal-engine/internal/reference"
	"penal-engine/internal/view"
)

const (
	contentTypeJSON = "application/json"
	contentTypeHTML = "text/html; charset=utf-8"
)

// Options configures a Handler. Logger and Metrics may be nil.
type Options struct {
	Catalog  *reference.Catalog
	Renderer *view.Renderer
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	HubURL   string
	Lang     string
}

// Handler serves the site pages, the JSON API and the operational endpoints.
type Handler struct {
	catalog  *reference.Catalog
	renderer *view.Renderer
	logger   *zap.Logger
	metrics  *metrics.Metrics
	hubURL   string
	lang     string
}

func New(opts Options) *Handler {
	h := &Handler{
		catalog:  opts.Catalog,
		renderer: opts.Renderer,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		hubURL:   opts.HubURL,
		lang:     opts.Lang,
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	if h.metrics == nil {
		h.metrics = metrics.New()
	}
	if h.lang == "" {
		h.lang = "es"
	}
	return h
}

// Handle is the fasthttp.RequestHandler for the whole service.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	route := h.route(ctx)

	elapsed := time.Since(start)
	status := ctx.Response.StatusCode()
	h.metrics.ObserveRequest(route, status, elapsed.Seconds())
	h.logger.Debug("request",
		zap.ByteString("method", ctx.Method()),
		zap.ByteString("path", ctx.Path()),
		zap.Int("status", status),
		zap.Duration("duration", elapsed),
	)
}

// route dispatches the request and returns the label used for metrics.
func (h *Handler) route(ctx *fasthttp.RequestCtx) string {
	path := string(ctx.Path())
	switch path {
	case "/":
		if h.allow(ctx, fasthttp.MethodGet, fasthttp.MethodHead) {
			h.handlePage(ctx, view.ParseTab(string(ctx.QueryArgs().Peek("tab"))))
		}
	case "/calculadora":
		if h.allow(ctx, fasthttp.MethodGet, fasthttp.MethodHead) {
			h.handlePage(ctx, view.TabCalculadora)
		}
	case "/api/v1/calculations":
		if h.allow(ctx, fasthttp.MethodPost) {
			h.handleCalculation(ctx)
		}
	case "/api/v1/penalties":
		if h.allow(ctx, fasthttp.MethodGet) {
			writeJSON(ctx, fasthttp.StatusOK, h.catalog.Penalties)
		}
	case "/api/v1/offenses":
		if h.allow(ctx, fasthttp.MethodGet) {
			writeJSON(ctx, fasthttp.StatusOK, h.catalog.SearchOffenses(string(ctx.QueryArgs().Peek("q"))))
		}
	case "/healthz":
		if h.allow(ctx, fasthttp.MethodGet, fasthttp.MethodHead) {
			h.handleHealth(ctx)
		}
	case "/metrics":
		if h.allow(ctx, fasthttp.MethodGet) {
			h.metrics.Handler()(ctx)
		}
	default:
		h.notFound(ctx)
		return "other"
	}
	return path
}

func (h *Handler) allow(ctx *fasthttp.RequestCtx, methods ...string) bool {
	for _, m := range methods {
		if string(ctx.Method()) == m {
			return true
		}
	}
	ctx.Response.Header.Set(fasthttp.HeaderAllow, joinMethods(methods))
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
	return false
}

func joinMethods(methods []string) string {
	var b bytes.Buffer
	for i, m := range methods {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m)
	}
	return b.String()
}

func (h *Handler) notFound(ctx *fasthttp.RequestCtx) {
	if bytes.HasPrefix(ctx.Path(), []byte("/api/")) {
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
		return
	}
	ctx.SetStatusCode(fasthttp.StatusNotFound)
	ctx.SetContentType(contentTypeHTML)
	if err := h.renderer.RenderNotFound(ctx, h.page(view.TabInicio)); err != nil {
		h.logger.Error("render not found page", zap.Error(err))
	}
}

func (h *Handler) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, healthResponse{
		Status:    "UP",
		Service:   "penal-engine",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks: map[string]string{
			"reference": strconv.Itoa(len(h.catalog.Penalties)) + " penalties",
		},
	})
}

type healthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeJSON)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	b, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeJSON)
	ctx.SetBody(b)
}

// handleCalculation decodes an AdjustmentInput body and responds with the
// engine's CalculationResponse.
func (h *Handler) handleCalculation(ctx *fasthttp.RequestCtx) {
	var in model.AdjustmentInput
	if err := json.Unmarshal(ctx.PostBody(), &in); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := engine.Process(h.catalog.Penalties, in)
	h.metrics.ObserveCalculation("api", resp.CalculationMetadata.CalculationOutcome)
	if resp.Result == nil {
		h.logger.Info("calculation without result",
			zap.String("calculation_id", resp.CalculationMetadata.CalculationID),
			zap.String("base_category_id", in.BaseCategoryID),
		)
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}
