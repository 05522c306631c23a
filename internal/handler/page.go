package handler

import (
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"penal-engine/internal/engine"
	"penal-engine/internal/model"
	"penal-engine/internal/view"
)

func (h *Handler) page(tab view.Tab) view.Page {
	return view.Page{
		Tab:      tab,
		Lang:     h.lang,
		HubURL:   h.hubURL,
		Catalog:  h.catalog,
		Offenses: h.catalog.SearchOffenses(""),
	}
}

func (h *Handler) handlePage(ctx *fasthttp.RequestCtx, tab view.Tab) {
	p := h.page(tab)
	if tab == view.TabCalculadora {
		h.applyForm(ctx.QueryArgs(), &p)
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType(contentTypeHTML)
	if err := h.renderer.Render(ctx, p); err != nil {
		h.logger.Error("render page", zap.String("tab", string(tab)), zap.Error(err))
		ctx.ResetBody()
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
	}
}

// applyForm reads the calculator fields. Nothing is computed until a base
// category has been selected.
func (h *Handler) applyForm(args *fasthttp.Args, p *view.Page) {
	p.Form = view.Form{
		Pena:       string(args.Peek("pena")),
		Atenuantes: atoiOrZero(args.Peek("atenuantes")),
		Agravantes: atoiOrZero(args.Peek("agravantes")),
		Tiempo:     string(args.Peek("tiempo")),
	}
	if !args.Has("pena") {
		return
	}

	in := model.AdjustmentInput{
		BaseCategoryID:   p.Form.Pena,
		MitigatingCount:  p.Form.Atenuantes,
		AggravatingCount: p.Form.Agravantes,
		DaysServed:       model.ParseDays(p.Form.Tiempo),
	}
	r, ok := engine.Adjust(h.catalog.Penalties, in)
	outcome := model.OutcomeFailure
	if ok {
		outcome = model.OutcomeSuccess
		p.Result = &r
	}
	h.metrics.ObserveCalculation("form", outcome)
}

func atoiOrZero(b []byte) int {
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return 0
	}
	return n
}
