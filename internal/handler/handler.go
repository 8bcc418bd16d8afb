package handler

import (
	"errors"
	"log"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"negotiation-engine/internal/engine"
	"negotiation-engine/internal/model"
	"negotiation-engine/internal/ratecard"
	"negotiation-engine/internal/report"
)

const version = "1.0.0"

// Route dispatches all HTTP traffic. Everything here is a thin shell around
// engine.Simulate; no negotiation logic lives in this package.
func Route(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
	ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type")
	ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	if ctx.IsOptions() {
		ctx.SetStatusCode(fasthttp.StatusNoContent)
		return
	}

	switch string(ctx.Path()) {
	case "/":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"message": "negotiation engine is running"})
	case "/health":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "healthy", "version": version})
	case "/simulate":
		handleSimulate(ctx)
	case "/simulate/report":
		handleReport(ctx)
	case "/ws":
		handleWS(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "", "not found")
	}
}

func decodeRequest(ctx *fasthttp.RequestCtx) (*model.SimulationRequest, bool) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "", "method not allowed")
		return nil, false
	}
	var req model.SimulationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "", "invalid request body: "+err.Error())
		return nil, false
	}
	if req.Config == nil {
		cfg := ratecard.GetConfig(string(ctx.QueryArgs().Peek("profile")))
		req.Config = &cfg
	}
	return &req, true
}

func handleSimulate(ctx *fasthttp.RequestCtx) {
	req, ok := decodeRequest(ctx)
	if !ok {
		return
	}
	resp, err := engine.Simulate(req)
	if err != nil {
		writeSimulateError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func handleReport(ctx *fasthttp.RequestCtx) {
	req, ok := decodeRequest(ctx)
	if !ok {
		return
	}
	resp, err := engine.Simulate(req)
	if err != nil {
		writeSimulateError(ctx, err)
		return
	}
	html, err := report.HTML(resp)
	if err != nil {
		log.Printf("report rendering failed: %v", err)
		writeError(ctx, fasthttp.StatusInternalServerError, "", "report rendering failed")
		return
	}
	ctx.SetContentType("text/html; charset=utf-8")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(html)
}

func writeSimulateError(ctx *fasthttp.RequestCtx, err error) {
	var ice *model.InvalidConstraintsError
	if errors.As(err, &ice) {
		writeError(ctx, fasthttp.StatusBadRequest, model.CodeInvalidConstraints, ice.Error())
		return
	}
	log.Printf("simulation failed: %v", err)
	writeError(ctx, fasthttp.StatusInternalServerError, "", "simulation failed")
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, err := json.Marshal(v)
	if err != nil {
		log.Printf("response encoding failed: %v", err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, code, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Code:    code,
		Message: message,
	})
}
