package handler

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"negotiation-engine/internal/model"
)

func serve(t *testing.T, method, path, body string) *fasthttp.RequestCtx {
	t.Helper()
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI("http://engine.test" + path)
	if body != "" {
		req.SetBodyString(body)
	}
	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	Route(ctx)
	return ctx
}

const simulateBody = `{
	"seller": {
		"cost": 800, "target_price": 1200, "min_quantity": 800,
		"delivery_range": [3, 7], "market_position": "neutral", "strategy": "aggressive"
	},
	"buyer": {
		"target_price": 1000, "budget_limit": 1300, "desired_quantity": 1000,
		"desired_delivery_days": 5, "urgency": "medium", "strategy": "conservative"
	},
	"config": {"max_rounds": 20, "convergence_tolerance": 0.02}
}`

func TestHealth(t *testing.T) {
	ctx := serve(t, fasthttp.MethodGet, "/health", "")
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}
	if !strings.Contains(string(ctx.Response.Body()), "healthy") {
		t.Fatalf("unexpected body: %s", ctx.Response.Body())
	}
}

func TestSimulateEndpoint(t *testing.T) {
	ctx := serve(t, fasthttp.MethodPost, "/simulate", simulateBody)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var resp model.SimulationResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected a successful negotiation, got %s", resp.SimulationMetadata.Status)
	}
	if resp.Result == nil || resp.Result.Price < 1000 || resp.Result.Price > 1200 {
		t.Fatalf("unexpected result: %+v", resp.Result)
	}
}

func TestSimulateRejectsBadJSON(t *testing.T) {
	ctx := serve(t, fasthttp.MethodPost, "/simulate", "{not json")
	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
	}
}

func TestSimulateRejectsInvalidConstraints(t *testing.T) {
	body := strings.Replace(simulateBody, `"budget_limit": 1300`, `"budget_limit": 900`, 1)
	ctx := serve(t, fasthttp.MethodPost, "/simulate", body)
	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var er model.ErrorResponse
	if err := json.Unmarshal(ctx.Response.Body(), &er); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if er.Code != model.CodeInvalidConstraints {
		t.Fatalf("expected %s, got %s", model.CodeInvalidConstraints, er.Code)
	}
}

func TestSimulateRequiresPost(t *testing.T) {
	ctx := serve(t, fasthttp.MethodGet, "/simulate", "")
	if ctx.Response.StatusCode() != fasthttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", ctx.Response.StatusCode())
	}
}

func TestReportEndpoint(t *testing.T) {
	ctx := serve(t, fasthttp.MethodPost, "/simulate/report", simulateBody)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}
	if ct := string(ctx.Response.Header.ContentType()); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %s", ct)
	}
	if !strings.Contains(string(ctx.Response.Body()), "Negotiation Report") {
		t.Fatal("report body missing title")
	}
}

func TestUnknownPath(t *testing.T) {
	ctx := serve(t, fasthttp.MethodGet, "/nope", "")
	if ctx.Response.StatusCode() != fasthttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", ctx.Response.StatusCode())
	}
}
