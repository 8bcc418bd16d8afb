package handler

import (
	"log"

	"github.com/fasthttp/websocket"
	"github.com/valyala/fasthttp"

	"negotiation-engine/internal/engine"
	"negotiation-engine/internal/model"
	"negotiation-engine/internal/offerdiff"
	"negotiation-engine/internal/ratecard"
)

var upgrader = websocket.FastHTTPUpgrader{
	CheckOrigin: func(ctx *fasthttp.RequestCtx) bool { return true },
}

type wsEvent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type roundPayload struct {
	engine.RoundEvent
	SellerChanges []offerdiff.Change `json:"seller_changes,omitempty"`
	BuyerChanges  []offerdiff.Change `json:"buyer_changes,omitempty"`
}

// handleWS runs one simulation per connection: the client sends a single
// SimulationRequest, receives one round event per round plus a final result
// event, then the server closes the connection.
func handleWS(ctx *fasthttp.RequestCtx) {
	profile := string(ctx.QueryArgs().Peek("profile"))
	err := upgrader.Upgrade(ctx, func(conn *websocket.Conn) {
		defer conn.Close()

		var req model.SimulationRequest
		if err := conn.ReadJSON(&req); err != nil {
			_ = conn.WriteJSON(wsEvent{Type: "error", Payload: "invalid request: " + err.Error()})
			return
		}
		if req.Config == nil {
			cfg := ratecard.GetConfig(profile)
			req.Config = &cfg
		}

		var prevSeller, prevBuyer model.Offer
		first := true
		resp, err := engine.SimulateObserved(&req, func(ev engine.RoundEvent) {
			payload := roundPayload{RoundEvent: ev}
			if !first {
				payload.SellerChanges = offerdiff.Diff(prevSeller, ev.SellerOffer)
				payload.BuyerChanges = offerdiff.Diff(prevBuyer, ev.BuyerOffer)
			}
			first = false
			prevSeller, prevBuyer = ev.SellerOffer, ev.BuyerOffer
			_ = conn.WriteJSON(wsEvent{Type: "round", Payload: payload})
		})
		if err != nil {
			_ = conn.WriteJSON(wsEvent{Type: "error", Payload: err.Error()})
			return
		}
		_ = conn.WriteJSON(wsEvent{Type: "result", Payload: resp})
	})
	if err != nil {
		log.Printf("ws upgrade: %v", err)
	}
}
