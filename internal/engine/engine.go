// Package engine drives the round-by-round negotiation between the seller
// and buyer agents. One call runs one self-contained negotiation loop to
// completion: no shared state, no I/O, fully deterministic.
package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"negotiation-engine/internal/model"
	"negotiation-engine/internal/scoring"
	"negotiation-engine/internal/strategy"
)

// Movement below this, on every negotiated term, counts as a stalled round.
const moveEpsilon = 1e-9

// RoundEvent describes one completed round; handed to the observer as the
// round finishes.
type RoundEvent struct {
	Round                int         `json:"round"`
	SellerOffer          model.Offer `json:"seller_offer"`
	BuyerOffer           model.Offer `json:"buyer_offer"`
	SellerEffectivePrice float64     `json:"seller_effective_price"`
	BuyerEffectivePrice  float64     `json:"buyer_effective_price"`
	EffectiveGap         float64     `json:"effective_gap"`
	Agreed               bool        `json:"agreed"`
}

// RoundObserver receives one event per round. Nil is allowed.
type RoundObserver func(RoundEvent)

// Simulate runs a full negotiation and returns the structured result with
// the complete round log. Constraint violations fail before any round runs.
func Simulate(req *model.SimulationRequest) (*model.SimulationResponse, error) {
	return SimulateObserved(req, nil)
}

// SimulateObserved is Simulate with a per-round observer for callers that
// stream rounds as they happen.
func SimulateObserved(req *model.SimulationRequest, observe RoundObserver) (*model.SimulationResponse, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	cfg := req.Config.Normalized()
	sc := &req.Seller
	bc := &req.Buyer

	sellerOffer := strategy.OpeningSellerOffer(sc)
	buyerOffer := strategy.OpeningBuyerOffer(bc)
	initialGap := math.Abs(sellerOffer.Price - buyerOffer.Price)

	status := model.StatusInProgress
	log := make([]string, 0, cfg.MaxRounds)
	var final *model.Offer
	var concessionDistance float64
	rounds := 0

	for r := 0; r < cfg.MaxRounds; r++ {
		moved := true
		if r > 0 {
			prevSeller, prevBuyer := sellerOffer, buyerOffer
			sellerOffer = strategy.NextSellerOffer(sellerOffer, prevBuyer, sc, bc, r, cfg.MaxRounds)
			buyerOffer = strategy.NextBuyerOffer(buyerOffer, sellerOffer, bc, sc, r, cfg.MaxRounds)

			concessionDistance += math.Abs(sellerOffer.Price-prevSeller.Price) +
				math.Abs(buyerOffer.Price-prevBuyer.Price)
			moved = offerMoved(prevSeller, sellerOffer) || offerMoved(prevBuyer, buyerOffer)
		}
		rounds = r + 1

		sellerEff := sellerOffer.EffectivePrice(cfg)
		buyerEff := buyerOffer.EffectivePrice(cfg)
		gap := math.Abs(sellerEff - buyerEff)
		agreed := converged(sellerOffer, buyerOffer, sellerEff, buyerEff, cfg)

		log = append(log, roundEntry(rounds, sellerOffer, buyerOffer, sellerEff, buyerEff, gap, agreed))
		if observe != nil {
			observe(RoundEvent{
				Round:                rounds,
				SellerOffer:          sellerOffer,
				BuyerOffer:           buyerOffer,
				SellerEffectivePrice: sellerEff,
				BuyerEffectivePrice:  buyerEff,
				EffectiveGap:         gap,
				Agreed:               agreed,
			})
		}

		if agreed {
			status = model.StatusAgreed
			accepted := midpointOffer(sellerOffer, buyerOffer, sc, bc)
			final = &accepted
			break
		}
		if !moved {
			status = model.StatusDeadlocked
			break
		}
	}
	if status == model.StatusInProgress {
		status = model.StatusMaxRoundsReached
	}

	// Score the accepted offer, or on a failed run the midpoint of the last
	// observed positions so the caller still gets diagnostic numbers.
	scored := midpointOffer(sellerOffer, buyerOffer, sc, bc)
	if final != nil {
		scored = *final
	}
	sellerSat := scoring.SellerSatisfaction(scored, sc, cfg)
	buyerSat := scoring.BuyerSatisfaction(scored, bc, cfg)
	metrics := model.Metrics{
		SellerSatisfaction:   sellerSat,
		BuyerSatisfaction:    buyerSat,
		WinWinScore:          scoring.WinWin(sellerSat, buyerSat),
		RiskScore:            scoring.Risk(scored, sc, cfg),
		PriceCompetitiveness: scoring.PriceCompetitiveness(scored, sc.Cost, cfg),
		Efficiency:           scoring.Efficiency(rounds, cfg.MaxRounds, concessionDistance, initialGap),
	}

	var result *model.FinalTerms
	if final != nil {
		result = &model.FinalTerms{
			Offer:          *final,
			EffectivePrice: final.EffectivePrice(cfg),
			TotalValue:     final.TotalValue(cfg),
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.SimulationResponse{
		SimulationMetadata: model.SimulationMetadata{
			SimulationID:          uuid.New().String(),
			SimulationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			SimulationCompletedAt: now.Format(time.RFC3339),
			SimulationDurationMs:  elapsed.Milliseconds(),
			Status:                status,
			RoundsCompleted:       rounds,
		},
		Success: status == model.StatusAgreed,
		Log:     log,
		Result:  result,
		Metrics: metrics,
	}, nil
}

func offerMoved(before, after model.Offer) bool {
	return math.Abs(after.Price-before.Price) > moveEpsilon ||
		after.Quantity != before.Quantity ||
		after.DeliveryDays != before.DeliveryDays
}

func converged(seller, buyer model.Offer, sellerEff, buyerEff float64, cfg model.SimulationConfig) bool {
	mid := (sellerEff + buyerEff) / 2
	if mid > 0 && math.Abs(sellerEff-buyerEff)/mid > cfg.ConvergenceTolerance {
		return false
	}
	maxQty := seller.Quantity
	if buyer.Quantity > maxQty {
		maxQty = buyer.Quantity
	}
	if maxQty > 0 {
		qtyGap := math.Abs(float64(seller.Quantity-buyer.Quantity)) / float64(maxQty)
		if qtyGap > cfg.QuantityTolerance {
			return false
		}
	}
	deliveryGap := seller.DeliveryDays - buyer.DeliveryDays
	if deliveryGap < 0 {
		deliveryGap = -deliveryGap
	}
	return deliveryGap <= cfg.DeliveryToleranceDays
}

// midpointOffer splits the numeric gap down the middle; quality and warranty
// come from the seller (who supplies the goods), payment terms from the buyer
// (who pays).
func midpointOffer(seller, buyer model.Offer, sc *model.SellerConstraints, bc *model.BuyerConstraints) model.Offer {
	sellerTerms := sc.SellerTerms()
	buyerTerms := bc.BuyerTerms()
	return model.Offer{
		Price:          (seller.Price + buyer.Price) / 2,
		Quantity:       int(math.Round(float64(seller.Quantity+buyer.Quantity) / 2)),
		DeliveryDays:   int(math.Round(float64(seller.DeliveryDays+buyer.DeliveryDays) / 2)),
		QualityGrade:   sellerTerms.QualityGrade,
		PaymentTerms:   buyerTerms.PaymentTerms,
		WarrantyMonths: sellerTerms.WarrantyMonths,
	}
}

func roundEntry(round int, seller, buyer model.Offer, sellerEff, buyerEff, gap float64, agreed bool) string {
	entry := fmt.Sprintf(
		"round %d: seller price=%.2f qty=%d delivery=%dd (effective %.2f) | buyer price=%.2f qty=%d delivery=%dd (effective %.2f) | effective gap %.2f",
		round,
		seller.Price, seller.Quantity, seller.DeliveryDays, sellerEff,
		buyer.Price, buyer.Quantity, buyer.DeliveryDays, buyerEff,
		gap,
	)
	if agreed {
		entry += " | within tolerance, agreement reached"
	}
	return entry
}
