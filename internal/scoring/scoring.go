// Package scoring turns a finalized offer and the originating constraints
// into bounded [0,100] scores. Every function here is pure: no state, no
// randomness, identical inputs give identical numbers.
package scoring

import "negotiation-engine/internal/model"

// Component weights. The split between price, quantity and secondary terms
// follows the relative emphasis each side puts on them.
const (
	sellerPriceWeight    = 0.60
	sellerQuantityWeight = 0.20
	sellerDeliveryWeight = 0.10
	sellerPaymentWeight  = 0.10

	buyerPriceWeight    = 0.55
	buyerQuantityWeight = 0.25
	buyerDeliveryWeight = 0.20

	riskDeliveryWeight = 0.40
	riskQualityWeight  = 0.30
	riskPenaltyWeight  = 0.30

	efficiencyRoundsWeight     = 0.60
	efficiencyConcessionWeight = 0.40
)

// How a seller ranks payment terms: sooner is better.
var paymentFavorability = map[model.PaymentTerms]float64{
	model.PayCash:        100,
	model.PayNet30:       85,
	model.PayNet60:       70,
	model.PayInstallment: 65,
	model.PayNet90:       55,
}

// Residual quality risk per grade; lower grades carry more.
var qualityRisk = map[model.QualityGrade]float64{
	model.GradeA:        10,
	model.GradeB:        30,
	model.GradeStandard: 40,
	model.GradeC:        70,
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SellerSatisfaction rewards an effective price at or above target relative
// to cost and a quantity at or above the minimum; long delivery commitments
// and slow payment terms drag the score down.
func SellerSatisfaction(o model.Offer, sc *model.SellerConstraints, cfg model.SimulationConfig) float64 {
	eff := o.EffectivePrice(cfg)

	var price float64
	if sc.TargetPrice > sc.Cost {
		price = clamp01((eff-sc.Cost)/(sc.TargetPrice-sc.Cost)) * 100
	} else if eff >= sc.Cost {
		price = 100
	}

	quantity := clamp01(float64(o.Quantity)/float64(sc.MinQuantity)) * 100

	delivery := 100.0
	if span := sc.DeliveryRange[1] - sc.DeliveryRange[0]; span > 0 {
		late := float64(o.DeliveryDays-sc.DeliveryRange[0]) / float64(span)
		delivery = (1 - clamp01(late)) * 100
	}

	payment, ok := paymentFavorability[o.PaymentTerms]
	if !ok {
		payment = 70
	}

	return clampScore(sellerPriceWeight*price +
		sellerQuantityWeight*quantity +
		sellerDeliveryWeight*delivery +
		sellerPaymentWeight*payment)
}

// BuyerSatisfaction rewards a low effective price relative to the budget,
// the desired quantity achieved, and delivery at or before the desired date.
func BuyerSatisfaction(o model.Offer, bc *model.BuyerConstraints, cfg model.SimulationConfig) float64 {
	eff := o.EffectivePrice(cfg)

	var price float64
	if bc.BudgetLimit > bc.TargetPrice {
		price = clamp01((bc.BudgetLimit-eff)/(bc.BudgetLimit-bc.TargetPrice)) * 100
	} else if eff <= bc.BudgetLimit {
		price = 100
	}

	quantity := clamp01(float64(o.Quantity)/float64(bc.DesiredQuantity)) * 100

	delivery := 100.0
	if late := o.DeliveryDays - bc.DesiredDelivery; late > 0 {
		delivery = clampScore(100 - 10*float64(late))
	}

	return clampScore(buyerPriceWeight*price +
		buyerQuantityWeight*quantity +
		buyerDeliveryWeight*delivery)
}

// WinWin is the harmonic mean of the two satisfactions. It is zero whenever
// either side is zero: a lopsided deal never scores as a good compromise.
func WinWin(seller, buyer float64) float64 {
	if seller <= 0 || buyer <= 0 {
		return 0
	}
	return clampScore(2 * seller * buyer / (seller + buyer))
}

// Risk combines delivery tightness against the seller's feasible range, the
// residual risk of the quality grade, and the exposure to late-delivery
// penalties on the contract value. Higher means riskier.
func Risk(o model.Offer, sc *model.SellerConstraints, cfg model.SimulationConfig) float64 {
	tightness := 1.0
	if span := sc.DeliveryRange[1] - sc.DeliveryRange[0]; span > 0 {
		slack := float64(o.DeliveryDays-sc.DeliveryRange[0]) / float64(span)
		tightness = 1 - clamp01(slack)
	}

	quality, ok := qualityRisk[o.QualityGrade]
	if !ok {
		quality = 40
	}

	// Per-day penalty accrued over the committed window, as a share of the
	// contract's total value (the value itself cancels out of the ratio).
	exposure := clampScore(cfg.PenaltyRate * float64(o.DeliveryDays) * 100)

	return clampScore(riskDeliveryWeight*tightness*100 +
		riskQualityWeight*quality +
		riskPenaltyWeight*exposure)
}

// PriceCompetitiveness inverts the markup of the effective price over cost:
// selling at cost scores 100, a 100% markup scores 0.
func PriceCompetitiveness(o model.Offer, cost float64, cfg model.SimulationConfig) float64 {
	if cost <= 0 {
		return 0
	}
	markup := (o.EffectivePrice(cfg) - cost) / cost
	return clampScore(100 - markup*100)
}

// Efficiency rewards fewer rounds and a smaller total concession distance
// relative to the opening price gap.
func Efficiency(rounds, maxRounds int, concessionDistance, initialGap float64) float64 {
	var roundsScore float64
	if maxRounds > 0 {
		roundsScore = float64(maxRounds-rounds) / float64(maxRounds) * 100
	}
	concessionScore := 100.0
	if initialGap > 0 {
		concessionScore = (1 - clamp01(concessionDistance/initialGap)) * 100
	}
	return clampScore(efficiencyRoundsWeight*roundsScore +
		efficiencyConcessionWeight*concessionScore)
}
