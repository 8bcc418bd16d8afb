package strategy

import (
	"math"

	"negotiation-engine/internal/model"
)

// Policy maps a round index to the fraction of the remaining gap a party
// concedes that round. Implementations are deterministic: the same inputs
// always yield the same fraction.
type Policy interface {
	Fraction(round, maxRounds int) float64
}

var registry = map[model.Strategy]Policy{
	model.StrategyAggressive:   aggressivePolicy{},
	model.StrategyConservative: conservativePolicy{},
	model.StrategyBalanced:     balancedPolicy{},
}

func Get(tag model.Strategy) (Policy, bool) {
	p, ok := registry[tag]
	return p, ok
}

// aggressivePolicy front-loads concessions: a large initial fraction that
// decays slowly across rounds.
type aggressivePolicy struct{}

func (aggressivePolicy) Fraction(round, maxRounds int) float64 {
	return 0.40 * math.Pow(0.95, float64(round))
}

// conservativePolicy concedes little early and ramps up quadratically as the
// round limit nears.
type conservativePolicy struct{}

func (conservativePolicy) Fraction(round, maxRounds int) float64 {
	if maxRounds < 2 {
		return 0.08
	}
	progress := float64(round) / float64(maxRounds-1)
	return 0.08 + 0.30*progress*progress
}

// balancedPolicy closes the gap linearly, reaching the full remaining gap
// only at the final round.
type balancedPolicy struct{}

func (balancedPolicy) Fraction(round, maxRounds int) float64 {
	if maxRounds < 1 {
		return 1
	}
	return float64(round+1) / float64(maxRounds)
}

// PositionFactor scales a seller's concessions: a weak seller concedes
// faster, a strong one slower.
func PositionFactor(p model.MarketPosition) float64 {
	switch p {
	case model.PositionWeak:
		return 1.25
	case model.PositionStrong:
		return 0.80
	default:
		return 1.0
	}
}

// UrgencyFactor scales a buyer's concessions: a high-urgency buyer concedes
// faster.
func UrgencyFactor(u model.Urgency) float64 {
	switch u {
	case model.UrgencyHigh:
		return 1.25
	case model.UrgencyLow:
		return 0.85
	default:
		return 1.0
	}
}

func clampFraction(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func step(from, to, fraction float64) float64 {
	return from + (to-from)*fraction
}

func stepInt(from, to int, fraction float64) int {
	return int(math.Round(step(float64(from), float64(to), fraction)))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// quantityBounds is the corridor both parties' quantities stay inside: the
// closed interval between the seller's minimum and the buyer's desired
// quantity.
func quantityBounds(sellerMin, buyerDesired int) (lo, hi int) {
	if sellerMin <= buyerDesired {
		return sellerMin, buyerDesired
	}
	return buyerDesired, sellerMin
}

// sellerFloor is the lowest price the seller ever proposes.
func sellerFloor(cost float64) float64 {
	return cost * 1.05
}

// OpeningSellerOffer is the seller's round-zero anchor: target price, minimum
// quantity and the roomy end of the delivery range.
func OpeningSellerOffer(sc *model.SellerConstraints) model.Offer {
	terms := sc.SellerTerms()
	return model.Offer{
		Price:          sc.TargetPrice,
		Quantity:       sc.MinQuantity,
		DeliveryDays:   sc.DeliveryRange[1],
		QualityGrade:   terms.QualityGrade,
		PaymentTerms:   terms.PaymentTerms,
		WarrantyMonths: terms.WarrantyMonths,
	}
}

// OpeningBuyerOffer is the buyer's round-zero anchor.
func OpeningBuyerOffer(bc *model.BuyerConstraints) model.Offer {
	terms := bc.BuyerTerms()
	return model.Offer{
		Price:          bc.TargetPrice,
		Quantity:       bc.DesiredQuantity,
		DeliveryDays:   bc.DesiredDelivery,
		QualityGrade:   terms.QualityGrade,
		PaymentTerms:   terms.PaymentTerms,
		WarrantyMonths: terms.WarrantyMonths,
	}
}

// NextSellerOffer moves the seller's position toward the buyer's last offer
// by the policy fraction, clamped to the seller's own feasible bounds. The
// caller guarantees the strategy tag was validated.
func NextSellerOffer(last, counter model.Offer, sc *model.SellerConstraints, bc *model.BuyerConstraints, round, maxRounds int) model.Offer {
	policy, ok := Get(sc.Strategy)
	if !ok {
		return last
	}
	f := clampFraction(policy.Fraction(round, maxRounds) * PositionFactor(sc.MarketPosition))

	next := last
	next.Price = step(last.Price, counter.Price, f)
	if floor := sellerFloor(sc.Cost); next.Price < floor {
		next.Price = floor
	}

	qLo, qHi := quantityBounds(sc.MinQuantity, bc.DesiredQuantity)
	next.Quantity = clampInt(stepInt(last.Quantity, counter.Quantity, f), qLo, qHi)
	if next.Quantity < sc.MinQuantity {
		next.Quantity = sc.MinQuantity
	}

	next.DeliveryDays = clampInt(
		stepInt(last.DeliveryDays, counter.DeliveryDays, f),
		sc.DeliveryRange[0], sc.DeliveryRange[1],
	)
	return next
}

// NextBuyerOffer moves the buyer's position toward the seller's current offer
// by the policy fraction, never above the budget limit.
func NextBuyerOffer(last, counter model.Offer, bc *model.BuyerConstraints, sc *model.SellerConstraints, round, maxRounds int) model.Offer {
	policy, ok := Get(bc.Strategy)
	if !ok {
		return last
	}
	f := clampFraction(policy.Fraction(round, maxRounds) * UrgencyFactor(bc.Urgency))

	next := last
	next.Price = step(last.Price, counter.Price, f)
	if next.Price > bc.BudgetLimit {
		next.Price = bc.BudgetLimit
	}

	qLo, qHi := quantityBounds(sc.MinQuantity, bc.DesiredQuantity)
	next.Quantity = clampInt(stepInt(last.Quantity, counter.Quantity, f), qLo, qHi)

	next.DeliveryDays = stepInt(last.DeliveryDays, counter.DeliveryDays, f)
	if next.DeliveryDays < 1 {
		next.DeliveryDays = 1
	}
	return next
}
