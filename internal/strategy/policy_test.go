package strategy

import (
	"testing"

	"negotiation-engine/internal/model"
)

func TestRegistryCoversAllStrategies(t *testing.T) {
	for _, tag := range []model.Strategy{
		model.StrategyAggressive, model.StrategyConservative, model.StrategyBalanced,
	} {
		if _, ok := Get(tag); !ok {
			t.Fatalf("no policy registered for %s", tag)
		}
	}
	if _, ok := Get("random"); ok {
		t.Fatal("unexpected policy for unknown strategy")
	}
}

func TestAggressiveFrontLoaded(t *testing.T) {
	p, _ := Get(model.StrategyAggressive)
	prev := p.Fraction(0, 15)
	if prev < 0.35 {
		t.Fatalf("aggressive opening fraction too small: %v", prev)
	}
	for r := 1; r < 15; r++ {
		f := p.Fraction(r, 15)
		if f >= prev {
			t.Fatalf("aggressive fraction did not decrease at round %d: %v >= %v", r, f, prev)
		}
		prev = f
	}
}

func TestConservativeRampsUp(t *testing.T) {
	p, _ := Get(model.StrategyConservative)
	prev := p.Fraction(0, 15)
	if prev > 0.10 {
		t.Fatalf("conservative opening fraction too large: %v", prev)
	}
	for r := 1; r < 15; r++ {
		f := p.Fraction(r, 15)
		if f <= prev {
			t.Fatalf("conservative fraction did not increase at round %d", r)
		}
		prev = f
	}
}

func TestBalancedReachesFullGapAtFinalRound(t *testing.T) {
	p, _ := Get(model.StrategyBalanced)
	const maxRounds = 10
	for r := 0; r < maxRounds-1; r++ {
		if f := p.Fraction(r, maxRounds); f >= 1 {
			t.Fatalf("balanced fraction hit 1 before the final round (round %d)", r)
		}
	}
	if f := p.Fraction(maxRounds-1, maxRounds); f != 1 {
		t.Fatalf("balanced fraction at final round = %v, want 1", f)
	}
}

func TestModifierFactors(t *testing.T) {
	if PositionFactor(model.PositionWeak) <= PositionFactor(model.PositionNeutral) {
		t.Fatal("weak seller should concede faster than neutral")
	}
	if PositionFactor(model.PositionStrong) >= PositionFactor(model.PositionNeutral) {
		t.Fatal("strong seller should concede slower than neutral")
	}
	if UrgencyFactor(model.UrgencyHigh) <= UrgencyFactor(model.UrgencyMedium) {
		t.Fatal("high urgency buyer should concede faster than medium")
	}
	if UrgencyFactor(model.UrgencyLow) >= UrgencyFactor(model.UrgencyMedium) {
		t.Fatal("low urgency buyer should concede slower than medium")
	}
}

func sellerFixture() *model.SellerConstraints {
	return &model.SellerConstraints{
		Cost:           1000,
		TargetPrice:    2000,
		MinQuantity:    100,
		DeliveryRange:  [2]int{3, 10},
		MarketPosition: model.PositionNeutral,
		Strategy:       model.StrategyAggressive,
	}
}

func buyerFixture() *model.BuyerConstraints {
	return &model.BuyerConstraints{
		TargetPrice:     800,
		BudgetLimit:     900,
		DesiredQuantity: 200,
		DesiredDelivery: 5,
		Urgency:         model.UrgencyMedium,
		Strategy:        model.StrategyAggressive,
	}
}

func TestSellerNeverBelowCostFloor(t *testing.T) {
	sc := sellerFixture()
	bc := buyerFixture()
	last := model.Offer{Price: 1100, Quantity: 100, DeliveryDays: 10}
	counter := model.Offer{Price: 500, Quantity: 200, DeliveryDays: 5}

	next := NextSellerOffer(last, counter, sc, bc, 1, 15)
	if floor := sc.Cost * 1.05; next.Price < floor {
		t.Fatalf("seller proposed %v, below floor %v", next.Price, floor)
	}
}

func TestBuyerNeverAboveBudget(t *testing.T) {
	sc := sellerFixture()
	bc := buyerFixture()
	last := model.Offer{Price: 800, Quantity: 200, DeliveryDays: 5}
	counter := model.Offer{Price: 2000, Quantity: 100, DeliveryDays: 10}

	next := NextBuyerOffer(last, counter, bc, sc, 1, 15)
	if next.Price > bc.BudgetLimit {
		t.Fatalf("buyer proposed %v, above budget %v", next.Price, bc.BudgetLimit)
	}
}

func TestQuantityStaysInCorridor(t *testing.T) {
	sc := sellerFixture()
	bc := buyerFixture()
	sellerOffer := model.Offer{Price: 2000, Quantity: sc.MinQuantity, DeliveryDays: 10}
	buyerOffer := model.Offer{Price: 800, Quantity: bc.DesiredQuantity, DeliveryDays: 5}

	for r := 1; r < 15; r++ {
		sellerOffer = NextSellerOffer(sellerOffer, buyerOffer, sc, bc, r, 15)
		buyerOffer = NextBuyerOffer(buyerOffer, sellerOffer, bc, sc, r, 15)
		for _, q := range []int{sellerOffer.Quantity, buyerOffer.Quantity} {
			if q < sc.MinQuantity || q > bc.DesiredQuantity {
				t.Fatalf("round %d: quantity %d left corridor [%d,%d]", r, q, sc.MinQuantity, bc.DesiredQuantity)
			}
		}
		if sellerOffer.DeliveryDays < sc.DeliveryRange[0] || sellerOffer.DeliveryDays > sc.DeliveryRange[1] {
			t.Fatalf("round %d: seller delivery %d left range", r, sellerOffer.DeliveryDays)
		}
	}
}

func TestConcessionIsDeterministic(t *testing.T) {
	sc := sellerFixture()
	bc := buyerFixture()
	last := model.Offer{Price: 1800, Quantity: 120, DeliveryDays: 9}
	counter := model.Offer{Price: 850, Quantity: 190, DeliveryDays: 5}

	a := NextSellerOffer(last, counter, sc, bc, 3, 15)
	b := NextSellerOffer(last, counter, sc, bc, 3, 15)
	if a != b {
		t.Fatalf("identical inputs produced different offers: %+v vs %+v", a, b)
	}
}
