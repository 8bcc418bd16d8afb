package model

import "testing"

func defaultConfig() SimulationConfig {
	return (*SimulationConfig)(nil).Normalized()
}

func baseOffer() Offer {
	return Offer{
		Price:          1000,
		Quantity:       100,
		DeliveryDays:   5,
		QualityGrade:   GradeStandard,
		PaymentTerms:   PayNet30,
		WarrantyMonths: 12,
	}
}

func TestEffectivePriceBaseline(t *testing.T) {
	cfg := defaultConfig()
	o := baseOffer()

	// Standard grade, net30, baseline warranty, quantity below every bulk
	// tier: the effective price is the nominal price.
	if got := o.EffectivePrice(cfg); got != 1000 {
		t.Fatalf("expected effective price 1000, got %v", got)
	}
}

func TestEffectivePriceAdjustments(t *testing.T) {
	cfg := defaultConfig()

	cases := []struct {
		name   string
		mutate func(*Offer)
		want   float64
	}{
		{"cash discount", func(o *Offer) { o.PaymentTerms = PayCash }, 950},
		{"net90 surcharge", func(o *Offer) { o.PaymentTerms = PayNet90 }, 1050},
		{"grade A premium", func(o *Offer) { o.QualityGrade = GradeA }, 1150},
		{"grade C discount", func(o *Offer) { o.QualityGrade = GradeC }, 950},
		{"extended warranty", func(o *Offer) { o.WarrantyMonths = 24 }, 1180},
		{"short warranty is free", func(o *Offer) { o.WarrantyMonths = 6 }, 1000},
		{"bulk tier", func(o *Offer) { o.Quantity = 600 }, 970},
	}

	for _, tc := range cases {
		o := baseOffer()
		tc.mutate(&o)
		got := o.EffectivePrice(cfg)
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestEffectivePriceMonotonicInQuantity(t *testing.T) {
	cfg := defaultConfig()
	o := baseOffer()

	prev := -1.0
	for qty := 1; qty <= 5000; qty += 50 {
		o.Quantity = qty
		eff := o.EffectivePrice(cfg)
		if prev >= 0 && eff > prev {
			t.Fatalf("effective price rose from %v to %v at quantity %d", prev, eff, qty)
		}
		prev = eff
	}
}

func TestEffectivePriceMonotonicInWarranty(t *testing.T) {
	cfg := defaultConfig()
	o := baseOffer()

	prev := -1.0
	for months := 0; months <= 60; months++ {
		o.WarrantyMonths = months
		eff := o.EffectivePrice(cfg)
		if prev >= 0 && eff < prev {
			t.Fatalf("effective price fell from %v to %v at %d warranty months", prev, eff, months)
		}
		prev = eff
	}
}

func TestEffectivePriceGradeOrdering(t *testing.T) {
	cfg := defaultConfig()
	o := baseOffer()

	grades := []QualityGrade{GradeC, GradeStandard, GradeB, GradeA}
	prev := -1.0
	for _, g := range grades {
		o.QualityGrade = g
		eff := o.EffectivePrice(cfg)
		if eff < prev {
			t.Fatalf("grade %s priced below a lower grade: %v < %v", g, eff, prev)
		}
		prev = eff
	}
}

func TestTotalValue(t *testing.T) {
	cfg := defaultConfig()
	o := baseOffer()

	want := o.EffectivePrice(cfg) * 100
	if got := o.TotalValue(cfg); got != want {
		t.Fatalf("expected total value %v, got %v", want, got)
	}
}

func TestEffectivePriceNeverNegative(t *testing.T) {
	cfg := defaultConfig()
	o := baseOffer()
	o.Price = 0.01
	o.Quantity = 100000
	o.PaymentTerms = PayCash
	o.QualityGrade = GradeC

	if got := o.EffectivePrice(cfg); got < 0 {
		t.Fatalf("effective price went negative: %v", got)
	}
}
