package model

// Enumerated negotiation terms. Values travel on the wire, so they are
// plain lowercase strings.
type (
	Strategy       string
	MarketPosition string
	Urgency        string
	QualityGrade   string
	PaymentTerms   string
)

const (
	StrategyAggressive   Strategy = "aggressive"
	StrategyConservative Strategy = "conservative"
	StrategyBalanced     Strategy = "balanced"
)

const (
	PositionWeak    MarketPosition = "weak"
	PositionNeutral MarketPosition = "neutral"
	PositionStrong  MarketPosition = "strong"
)

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

const (
	GradeA        QualityGrade = "A"
	GradeB        QualityGrade = "B"
	GradeStandard QualityGrade = "standard"
	GradeC        QualityGrade = "C"
)

const (
	PayCash        PaymentTerms = "cash"
	PayNet30       PaymentTerms = "net30"
	PayNet60       PaymentTerms = "net60"
	PayNet90       PaymentTerms = "net90"
	PayInstallment PaymentTerms = "installment"
)

func (s Strategy) Valid() bool {
	switch s {
	case StrategyAggressive, StrategyConservative, StrategyBalanced:
		return true
	}
	return false
}

func (p MarketPosition) Valid() bool {
	switch p {
	case PositionWeak, PositionNeutral, PositionStrong:
		return true
	}
	return false
}

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

func (g QualityGrade) Valid() bool {
	switch g {
	case GradeA, GradeB, GradeStandard, GradeC:
		return true
	}
	return false
}

func (p PaymentTerms) Valid() bool {
	switch p {
	case PayCash, PayNet30, PayNet60, PayNet90, PayInstallment:
		return true
	}
	return false
}

// Offer is one party's position at a given round.
type Offer struct {
	Price          float64      `json:"price"`
	Quantity       int          `json:"quantity"`
	DeliveryDays   int          `json:"delivery_days"`
	QualityGrade   QualityGrade `json:"quality_grade"`
	PaymentTerms   PaymentTerms `json:"payment_terms"`
	WarrantyMonths int          `json:"warranty_months"`
}

var qualityMultiplier = map[QualityGrade]float64{
	GradeA:        1.15,
	GradeB:        1.08,
	GradeStandard: 1.00,
	GradeC:        0.95,
}

var paymentAdjustment = map[PaymentTerms]float64{
	PayCash:        0.95,
	PayNet30:       1.00,
	PayNet60:       1.02,
	PayNet90:       1.05,
	PayInstallment: 1.03,
}

const warrantyBaselineMonths = 12
const warrantySurchargePerMonth = 0.015

// bulkDiscount is a non-increasing step function of quantity relative to the
// configured reference volume.
func bulkDiscount(quantity, referenceVolume int) float64 {
	if referenceVolume <= 0 {
		return 1.0
	}
	q := float64(quantity)
	v := float64(referenceVolume)
	switch {
	case q < v/2:
		return 1.00
	case q < v:
		return 0.99
	case q < 2*v:
		return 0.97
	case q < 5*v:
		return 0.95
	default:
		return 0.93
	}
}

// EffectivePrice is the true per-unit economic cost of the offer: the nominal
// price adjusted for quality grade, warranty length, payment terms and
// quantity tier. Never negative.
func (o Offer) EffectivePrice(cfg SimulationConfig) float64 {
	qm, ok := qualityMultiplier[o.QualityGrade]
	if !ok {
		qm = 1.0
	}
	pm, ok := paymentAdjustment[o.PaymentTerms]
	if !ok {
		pm = 1.0
	}
	warranty := 1.0
	if o.WarrantyMonths > warrantyBaselineMonths {
		warranty = 1 + float64(o.WarrantyMonths-warrantyBaselineMonths)*warrantySurchargePerMonth
	}
	eff := o.Price * qm * warranty * pm * bulkDiscount(o.Quantity, cfg.BulkReferenceVolume)
	if eff < 0 {
		return 0
	}
	return eff
}

// TotalValue is the effective price times the quantity on offer.
func (o Offer) TotalValue(cfg SimulationConfig) float64 {
	return o.EffectivePrice(cfg) * float64(o.Quantity)
}
