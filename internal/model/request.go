package model

// OfferTerms are the non-numeric terms a party holds fixed for the whole run.
// A nil Terms field on a constraint set means standard grade, net30 payment
// and the 12-month warranty baseline.
type OfferTerms struct {
	QualityGrade   QualityGrade `json:"quality_grade"`
	PaymentTerms   PaymentTerms `json:"payment_terms"`
	WarrantyMonths int          `json:"warranty_months"`
}

// DefaultTerms returns the terms assumed when a side does not state any.
func DefaultTerms() OfferTerms {
	return OfferTerms{
		QualityGrade:   GradeStandard,
		PaymentTerms:   PayNet30,
		WarrantyMonths: warrantyBaselineMonths,
	}
}

type SellerConstraints struct {
	Cost           float64        `json:"cost"`
	TargetPrice    float64        `json:"target_price"`
	MinQuantity    int            `json:"min_quantity"`
	DeliveryRange  [2]int         `json:"delivery_range"`
	MarketPosition MarketPosition `json:"market_position"`
	Strategy       Strategy       `json:"strategy"`
	Terms          *OfferTerms    `json:"terms,omitempty"`
}

type BuyerConstraints struct {
	TargetPrice     float64     `json:"target_price"`
	BudgetLimit     float64     `json:"budget_limit"`
	DesiredQuantity int         `json:"desired_quantity"`
	DesiredDelivery int         `json:"desired_delivery_days"`
	Urgency         Urgency     `json:"urgency"`
	Strategy        Strategy    `json:"strategy"`
	Terms           *OfferTerms `json:"terms,omitempty"`
}

// SimulationRequest is the engine's single structured input. Config may be
// omitted; defaults then apply.
type SimulationRequest struct {
	Seller SellerConstraints `json:"seller"`
	Buyer  BuyerConstraints  `json:"buyer"`
	Config *SimulationConfig `json:"config,omitempty"`
}

func (t *OfferTerms) validate(side string) *InvalidConstraintsError {
	if t == nil {
		return nil
	}
	if !t.QualityGrade.Valid() {
		return invalid(side+".terms.quality_grade", "unknown quality grade: "+string(t.QualityGrade))
	}
	if !t.PaymentTerms.Valid() {
		return invalid(side+".terms.payment_terms", "unknown payment terms: "+string(t.PaymentTerms))
	}
	if t.WarrantyMonths < 0 {
		return invalid(side+".terms.warranty_months", "must not be negative")
	}
	return nil
}

func (s *SellerConstraints) Validate() *InvalidConstraintsError {
	if s.Cost <= 0 {
		return invalid("seller.cost", "must be positive")
	}
	if s.TargetPrice < s.Cost {
		return invalid("seller.target_price", "must be at least the unit cost")
	}
	if s.MinQuantity <= 0 {
		return invalid("seller.min_quantity", "must be positive")
	}
	if s.DeliveryRange[0] <= 0 {
		return invalid("seller.delivery_range", "minimum delivery must be positive")
	}
	if s.DeliveryRange[0] > s.DeliveryRange[1] {
		return invalid("seller.delivery_range", "minimum exceeds maximum")
	}
	if !s.MarketPosition.Valid() {
		return invalid("seller.market_position", "unknown market position: "+string(s.MarketPosition))
	}
	if !s.Strategy.Valid() {
		return invalid("seller.strategy", "unknown strategy: "+string(s.Strategy))
	}
	return s.Terms.validate("seller")
}

func (b *BuyerConstraints) Validate() *InvalidConstraintsError {
	if b.TargetPrice <= 0 {
		return invalid("buyer.target_price", "must be positive")
	}
	if b.BudgetLimit < b.TargetPrice {
		return invalid("buyer.budget_limit", "must be at least the target price")
	}
	if b.DesiredQuantity <= 0 {
		return invalid("buyer.desired_quantity", "must be positive")
	}
	if b.DesiredDelivery <= 0 {
		return invalid("buyer.desired_delivery_days", "must be positive")
	}
	if !b.Urgency.Valid() {
		return invalid("buyer.urgency", "unknown urgency: "+string(b.Urgency))
	}
	if !b.Strategy.Valid() {
		return invalid("buyer.strategy", "unknown strategy: "+string(b.Strategy))
	}
	return b.Terms.validate("buyer")
}

// Validate checks every invariant of the request before any round runs.
func (r *SimulationRequest) Validate() error {
	if err := r.Seller.Validate(); err != nil {
		return err
	}
	if err := r.Buyer.Validate(); err != nil {
		return err
	}
	if err := r.Config.Validate(); err != nil {
		return err
	}
	return nil
}

// SellerTerms returns the seller's fixed terms, defaulted when absent.
func (s *SellerConstraints) SellerTerms() OfferTerms {
	if s.Terms != nil {
		return *s.Terms
	}
	return DefaultTerms()
}

// BuyerTerms returns the buyer's fixed terms, defaulted when absent.
func (b *BuyerConstraints) BuyerTerms() OfferTerms {
	if b.Terms != nil {
		return *b.Terms
	}
	return DefaultTerms()
}
