package model

// Defaults applied when a request omits the corresponding config field.
const (
	DefaultMaxRounds             = 15
	DefaultConvergenceTolerance  = 0.02
	DefaultQuantityTolerance     = 0.10
	DefaultDeliveryToleranceDays = 2
	DefaultBulkReferenceVolume   = 500
	DefaultPenaltyRate           = 0.005
)

// SimulationConfig carries the process-wide knobs of one negotiation run.
// It is passed explicitly into the engine and never read from ambient state,
// so concurrent simulations with different configs cannot interfere.
type SimulationConfig struct {
	MaxRounds             int     `json:"max_rounds"`
	ConvergenceTolerance  float64 `json:"convergence_tolerance"`
	QuantityTolerance     float64 `json:"quantity_tolerance"`
	DeliveryToleranceDays int     `json:"delivery_tolerance_days"`
	BulkReferenceVolume   int     `json:"bulk_reference_volume"`
	PenaltyRate           float64 `json:"penalty_rate"`
}

// Normalized returns a complete config, filling zero fields with defaults.
// Safe to call on a nil receiver.
func (c *SimulationConfig) Normalized() SimulationConfig {
	out := SimulationConfig{
		MaxRounds:             DefaultMaxRounds,
		ConvergenceTolerance:  DefaultConvergenceTolerance,
		QuantityTolerance:     DefaultQuantityTolerance,
		DeliveryToleranceDays: DefaultDeliveryToleranceDays,
		BulkReferenceVolume:   DefaultBulkReferenceVolume,
		PenaltyRate:           DefaultPenaltyRate,
	}
	if c == nil {
		return out
	}
	if c.MaxRounds > 0 {
		out.MaxRounds = c.MaxRounds
	}
	if c.ConvergenceTolerance > 0 {
		out.ConvergenceTolerance = c.ConvergenceTolerance
	}
	if c.QuantityTolerance > 0 {
		out.QuantityTolerance = c.QuantityTolerance
	}
	if c.DeliveryToleranceDays > 0 {
		out.DeliveryToleranceDays = c.DeliveryToleranceDays
	}
	if c.BulkReferenceVolume > 0 {
		out.BulkReferenceVolume = c.BulkReferenceVolume
	}
	if c.PenaltyRate > 0 {
		out.PenaltyRate = c.PenaltyRate
	}
	return out
}

func (c *SimulationConfig) Validate() *InvalidConstraintsError {
	if c == nil {
		return nil
	}
	if c.MaxRounds < 0 {
		return invalid("config.max_rounds", "must not be negative")
	}
	if c.ConvergenceTolerance < 0 {
		return invalid("config.convergence_tolerance", "must not be negative")
	}
	if c.QuantityTolerance < 0 {
		return invalid("config.quantity_tolerance", "must not be negative")
	}
	if c.DeliveryToleranceDays < 0 {
		return invalid("config.delivery_tolerance_days", "must not be negative")
	}
	if c.BulkReferenceVolume < 0 {
		return invalid("config.bulk_reference_volume", "must not be negative")
	}
	if c.PenaltyRate < 0 {
		return invalid("config.penalty_rate", "must not be negative")
	}
	return nil
}
