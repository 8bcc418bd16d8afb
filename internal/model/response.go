package model

type SimulationResponse struct {
	SimulationMetadata SimulationMetadata `json:"simulation_metadata"`
	Success            bool               `json:"success"`
	Log                []string           `json:"log"`
	Result             *FinalTerms        `json:"result,omitempty"`
	Metrics            Metrics            `json:"metrics"`
}

type SimulationMetadata struct {
	SimulationID          string `json:"simulation_id"`
	SimulationStartedAt   string `json:"simulation_started_at"`
	SimulationCompletedAt string `json:"simulation_completed_at"`
	SimulationDurationMs  int64  `json:"simulation_duration_ms"`
	Status                Status `json:"status"`
	RoundsCompleted       int    `json:"rounds_completed"`
}

// FinalTerms is the accepted position plus its derived values; present only
// when the negotiation ends in agreement.
type FinalTerms struct {
	Offer
	EffectivePrice float64 `json:"effective_price"`
	TotalValue     float64 `json:"total_value"`
}

// Metrics are the post-negotiation scores, each within [0,100].
type Metrics struct {
	WinWinScore          float64 `json:"win_win_score"`
	SellerSatisfaction   float64 `json:"seller_satisfaction"`
	BuyerSatisfaction    float64 `json:"buyer_satisfaction"`
	RiskScore            float64 `json:"risk_score"`
	PriceCompetitiveness float64 `json:"price_competitiveness"`
	Efficiency           float64 `json:"efficiency"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Status is the state machine's terminal (or in-flight) state.
type Status string

const (
	StatusInProgress       Status = "IN_PROGRESS"
	StatusAgreed           Status = "AGREED"
	StatusDeadlocked       Status = "DEADLOCKED"
	StatusMaxRoundsReached Status = "MAX_ROUNDS_REACHED"
)
