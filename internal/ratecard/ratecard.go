// Package ratecard resolves default simulation configs from an optional
// external rate-card service. The engine never calls this directly: the
// handler consults it only when a request omits its config, keeping all
// I/O outside the negotiation loop.
package ratecard

import (
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"negotiation-engine/internal/model"
)

var (
	serviceURL string
	cache      sync.Map
	client     *http.Client
)

func init() {
	serviceURL = os.Getenv("RATECARD_URL")
	if serviceURL != "" {
		client = &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
}

type rateCard struct {
	Profile             string  `json:"profile"`
	MaxRounds           int     `json:"max_rounds"`
	BulkReferenceVolume int     `json:"bulk_reference_volume"`
	PenaltyRate         float64 `json:"penalty_rate"`
}

// GetConfig returns the default simulation config for the named profile.
// Results are cached; on any failure the built-in defaults apply.
func GetConfig(profile string) model.SimulationConfig {
	if profile == "" {
		profile = "standard"
	}
	if serviceURL == "" {
		return (*model.SimulationConfig)(nil).Normalized()
	}

	if cfg, ok := cache.Load(profile); ok {
		return cfg.(model.SimulationConfig)
	}

	cfg := fetch(profile)
	cache.Store(profile, cfg)
	return cfg
}

func fetch(profile string) model.SimulationConfig {
	fallback := (*model.SimulationConfig)(nil).Normalized()

	resp, err := client.Get(serviceURL + "/ratecards/" + profile)
	if err != nil {
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fallback
	}

	var rc rateCard
	if err := json.NewDecoder(resp.Body).Decode(&rc); err != nil {
		return fallback
	}

	partial := model.SimulationConfig{
		MaxRounds:           rc.MaxRounds,
		BulkReferenceVolume: rc.BulkReferenceVolume,
		PenaltyRate:         rc.PenaltyRate,
	}
	return partial.Normalized()
}
