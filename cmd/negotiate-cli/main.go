// negotiate-cli runs a single negotiation from a request file and prints the
// round log and metrics. Useful for batch experiments without the server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	json "github.com/goccy/go-json"
	"github.com/pkg/profile"

	"negotiation-engine/internal/engine"
	"negotiation-engine/internal/model"
	"negotiation-engine/internal/report"
)

func main() {
	input := flag.String("input", "", "path to a SimulationRequest JSON file")
	asJSON := flag.Bool("json", false, "print the raw SimulationResponse JSON")
	asMarkdown := flag.Bool("report", false, "print the Markdown report instead of the plain log")
	profiling := flag.Bool("profile", false, "write a CPU profile to the current directory")
	flag.Parse()

	if *input == "" {
		log.Fatal("usage: negotiate-cli -input request.json [-json|-report] [-profile]")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read request: %v", err)
	}
	var req model.SimulationRequest
	if err := json.Unmarshal(data, &req); err != nil {
		log.Fatalf("decode request: %v", err)
	}

	if *profiling {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	resp, err := engine.Simulate(&req)
	if err != nil {
		log.Fatalf("simulation: %v", err)
	}

	switch {
	case *asJSON:
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			log.Fatalf("encode response: %v", err)
		}
		fmt.Println(string(out))
	case *asMarkdown:
		fmt.Print(report.Markdown(resp))
	default:
		for _, entry := range resp.Log {
			fmt.Println(entry)
		}
		fmt.Printf("status=%s rounds=%d success=%v\n",
			resp.SimulationMetadata.Status, resp.SimulationMetadata.RoundsCompleted, resp.Success)
		fmt.Printf("win-win=%.1f seller=%.1f buyer=%.1f risk=%.1f competitiveness=%.1f efficiency=%.1f\n",
			resp.Metrics.WinWinScore, resp.Metrics.SellerSatisfaction, resp.Metrics.BuyerSatisfaction,
			resp.Metrics.RiskScore, resp.Metrics.PriceCompetitiveness, resp.Metrics.Efficiency)
	}
}
