// Package report renders a finished simulation as a human-readable
// negotiation report: Markdown for terminals and pipelines, HTML for the
// dashboard shell.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"negotiation-engine/internal/model"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Markdown builds the report body from a simulation response.
func Markdown(resp *model.SimulationResponse) string {
	var b strings.Builder

	b.WriteString("# Negotiation Report\n\n")
	fmt.Fprintf(&b, "Simulation `%s`\n\n", resp.SimulationMetadata.SimulationID)
	fmt.Fprintf(&b, "- Status: **%s**\n", resp.SimulationMetadata.Status)
	fmt.Fprintf(&b, "- Rounds completed: %d\n", resp.SimulationMetadata.RoundsCompleted)
	fmt.Fprintf(&b, "- Duration: %d ms\n\n", resp.SimulationMetadata.SimulationDurationMs)

	if resp.Result != nil {
		b.WriteString("## Agreed terms\n\n")
		b.WriteString("| Term | Value |\n|---|---|\n")
		fmt.Fprintf(&b, "| Price | %.2f |\n", resp.Result.Price)
		fmt.Fprintf(&b, "| Quantity | %d |\n", resp.Result.Quantity)
		fmt.Fprintf(&b, "| Delivery | %d days |\n", resp.Result.DeliveryDays)
		fmt.Fprintf(&b, "| Quality grade | %s |\n", resp.Result.QualityGrade)
		fmt.Fprintf(&b, "| Payment terms | %s |\n", resp.Result.PaymentTerms)
		fmt.Fprintf(&b, "| Warranty | %d months |\n", resp.Result.WarrantyMonths)
		fmt.Fprintf(&b, "| Effective price | %.2f |\n", resp.Result.EffectivePrice)
		fmt.Fprintf(&b, "| Total value | %.2f |\n\n", resp.Result.TotalValue)
	} else {
		b.WriteString("## No agreement\n\nThe parties did not converge; the metrics below are diagnostic, scored against the last observed positions.\n\n")
	}

	b.WriteString("## Metrics\n\n")
	b.WriteString("| Metric | Score |\n|---|---|\n")
	fmt.Fprintf(&b, "| Win-win score | %.1f |\n", resp.Metrics.WinWinScore)
	fmt.Fprintf(&b, "| Seller satisfaction | %.1f |\n", resp.Metrics.SellerSatisfaction)
	fmt.Fprintf(&b, "| Buyer satisfaction | %.1f |\n", resp.Metrics.BuyerSatisfaction)
	fmt.Fprintf(&b, "| Risk | %.1f |\n", resp.Metrics.RiskScore)
	fmt.Fprintf(&b, "| Price competitiveness | %.1f |\n", resp.Metrics.PriceCompetitiveness)
	fmt.Fprintf(&b, "| Efficiency | %.1f |\n\n", resp.Metrics.Efficiency)

	b.WriteString("## Round log\n\n")
	for _, entry := range resp.Log {
		fmt.Fprintf(&b, "1. %s\n", entry)
	}

	return b.String()
}

// HTML renders the Markdown report as an HTML fragment.
func HTML(resp *model.SimulationResponse) ([]byte, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(resp)), &buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}
