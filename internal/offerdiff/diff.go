// Package offerdiff computes RFC 6902 style patches between two offers, used
// by the streaming shell and the report to show which terms moved in a round.
package offerdiff

import "negotiation-engine/internal/model"

// Change is a single replace operation on one offer field.
type Change struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

func replaceOp(path string, value any) Change {
	return Change{Op: "replace", Path: path, Value: value}
}

// Diff returns the field-level changes that transform prev into next, in
// declaration order. Nil when the offers are identical.
func Diff(prev, next model.Offer) []Change {
	var ops []Change
	if prev.Price != next.Price {
		ops = append(ops, replaceOp("/price", next.Price))
	}
	if prev.Quantity != next.Quantity {
		ops = append(ops, replaceOp("/quantity", next.Quantity))
	}
	if prev.DeliveryDays != next.DeliveryDays {
		ops = append(ops, replaceOp("/delivery_days", next.DeliveryDays))
	}
	if prev.QualityGrade != next.QualityGrade {
		ops = append(ops, replaceOp("/quality_grade", next.QualityGrade))
	}
	if prev.PaymentTerms != next.PaymentTerms {
		ops = append(ops, replaceOp("/payment_terms", next.PaymentTerms))
	}
	if prev.WarrantyMonths != next.WarrantyMonths {
		ops = append(ops, replaceOp("/warranty_months", next.WarrantyMonths))
	}
	return ops
}
