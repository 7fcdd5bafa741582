package request

// MarkupRequest adjusts the markup percentage applied on top of an estimate's
// subtotal.
type MarkupRequest struct {
	MarkupPercent *float64 `json:"markup_percent" binding:"required"`
}
