package request

import "strings"

// JobRequest creates an insulation job. framing_size must be one of the lumber
// sizes the domain knows (2x4 through 2x12).
type JobRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	SiteAddress  string `json:"site_address"`
	FramingSize  string `json:"framing_size" binding:"required"`
}

func (r JobRequest) ResolveCustomerName() string {
	return strings.TrimSpace(r.CustomerName)
}
