package entities

// Placeholders used when the gateway response does not expose card details.
const (
	CardLast4Placeholder = "XXXX"
	CardBrandPlaceholder = "card"
)

// ChargeResult is the typed outcome of one charge attempt at the gateway.
//
// A card decline is an expected business outcome, so it arrives here as
// Success=false with an ErrorMessage instead of as an error value. All other
// provider failures (rate limit, invalid request, auth, connectivity) are
// returned as errors by the gateway client and never produce a ChargeResult.
type ChargeResult struct {
	Success      bool   `json:"success"`
	ChargeID     string `json:"charge_id,omitempty"`
	CardLast4    string `json:"card_last4"`
	CardBrand    string `json:"card_brand"`
	ErrorMessage string `json:"error_message,omitempty"`
}
