package intent

// Type discriminates the supported operations.
type Type string

const (
	TypePremiumByRequestID       Type = "premium_by_request_id"
	TypePremiumByEmail           Type = "premium_by_email"
	TypeVehicleFactorByRequestID Type = "vehicle_factor_by_request_id"
	TypeUnknown                  Type = "unknown"
)

// Intent is the classified purpose of a user question. Exactly one
// variant is active; RequestID/Email are set only for the variants that
// carry them, so the JSON shape matches the wire contract.
type Intent struct {
	Type      Type   `json:"type"`
	RequestID string `json:"requestId,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Unknown is the universal safe fallback.
func Unknown() Intent {
	return Intent{Type: TypeUnknown}
}

// valid reports whether the parsed intent is one of the recognized
// variants with its required field present.
func (i Intent) valid() bool {
	switch i.Type {
	case TypePremiumByRequestID, TypeVehicleFactorByRequestID:
		return i.RequestID != ""
	case TypePremiumByEmail:
		return i.Email != ""
	case TypeUnknown:
		return true
	default:
		return false
	}
}
