package domain

// Variant is the kind of answer a prediction request receives.
type Variant int

const (
	// VariantSuccess answers with a sampled prediction.
	VariantSuccess Variant = iota
	// VariantError answers with an entry of the failure table.
	VariantError
)

// String returns the variant name used in logs and metric labels.
func (v Variant) String() string {
	switch v {
	case VariantSuccess:
		return "success"
	case VariantError:
		return "error"
	default:
		return "unknown"
	}
}

// Decide maps a uniform draw in [0,1) to a variant.
// A roll strictly below rate is an injected error, so rate 0 never fails and rate 1 always does.
func Decide(roll float64, rate ErrorRate) Variant {
	if roll < float64(rate) {
		return VariantError
	}
	return VariantSuccess
}
