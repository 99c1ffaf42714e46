package campaign

// Phase is the campaign lifecycle stage.
type Phase int

const (
	// Funding accepts contributions; the initial phase.
	Funding Phase = 0

	// Trading is the terminal phase entered once by CloseFunding. Claim
	// tokens trade freely and the asset may be sold.
	Trading Phase = 1
)

// String returns the string representation of a Phase.
func (p Phase) String() string {
	switch p {
	case Funding:
		return "FUNDING"
	case Trading:
		return "TRADING"
	default:
		return "UNKNOWN"
	}
}
