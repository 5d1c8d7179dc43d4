package scoring

// Classification is the binary group assignment derived from an
// Ishihara score. The original analysis scripts spelled the labels
// several ways ("Colorblind", "Likely Color Blind (LCB)"); this is the
// one canonical taxonomy.
type Classification string

const (
	// LikelyColorBlind marks participants scoring below the threshold.
	LikelyColorBlind Classification = "Likely Color Blind"
	// NormalVision marks everyone else.
	NormalVision Classification = "Normal Vision"
)

// Code returns the short form used in chart legends and compact tables.
func (c Classification) Code() string {
	if c == LikelyColorBlind {
		return "LCB"
	}
	return "NV"
}

// DefaultThreshold is the score below which a participant is classified
// as likely color blind, out of the ten Ishihara plates.
const DefaultThreshold = 8

// Classify performs the two-way split: score strictly below threshold
// yields LikelyColorBlind, else NormalVision. Labels are mutually
// exclusive and exhaustive.
func Classify(score, threshold int) Classification {
	if score < threshold {
		return LikelyColorBlind
	}
	return NormalVision
}
