package model

// RiskLevel is a qualitative bucket for the probability of losing money.
// Keep these values stable; they are intended for API/CSV output.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskVeryHigh RiskLevel = "Very High"
)

// RiskLevelFromProbability buckets a probability of loss.
func RiskLevelFromProbability(probLoss float64) RiskLevel {
	switch {
	case probLoss < 0.10:
		return RiskLow
	case probLoss < 0.25:
		return RiskModerate
	case probLoss < 0.40:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}

// Recommendation is the discrete verdict for a candidate purchase.
type Recommendation string

const (
	RecommendStrongBuy Recommendation = "Strong Buy"
	RecommendBuy       Recommendation = "Buy"
	RecommendHold      Recommendation = "Hold"
	RecommendAvoid     Recommendation = "Avoid"
)

// RecommendationFor applies the verdict thresholds in priority order;
// the first matching row wins.
func RecommendationFor(expectedReturn, probLoss float64) Recommendation {
	switch {
	case expectedReturn > 50000 && probLoss < 0.20:
		return RecommendStrongBuy
	case expectedReturn > 20000 && probLoss < 0.30:
		return RecommendBuy
	case expectedReturn > 0 && probLoss < 0.40:
		return RecommendHold
	default:
		return RecommendAvoid
	}
}
