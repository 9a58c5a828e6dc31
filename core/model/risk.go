package model

// RiskLevel is one of four ordered traffic-condition severity categories.
// The order matches the basis outcomes of the policy circuit.
type RiskLevel int

const (
	RiskNormal RiskLevel = iota
	RiskWatch
	RiskCongested
	RiskCritical
)

var riskNames = [...]string{"NORMAL", "WATCH", "CONGESTED", "CRITICAL"}

func (r RiskLevel) String() string {
	if r < 0 || int(r) >= len(riskNames) {
		return "UNKNOWN"
	}
	return riskNames[r]
}

// RiskLevels returns the four levels in circuit-outcome order.
func RiskLevels() [4]RiskLevel {
	return [4]RiskLevel{RiskNormal, RiskWatch, RiskCongested, RiskCritical}
}

// RiskAssessment is the result of one risk classification. Probabilities
// holds one entry per risk label and sums to 1.
type RiskAssessment struct {
	RiskLabel     string             `json:"risk_label"`
	ActionIndex   int                `json:"action_index"`
	Probabilities map[string]float64 `json:"probabilities"`
}
