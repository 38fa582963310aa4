package domain

import "math"

// NotAvailable is the label returned for a missing bearing.
const NotAvailable = "N/A"

// cardinalLabels starts with the North sector centered on 0°.
var cardinalLabels = [8]string{
	"North", "Northeast", "East", "Southeast",
	"South", "Southwest", "West", "Northwest",
}

// ToCardinal converts a compass bearing in degrees to one of eight cardinal labels.
// A nil bearing yields NotAvailable.
func ToCardinal(degrees *float64) string {
	if degrees == nil {
		return NotAvailable
	}
	d := *degrees
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return NotAvailable
	}

	index := int(math.Floor((d+22.5)/45)) % 8
	if index < 0 {
		index += 8
	}
	return cardinalLabels[index]
}

// CardinalLabels returns the eight labels in clockwise order starting at North.
func CardinalLabels() []string {
	return cardinalLabels[:]
}
