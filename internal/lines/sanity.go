package lines

// Sanity bounds for accepted values. Upstream pages occasionally leak
// placeholder numbers (0, 999, concatenated digits); anything outside these
// ranges is treated as garbage rather than a real market.
const (
	maxSpread = 60.5
	minTotal  = 20
	maxTotal  = 120
	minML     = 100
)

// Disagreement thresholds between the accepted value and a runner-up
// source. Beyond these the sources are not just staleness apart.
const (
	spreadDisagreement = 3
	totalDisagreement  = 6
)

func saneSpread(v float64) bool {
	return v >= -maxSpread && v <= maxSpread
}

func saneTotal(v float64) bool {
	return v >= minTotal && v <= maxTotal
}

func saneMoneyline(v int) bool {
	if v == 0 {
		return false
	}
	if v < 0 {
		v = -v
	}
	return v >= minML
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
