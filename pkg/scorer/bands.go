// Package scorer computes consumer-facing nutrition health scores.
package scorer

// Band is one tier of a penalty or bonus table: values strictly above Min
// (per 100g) earn Points.
type Band struct {
	Min    float64
	Points int
}

// BandTable is an ordered set of bands, highest threshold first. A value
// below every band earns nothing.
type BandTable []Band

// Points returns the points for the first band the value exceeds.
func (t BandTable) Points(per100g float64) int {
	for _, b := range t {
		if per100g > b.Min {
			return b.Points
		}
	}
	return 0
}

// Default penalty bands for the four negative nutrients, per 100g.
// Each table has five linear steps at 20% intervals of its top threshold,
// mirroring Nutri-Score-style banding.
func DefaultCalorieBands() BandTable { // kcal
	return BandTable{{400, 10}, {320, 8}, {240, 6}, {160, 4}, {80, 2}}
}

func DefaultSaturatedFatBands() BandTable { // g
	return BandTable{{5, 10}, {4, 8}, {3, 6}, {2, 4}, {1, 2}}
}

func DefaultSugarBands() BandTable { // g
	return BandTable{{22.5, 10}, {18, 8}, {13.5, 6}, {9, 4}, {4.5, 2}}
}

func DefaultSodiumBands() BandTable { // mg
	return BandTable{{900, 10}, {720, 8}, {540, 6}, {360, 4}, {180, 2}}
}

// Default bonus bands for the two positive nutrients, per 100g.
func DefaultFiberBands() BandTable { // g
	return BandTable{{4.7, 5}, {3.7, 4}, {2.8, 3}, {1.9, 2}, {0.9, 1}}
}

func DefaultProteinBands() BandTable { // g
	return BandTable{{8, 5}, {6.4, 4}, {4.8, 3}, {3.2, 2}, {1.6, 1}}
}
