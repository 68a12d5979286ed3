package scheduling

import "math"

// TravelFeeRule maps a one-way travel distance to a monetary fee: a flat
// base fee up to ThresholdKm, then PerKmRate for every kilometre beyond it.
// The fee is monotonically non-decreasing in distance and a distance exactly
// at the threshold is still "within threshold" (no overage).
type TravelFeeRule struct {
	ThresholdKm float64
	BaseFee     float64
	PerKmRate   float64
}

// Fee returns the travel fee in major currency units, rounded to 2 decimals.
func (r TravelFeeRule) Fee(distanceKm float64) (float64, error) {
	if distanceKm < 0 {
		return 0, invalidf("negative distance %.2f", distanceKm)
	}
	if distanceKm <= r.ThresholdKm {
		return round2(r.BaseFee), nil
	}
	return round2(r.BaseFee + (distanceKm-r.ThresholdKm)*r.PerKmRate), nil
}

// FeeCents returns the same fee in minor currency units. Downstream systems
// persist cents, so the two representations must agree to the cent for all
// distances.
func (r TravelFeeRule) FeeCents(distanceKm float64) (int64, error) {
	fee, err := r.Fee(distanceKm)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(fee * 100)), nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
