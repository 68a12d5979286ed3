package scheduling

import (
	"math"

	"glowdesk/models"
)

// Quote combines service price, travel fee and deposit into a final priced
// proposal. Per-unit services are resolved with the supplied unit count
// first; their effective price and duration only exist once the quantity is
// known. distanceKm == 0 means an in-salon appointment with no travel fee.
func (e *Engine) Quote(serviceID string, distanceKm float64, units int) (models.Quote, error) {
	def, err := e.catalog.Get(serviceID)
	if err != nil {
		return models.Quote{}, err
	}
	if distanceKm < 0 {
		return models.Quote{}, invalidf("negative distance %.2f", distanceKm)
	}
	svc := def.Resolve(units)

	var fee float64
	var feeCents int64
	if distanceKm > 0 {
		if fee, err = e.travel.Fee(distanceKm); err != nil {
			return models.Quote{}, err
		}
		if feeCents, err = e.travel.FeeCents(distanceKm); err != nil {
			return models.Quote{}, err
		}
	}

	totalCents := svc.PriceCents + feeCents
	// Deposits ceiling-round to a whole currency unit so they never
	// under-collect: ceil(total * percent / 100).
	rawDeposit := totalCents * int64(e.policy.DepositPercent)
	depositUnits := rawDeposit / 10000
	if rawDeposit%10000 != 0 {
		depositUnits++
	}

	return models.Quote{
		ServiceID:         svc.ID,
		Units:             svc.Units,
		ServicePrice:      svc.Price,
		ServicePriceCents: svc.PriceCents,
		PriceIsMinimum:    svc.PriceIsMinimum,
		TravelFee:         fee,
		TravelFeeCents:    feeCents,
		Total:             round2(svc.Price + fee),
		TotalCents:        totalCents,
		Deposit:           float64(depositUnits),
		DepositCents:      depositUnits * 100,
		DurationMinutes:   svc.DurationMinutes,
		Currency:          e.policy.Currency,
	}, nil
}

// TravelFee exposes the fee calculation for callers that only need pricing,
// e.g. a conversational layer quoting "how much to come to my place".
func (e *Engine) TravelFee(distanceKm float64) (float64, int64, error) {
	fee, err := e.travel.Fee(distanceKm)
	if err != nil {
		return 0, 0, err
	}
	cents := int64(math.Round(fee * 100))
	return fee, cents, nil
}
