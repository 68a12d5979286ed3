package config

import "glowdesk/models"

// ServiceCatalog is the static service registry. It is loaded once at
// process start into the scheduling engine's immutable catalog; changing an
// entry is a deploy.
func ServiceCatalog() []models.ServiceDefinition {
	return []models.ServiceDefinition{
		{ID: "womens_cut", Name: "Women's cut & blow-dry", Category: "cut", PriceCents: 6500, Price: 65, DurationMinutes: 60, BlocksDays: 1},
		{ID: "mens_cut", Name: "Men's cut", Category: "cut", PriceCents: 3500, Price: 35, DurationMinutes: 30, BlocksDays: 1},
		{ID: "color_roots", Name: "Root touch-up color", Category: "color", PriceCents: 7800, Price: 78, DurationMinutes: 90, BlocksDays: 1},
		{ID: "balayage", Name: "Balayage", Category: "color", PriceCents: 14000, Price: 140, PriceIsMinimum: true, DurationMinutes: 180, BlocksDays: 1},
		{ID: "keratin_treatment", Name: "Keratin smoothing treatment", Category: "treatment", PriceCents: 19000, Price: 190, PriceIsMinimum: true, DurationMinutes: 150, BlocksDays: 1},
		{ID: "lock_repair", Name: "Lock repair", Category: "locks", PriceCents: 1500, Price: 15, DurationMinutes: 20, BlocksDays: 1, PerUnit: true, UnitType: "lock"},
		{ID: "loc_retwist", Name: "Loc retwist", Category: "locks", PriceCents: 9000, Price: 90, DurationMinutes: 120, BlocksDays: 1},
		{ID: "full_head_locs", Name: "Full head loc installation", Category: "locks", PriceCents: 52000, Price: 520, PriceIsMinimum: true, DurationMinutes: 480, BlocksFullDay: true, BlocksDays: 2},
		{ID: "bridal_day", Name: "Bridal styling day", Category: "bridal", PriceCents: 38000, Price: 380, DurationMinutes: 480, BlocksFullDay: true, BlocksDays: 1},
	}
}
