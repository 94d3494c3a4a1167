package server

import (
	"github.com/google/uuid"

	"github.com/calyptra/verdant/internal/catalog"
)

// SeedPlants returns a small demo inventory for local development.
func SeedPlants() []catalog.Plant {
	plants := []catalog.Plant{
		{
			Name:        "Monstera Deliciosa",
			Price:       34.99,
			Quantity:    12,
			Categories:  []string{"indoor", "tropical"},
			Description: "Iconic split-leaf philodendron that thrives in bright, indirect light.",
			Light:       catalog.LightMedium,
			Difficulty:  "Easy",
		},
		{
			Name:        "Snake Plant",
			Price:       19.99,
			Quantity:    25,
			Categories:  []string{"indoor", "air purifying"},
			Description: "Nearly indestructible. Tolerates low light and irregular watering.",
			Light:       catalog.LightLow,
			Difficulty:  "Easy",
		},
		{
			Name:        "Fiddle Leaf Fig",
			Price:       49.5,
			Quantity:    0,
			Categories:  []string{"indoor", "statement"},
			Description: "Dramatic broad leaves. Fussy about drafts and moving house.",
			Light:       catalog.LightHigh,
			Difficulty:  "Hard",
		},
		{
			Name:        "Golden Pothos",
			Price:       14.25,
			Quantity:    30,
			Categories:  []string{"indoor", "hanging", "air purifying"},
			Description: "Fast-growing trailing vine, happy almost anywhere.",
			Light:       catalog.LightLow,
			Difficulty:  "Easy",
		},
		{
			Name:        "Echeveria Lola",
			Price:       8.75,
			Quantity:    40,
			Categories:  []string{"succulent", "outdoor"},
			Description: "Rosette succulent with pastel tones. Needs sharp drainage.",
			Light:       catalog.LightHigh,
			Difficulty:  "Medium",
		},
		{
			Name:        "Boston Fern",
			Price:       16.0,
			Quantity:    8,
			Categories:  []string{"indoor", "hanging"},
			Description: "Loves humidity; mist often or keep near the shower.",
			Light:       catalog.LightMedium,
			Difficulty:  "Medium",
		},
		{
			Name:        "Calathea Orbifolia",
			Price:       27.5,
			Quantity:    5,
			Categories:  []string{"indoor", "tropical"},
			Description: "Striped round leaves that fold up at night.",
			Light:       catalog.LightLow,
			Difficulty:  "Hard",
		},
	}

	for i := range plants {
		plants[i].ID = uuid.NewString()
	}
	return plants
}
