package catalog

// Light requirement values accepted by the API.
const (
	LightLow    = "Low"
	LightMedium = "Medium"
	LightHigh   = "High"
)

// Plant describes a catalog entry in transport-friendly form.
type Plant struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Categories  []string `json:"categories"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Light       string   `json:"light"`
	Difficulty  string   `json:"difficulty,omitempty"`
}

// InStock reports whether the plant can currently be purchased.
func (p Plant) InStock() bool {
	return p.Quantity > 0
}

// NewPlant is the payload for creating a catalog entry. The server assigns
// the ID and may attach a difficulty rating.
type NewPlant struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Categories  []string `json:"categories"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Light       string   `json:"light"`
}

// plantListEnvelope mirrors GET /api/plants.
type plantListEnvelope struct {
	Data *[]Plant `json:"data"`
}

// plantEnvelope mirrors single-item responses from create and purchase.
// Message carries optional server-provided success text.
type plantEnvelope struct {
	Data    *Plant `json:"data"`
	Message string `json:"message"`
}

// categoriesEnvelope mirrors GET /api/plants/meta/categories.
type categoriesEnvelope struct {
	Data *[]string `json:"data"`
}

// errorEnvelope mirrors non-2xx response bodies.
type errorEnvelope struct {
	Message string `json:"message"`
}
