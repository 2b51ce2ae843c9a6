package model

// Bean is an immutable catalog record for a retail coffee.
type Bean struct {
	ID             string        `json:"id" validate:"required"`
	Name           string        `json:"name" validate:"required"`
	Roaster        string        `json:"roaster"`
	Origin         string        `json:"origin"`
	Region         string        `json:"region,omitempty"`
	Process        ProcessMethod `json:"process"`
	RoastLevel     RoastLevel    `json:"roastLevel" validate:"required"`
	FlavorNotes    []string      `json:"flavorNotes"`
	TasteProfile   TasteProfile  `json:"tasteProfile"`
	Price          float64       `json:"price" validate:"gte=0"`
	WeightGrams    int           `json:"weight"`
	BrewMethods    []BrewMethod  `json:"brewMethods"`
	RecommendedFor []string      `json:"recommendedFor,omitempty"`
	InStock        bool          `json:"inStock"`
	Rating         float64       `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount    int           `json:"reviewCount" validate:"gte=0"`
}

// Supports reports whether the bean lists the brew method.
func (b Bean) Supports(method BrewMethod) bool {
	for _, m := range b.BrewMethods {
		if m == method {
			return true
		}
	}
	return false
}
