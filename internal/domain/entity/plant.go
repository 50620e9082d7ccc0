// Package entity contains the core business objects of the project.
package entity

// PlantForm identifies the purchasable form of a plant.
type PlantForm string

const (
	FormFresh      PlantForm = "fresh"
	FormDried      PlantForm = "dried"
	FormSupplement PlantForm = "supplement"
)

// Valid reports whether the form is one of the known purchasable forms.
func (f PlantForm) Valid() bool {
	switch f {
	case FormFresh, FormDried, FormSupplement:
		return true
	}

	return false
}

// Availability describes how easy a plant is to source.
type Availability string

const (
	AvailabilityCommon   Availability = "common"
	AvailabilityModerate Availability = "moderate"
	AvailabilityRare     Availability = "rare"
)

// Difficulty describes how hard a plant is to cultivate.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyModerate  Difficulty = "moderate"
	DifficultyDifficult Difficulty = "difficult"
)

// PlantCost holds the free-text price range per purchasable form, e.g. "$8-15/lb".
type PlantCost struct {
	Fresh      string `json:"fresh"`
	Dried      string `json:"dried"`
	Supplement string `json:"supplement"`
}

// For returns the price-range string for the given form.
func (c PlantCost) For(form PlantForm) string {
	switch form {
	case FormFresh:
		return c.Fresh
	case FormDried:
		return c.Dried
	case FormSupplement:
		return c.Supplement
	}

	return ""
}

// Plant is a read-only catalog record. Instances are shared and must not be
// mutated after load.
type Plant struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	ScientificName string       `json:"scientific_name"`
	Image          string       `json:"image"`
	Description    string       `json:"description"`
	Benefits       []string     `json:"benefits"`
	Uses           []string     `json:"uses"`
	Preparation    []string     `json:"preparation"`
	Precautions    []string     `json:"precautions"`
	Cost           PlantCost    `json:"cost"`
	Availability   Availability `json:"availability"`
	Difficulty     Difficulty   `json:"difficulty"`
	Categories     []string     `json:"categories"`
	Seasons        []string     `json:"seasons"`
	Regions        []string     `json:"regions"`
}
