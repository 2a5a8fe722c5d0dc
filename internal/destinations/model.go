// README: Destination catalog types; data is a process-wide constant, never mutated.
package destinations

// Destination describes one point of interest. Not every field applies to
// every category: byways carry a Description, towns carry Activities.
type Destination struct {
	Name          string   `json:"name"`
	Location      string   `json:"location,omitempty"`
	Description   string   `json:"description,omitempty"`
	Highlights    []string `json:"highlights,omitempty"`
	BestSeason    string   `json:"best_season,omitempty"`
	ActivityLevel string   `json:"activity_level,omitempty"`
	Activities    []string `json:"activities,omitempty"`
	Tips          []string `json:"tips,omitempty"`
}

// Catalog groups destinations by category. Slices keep a stable order so the
// rendered prompt context and the /api/destinations payload are deterministic.
type Catalog struct {
	NationalParks []Destination `json:"national_parks"`
	StateParks    []Destination `json:"state_parks"`
	Monuments     []Destination `json:"monuments"`
	CitiesTowns   []Destination `json:"cities_towns"`
	ScenicByways  []Destination `json:"scenic_byways"`
	SkiResorts    []Destination `json:"ski_resorts"`
}

// Match is a ByInterest result: a destination plus the category it came from.
type Match struct {
	Category    string      `json:"category"`
	Destination Destination `json:"destination"`
}
