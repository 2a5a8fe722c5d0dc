// README: Catalog accessors and prompt-context rendering.
package destinations

import (
	"fmt"
	"strings"
)

// All returns the full catalog.
func All() Catalog {
	return catalog
}

// Context renders the catalog as markdown for use as LLM prompt context.
// Parks keep their top three highlights; the remaining categories are
// compressed to one line each to keep the prompt small.
func Context() string {
	var b strings.Builder

	b.WriteString("## Utah's Mighty Five National Parks\n\n")
	for _, p := range catalog.NationalParks {
		fmt.Fprintf(&b, "### %s\n", p.Name)
		fmt.Fprintf(&b, "Location: %s\n", p.Location)
		fmt.Fprintf(&b, "Best Season: %s\n", p.BestSeason)
		fmt.Fprintf(&b, "Activity Level: %s\n", p.ActivityLevel)
		b.WriteString("Highlights:\n")
		for _, h := range topN(p.Highlights, 3) {
			fmt.Fprintf(&b, "  - %s\n", h)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n## Notable State Parks\n\n")
	for _, p := range catalog.StateParks {
		fmt.Fprintf(&b, "- **%s** (%s): %s\n", p.Name, p.Location, strings.Join(topN(p.Highlights, 2), ", "))
	}

	b.WriteString("\n## National Monuments\n\n")
	for _, m := range catalog.Monuments {
		fmt.Fprintf(&b, "- **%s** (%s): %s\n", m.Name, m.Location, strings.Join(topN(m.Highlights, 2), ", "))
	}

	b.WriteString("\n## Gateway Cities\n\n")
	for _, c := range catalog.CitiesTowns {
		fmt.Fprintf(&b, "- **%s**: %s\n", c.Name, strings.Join(topN(c.Highlights, 2), ", "))
	}

	b.WriteString("\n## Scenic Drives\n\n")
	for _, s := range catalog.ScenicByways {
		fmt.Fprintf(&b, "- **%s**: %s\n", s.Name, s.Description)
	}

	b.WriteString("\n## Ski Resorts\n\n")
	for _, r := range catalog.SkiResorts {
		fmt.Fprintf(&b, "- **%s**: %s\n", r.Name, strings.Join(topN(r.Highlights, 2), ", "))
	}

	return b.String()
}

// interestCategories maps an interest keyword to the catalog categories worth
// surfacing for it. Unknown interests fall back to the whole catalog.
var interestCategories = map[string][]string{
	"hiking":      {"national_parks", "state_parks", "monuments"},
	"skiing":      {"ski_resorts"},
	"photography": {"national_parks", "monuments", "scenic_byways"},
	"family":      {"state_parks", "cities_towns"},
	"adventure":   {"national_parks", "monuments"},
	"relaxation":  {"cities_towns", "ski_resorts"},
	"history":     {"monuments", "cities_towns"},
	"stargazing":  {"national_parks", "monuments"},
}

var allCategories = []string{"national_parks", "state_parks", "monuments", "cities_towns", "scenic_byways", "ski_resorts"}

// ByInterest returns destinations relevant to a single interest keyword.
func ByInterest(interest string) []Match {
	cats, ok := interestCategories[strings.ToLower(strings.TrimSpace(interest))]
	if !ok {
		cats = allCategories
	}

	var out []Match
	for _, cat := range cats {
		for _, d := range byCategory(cat) {
			out = append(out, Match{Category: cat, Destination: d})
		}
	}
	return out
}

func byCategory(cat string) []Destination {
	switch cat {
	case "national_parks":
		return catalog.NationalParks
	case "state_parks":
		return catalog.StateParks
	case "monuments":
		return catalog.Monuments
	case "cities_towns":
		return catalog.CitiesTowns
	case "scenic_byways":
		return catalog.ScenicByways
	case "ski_resorts":
		return catalog.SkiResorts
	}
	return nil
}

func topN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
