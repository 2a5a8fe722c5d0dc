// README: Prompt assembly for travel recommendations.
package llm

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert Utah travel guide with deep knowledge of:
- Utah's "Mighty Five" national parks (Zion, Bryce Canyon, Arches, Canyonlands, Capitol Reef)
- State parks and monuments
- Scenic byways and road trips
- Outdoor activities (hiking, skiing, mountain biking, rock climbing)
- Cultural attractions and local cuisine
- Best times to visit different areas
- Practical travel tips

Your recommendations should be:
1. Personalized to the user's interests and activity level
2. Realistic given the trip duration
3. Seasonally appropriate
4. Include specific locations, trails, or attractions
5. Provide practical tips (best times, what to bring, etc.)

Format your response with clear sections using markdown:
- **Recommended Destinations**
- **Suggested Itinerary**
- **Pro Tips**
- **What to Pack**
- **Current Weather** (if weather data is provided - place this at the end)`

// SystemPrompt returns the fixed guide instruction.
func SystemPrompt() string {
	return systemPrompt
}

// Preferences are the user inputs rendered into the prompt.
type Preferences struct {
	Interests     string
	Duration      string
	Season        string
	ActivityLevel string
}

// UserPrompt concatenates the traveler preferences, the destination context,
// and one section per tool result, preserving the order the tools ran in.
func UserPrompt(prefs Preferences, destinationContext string, tools []ToolSection) string {
	var b strings.Builder
	b.WriteString("Please create a personalized Utah travel recommendation based on:\n\n")
	b.WriteString("**Traveler Preferences:**\n")
	fmt.Fprintf(&b, "- Interests: %s\n", prefs.Interests)
	fmt.Fprintf(&b, "- Trip Duration: %s\n", prefs.Duration)
	fmt.Fprintf(&b, "- Preferred Season: %s\n", prefs.Season)
	fmt.Fprintf(&b, "- Activity Level: %s\n", prefs.ActivityLevel)

	if destinationContext != "" {
		b.WriteString("\n**Utah Destination Information:**\n")
		b.WriteString(destinationContext)
		b.WriteString("\n")
	}

	for _, t := range tools {
		fmt.Fprintf(&b, "\n**Current %s Information:**\n%s\n", titleCase(t.Name), t.Output)
	}

	b.WriteString(`
Please provide a detailed, personalized travel recommendation that matches these preferences.

IMPORTANT: If weather information is provided above, you MUST include it in a dedicated **Current Weather** section at the END of your response (after What to Pack).

Format the weather in a clean, human-readable way:
- Convert temperatures from Celsius to Fahrenheit (formula: F = C x 9/5 + 32)
- Convert Unix timestamps to readable times (e.g., "sunrise at 7:15 AM")
- Use natural language (e.g., "Currently 25°F with clear skies" instead of "Now: -3.89 metric")
- Only include relevant details: conditions, temperature, feels like, and wind if significant`)

	return b.String()
}

// ToolSection is one successfully gathered tool output ready for the prompt.
type ToolSection struct {
	Name   string
	Output string
}

// Fallback is returned when the model runtime is unreachable; it keeps the
// user-visible flow alive with a generic guide.
func Fallback(prefs Preferences) string {
	return fmt.Sprintf(`## Utah Travel Recommendation

*Note: AI-generated recommendation temporarily unavailable. Here's a general guide:*

### Based on Your Interests: %s

**The Mighty Five National Parks** are Utah's crown jewels:

1. **Zion National Park** - Stunning red cliffs, famous Angels Landing hike
2. **Bryce Canyon** - Otherworldly hoodoo formations
3. **Arches National Park** - Over 2,000 natural stone arches
4. **Canyonlands** - Vast wilderness, incredible viewpoints
5. **Capitol Reef** - Less crowded, scenic drives

### For a %s Trip in %s:

Consider focusing on 2-3 parks to avoid rushing. The parks in southern Utah
(Zion, Bryce, Capitol Reef) can be combined, while Arches and Canyonlands
are near Moab.

### Pro Tips:
- Book accommodations early, especially for popular parks
- Start hikes early to avoid crowds and heat
- Carry plenty of water - Utah is desert country
- Check road conditions in winter months

Visit utah.com for current conditions and detailed planning resources.
`, prefs.Interests, prefs.Duration, prefs.Season)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
