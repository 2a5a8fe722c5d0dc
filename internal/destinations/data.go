// README: Static Utah destination data loaded once at startup.
package destinations

var catalog = Catalog{
	NationalParks: []Destination{
		{
			Name:     "Zion National Park",
			Location: "Springdale, Southern Utah",
			Highlights: []string{
				"Angels Landing - Iconic chain-assisted climb with stunning views",
				"The Narrows - Hiking through the Virgin River canyon",
				"Observation Point - 8-mile round trip with panoramic views",
				"Emerald Pools - Family-friendly waterfall hikes",
				"Canyon Overlook Trail - Short hike with big rewards",
			},
			BestSeason:    "Spring (March-May) and Fall (September-November)",
			ActivityLevel: "Moderate to Strenuous",
			Tips: []string{
				"Shuttle system required in peak season",
				"Angels Landing requires permits - book in advance",
				"The Narrows requires special gear - rent in Springdale",
				"Start hikes early to avoid crowds and heat",
			},
		},
		{
			Name:     "Bryce Canyon National Park",
			Location: "Bryce Canyon City, Southern Utah",
			Highlights: []string{
				"Sunrise/Sunset Point - Spectacular hoodoo views",
				"Navajo Loop Trail - Descend among the hoodoos",
				"Queens Garden Trail - Gentle introduction to the canyon",
				"Rim Trail - Easy walk connecting viewpoints",
				"Stargazing - One of the darkest skies in North America",
			},
			BestSeason:    "May-September (snow possible in winter)",
			ActivityLevel: "Easy to Moderate",
			Tips: []string{
				"Elevation 8,000+ feet - acclimate before strenuous hikes",
				"Combine with Zion for a complete southern Utah trip",
				"Winter brings beautiful snow-covered hoodoos",
				"Night sky programs offered by rangers",
			},
		},
		{
			Name:     "Arches National Park",
			Location: "Moab, Eastern Utah",
			Highlights: []string{
				"Delicate Arch - Utah's iconic symbol, best at sunset",
				"Landscape Arch - One of the world's longest natural arches",
				"Devils Garden - Multiple arches on one trail",
				"The Windows Section - Easy access to impressive arches",
				"Fiery Furnace - Ranger-guided exploration required",
			},
			BestSeason:    "Spring and Fall (summer extremely hot)",
			ActivityLevel: "Easy to Moderate",
			Tips: []string{
				"Timed entry reservation required April-October",
				"Delicate Arch hike has no shade - bring water",
				"Sunset at Delicate Arch is magical but crowded",
				"Combine with Canyonlands, only 30 minutes away",
			},
		},
		{
			Name:     "Canyonlands National Park",
			Location: "Moab, Eastern Utah",
			Highlights: []string{
				"Island in the Sky - Most accessible district with grand views",
				"Mesa Arch - Famous sunrise photography spot",
				"Grand View Point - See for 100 miles",
				"The Needles - Colorful spires and backcountry hiking",
				"White Rim Road - Epic 4x4 adventure",
			},
			BestSeason:    "Spring and Fall",
			ActivityLevel: "Easy to Very Strenuous",
			Tips: []string{
				"Three separate districts - Island in the Sky most popular",
				"Backcountry permits required for overnight camping",
				"4x4 required for many remote areas",
				"Much less crowded than Arches",
			},
		},
		{
			Name:     "Capitol Reef National Park",
			Location: "Torrey, South-Central Utah",
			Highlights: []string{
				"Scenic Drive - 8-mile paved road through the park",
				"Hickman Bridge - Natural bridge hike",
				"Capitol Gorge - Petroglyphs and pioneer history",
				"Fruita Historic District - Pick your own fruit in season",
				"Cathedral Valley - Remote 4x4 area",
			},
			BestSeason:    "Year-round (hot summers)",
			ActivityLevel: "Easy to Moderate",
			Tips: []string{
				"Least crowded of the Mighty Five",
				"Free fruit picking in Fruita orchards (in season)",
				"Scenic Byway 12 connects to Bryce Canyon",
				"Great for a quieter national park experience",
			},
		},
	},
	StateParks: []Destination{
		{
			Name:          "Dead Horse Point State Park",
			Location:      "Near Moab",
			Highlights:    []string{"Spectacular Colorado River views", "Less crowded than nearby Arches"},
			BestSeason:    "Year-round",
			ActivityLevel: "Easy",
		},
		{
			Name:          "Goblin Valley State Park",
			Location:      "Hanksville area",
			Highlights:    []string{"Unique mushroom-shaped rock formations", "Explore freely among the goblins"},
			BestSeason:    "Spring and Fall",
			ActivityLevel: "Easy",
		},
		{
			Name:          "Snow Canyon State Park",
			Location:      "Near St. George",
			Highlights:    []string{"Red and white sandstone", "Lava tubes and caves"},
			BestSeason:    "Year-round (mild winters)",
			ActivityLevel: "Easy to Moderate",
		},
		{
			Name:          "Kodachrome Basin State Park",
			Location:      "Near Bryce Canyon",
			Highlights:    []string{"Colorful sedimentary pipes", "Less crowded alternative to Bryce"},
			BestSeason:    "Spring and Fall",
			ActivityLevel: "Easy to Moderate",
		},
	},
	Monuments: []Destination{
		{
			Name:     "Grand Staircase-Escalante National Monument",
			Location: "Southern Utah",
			Highlights: []string{
				"Slot canyons (Zebra, Spooky, Peek-a-boo)",
				"Calf Creek Falls",
				"Devils Garden",
				"Vast wilderness backcountry",
			},
			BestSeason:    "Spring and Fall",
			ActivityLevel: "Moderate to Strenuous",
		},
		{
			Name:          "Bears Ears National Monument",
			Location:      "Southeastern Utah",
			Highlights:    []string{"Ancient cliff dwellings", "Native American cultural sites", "Remote wilderness"},
			BestSeason:    "Spring and Fall",
			ActivityLevel: "Moderate",
		},
		{
			Name:          "Natural Bridges National Monument",
			Location:      "Southeastern Utah",
			Highlights:    []string{"Three natural bridges", "Dark sky preserve", "Less crowded"},
			BestSeason:    "Year-round",
			ActivityLevel: "Easy to Moderate",
		},
	},
	CitiesTowns: []Destination{
		{
			Name:       "Moab",
			Highlights: []string{"Gateway to Arches and Canyonlands", "Mountain biking mecca", "Colorado River activities"},
			Activities: []string{"Mountain biking", "River rafting", "Off-roading", "Rock climbing"},
		},
		{
			Name:       "Salt Lake City",
			Highlights: []string{"Temple Square", "Great Salt Lake", "Ski resorts nearby", "Vibrant food scene"},
			Activities: []string{"Skiing", "City exploration", "Hiking in the Wasatch"},
		},
		{
			Name:       "Park City",
			Highlights: []string{"World-class skiing", "Historic Main Street", "Sundance Film Festival"},
			Activities: []string{"Skiing", "Mountain biking", "Golf", "Festivals"},
		},
		{
			Name:       "St. George",
			Highlights: []string{"Gateway to Zion", "Warm winters", "Golf destination"},
			Activities: []string{"Golf", "Hiking", "Mountain biking"},
		},
		{
			Name:       "Springdale",
			Highlights: []string{"Gateway town to Zion", "Charming shops and restaurants"},
			Activities: []string{"Dining", "Shopping", "Zion access"},
		},
	},
	ScenicByways: []Destination{
		{
			Name:        "Scenic Byway 12",
			Description: "124 miles connecting Bryce Canyon to Capitol Reef",
			Highlights:  []string{"Voted one of America's most scenic drives", "Boulder Mountain views", "Escalante access"},
		},
		{
			Name:        "Highway 128 (Colorado River Scenic Byway)",
			Description: "44 miles along the Colorado River from Moab to I-70",
			Highlights:  []string{"River views", "Fisher Towers", "Castle Valley"},
		},
		{
			Name:        "Mirror Lake Scenic Byway",
			Description: "High Uinta Mountains route",
			Highlights:  []string{"Alpine lakes", "Mountain scenery", "Summer only"},
		},
	},
	SkiResorts: []Destination{
		{
			Name:       "Park City Mountain Resort",
			Highlights: []string{"Largest ski resort in US", "Connected to Canyons Village"},
			BestSeason: "December-April",
		},
		{
			Name:       "Deer Valley Resort",
			Highlights: []string{"Ski-only (no snowboards)", "Luxury experience", "Limited tickets"},
			BestSeason: "December-April",
		},
		{
			Name:       "Snowbird",
			Highlights: []string{"Deep powder", "Challenging terrain", "Long season"},
			BestSeason: "November-May",
		},
		{
			Name:       "Alta Ski Area",
			Highlights: []string{"Ski-only resort", "Incredible snow", "Classic ski experience"},
			BestSeason: "November-April",
		},
		{
			Name:       "Brighton Resort",
			Highlights: []string{"Night skiing", "Family-friendly", "Affordable"},
			BestSeason: "November-April",
		},
	},
}
