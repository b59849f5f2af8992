package sports

// builtinProfiles is the static sport table loaded at process start.
var builtinProfiles = []SportProfile{
	{
		Key:         "soccer",
		DisplayName: "Soccer",
		Terms:       Terminology{Match: "match", Participant: "team", ScoringUnit: "goal", HasDraw: true},
		WinBounds:   Bounds{Min: 10, Max: 85},
		DrawBounds:  Bounds{Min: 8, Max: 45},
		KeyFactors: []string{
			"recent form over the last five matches",
			"head-to-head record between the two teams",
			"home advantage and travel distance",
			"injuries and suspensions to key players",
			"league position and motivation (title race, relegation battle)",
			"fixture congestion and squad rotation",
		},
		HeavyFavoriteThreshold: 70,
		CloseMatchSpread:       10,
		Upset:                  UpsetBounds{MaxForHeavyFavorite: 18, MinForCloseMatch: 25},
		Value:                  ValueThresholds{Low: 8, Medium: 18, High: 30},
	},
	{
		Key:         "basketball",
		DisplayName: "Basketball",
		Terms:       Terminology{Match: "game", Participant: "team", ScoringUnit: "point", HasDraw: false},
		WinBounds:   Bounds{Min: 15, Max: 90},
		KeyFactors: []string{
			"offensive and defensive ratings this season",
			"pace and three-point shooting variance",
			"rest days and back-to-back scheduling",
			"star player availability and minutes load",
			"home court record",
		},
		HeavyFavoriteThreshold: 75,
		CloseMatchSpread:       12,
		Upset:                  UpsetBounds{MaxForHeavyFavorite: 22, MinForCloseMatch: 30},
		Value:                  ValueThresholds{Low: 10, Medium: 20, High: 32},
	},
	{
		Key:         "tennis",
		DisplayName: "Tennis",
		Terms:       Terminology{Match: "match", Participant: "player", ScoringUnit: "set", HasDraw: false},
		WinBounds:   Bounds{Min: 8, Max: 92},
		KeyFactors: []string{
			"surface-specific win rate",
			"head-to-head record and most recent meeting",
			"current ranking and seeding",
			"form over the last three tournaments",
			"physical condition and matches played this week",
		},
		HeavyFavoriteThreshold: 78,
		CloseMatchSpread:       10,
		Upset:                  UpsetBounds{MaxForHeavyFavorite: 20, MinForCloseMatch: 35},
		Value:                  ValueThresholds{Low: 10, Medium: 22, High: 35},
	},
	{
		Key:         "hockey",
		DisplayName: "Ice Hockey",
		Terms:       Terminology{Match: "game", Participant: "team", ScoringUnit: "goal", HasDraw: true},
		WinBounds:   Bounds{Min: 15, Max: 75},
		DrawBounds:  Bounds{Min: 10, Max: 35},
		KeyFactors: []string{
			"goaltender form and confirmed starter",
			"special teams efficiency (power play, penalty kill)",
			"recent form over the last ten games",
			"travel schedule and back-to-backs",
			"regulation-time draw frequency in this league",
		},
		HeavyFavoriteThreshold: 65,
		CloseMatchSpread:       8,
		Upset:                  UpsetBounds{MaxForHeavyFavorite: 25, MinForCloseMatch: 24},
		Value:                  ValueThresholds{Low: 8, Medium: 16, High: 28},
	},
	{
		Key:         "baseball",
		DisplayName: "Baseball",
		Terms:       Terminology{Match: "game", Participant: "team", ScoringUnit: "run", HasDraw: false},
		WinBounds:   Bounds{Min: 25, Max: 75},
		KeyFactors: []string{
			"starting pitcher matchup and recent outings",
			"bullpen usage over the last three days",
			"lineup splits against left/right-handed pitching",
			"ballpark factors and weather",
			"season series between the two teams",
		},
		HeavyFavoriteThreshold: 65,
		CloseMatchSpread:       8,
		Upset:                  UpsetBounds{MaxForHeavyFavorite: 35, MinForCloseMatch: 35},
		Value:                  ValueThresholds{Low: 6, Medium: 14, High: 25},
	},
	{
		Key:         "american_football",
		DisplayName: "American Football",
		Terms:       Terminology{Match: "game", Participant: "team", ScoringUnit: "point", HasDraw: false},
		WinBounds:   Bounds{Min: 12, Max: 88},
		KeyFactors: []string{
			"quarterback status and offensive line health",
			"turnover differential this season",
			"rushing versus passing matchup strengths",
			"weather conditions for outdoor venues",
			"divisional familiarity and coaching record",
		},
		HeavyFavoriteThreshold: 72,
		CloseMatchSpread:       10,
		Upset:                  UpsetBounds{MaxForHeavyFavorite: 24, MinForCloseMatch: 30},
		Value:                  ValueThresholds{Low: 8, Medium: 18, High: 30},
	},
	{
		Key:         "mma",
		DisplayName: "Mixed Martial Arts",
		Terms:       Terminology{Match: "fight", Participant: "fighter", ScoringUnit: "round", HasDraw: false},
		WinBounds:   Bounds{Min: 10, Max: 88},
		KeyFactors: []string{
			"striking versus grappling style matchup",
			"reach and weight-cut history",
			"finish rate and durability",
			"quality of recent opposition",
			"age and layoff since last fight",
		},
		HeavyFavoriteThreshold: 75,
		CloseMatchSpread:       12,
		Upset:                  UpsetBounds{MaxForHeavyFavorite: 25, MinForCloseMatch: 32},
		Value:                  ValueThresholds{Low: 10, Medium: 20, High: 34},
	},
	{
		Key:         "cricket",
		DisplayName: "Cricket",
		Terms:       Terminology{Match: "match", Participant: "team", ScoringUnit: "run", HasDraw: true},
		WinBounds:   Bounds{Min: 15, Max: 80},
		DrawBounds:  Bounds{Min: 5, Max: 40},
		KeyFactors: []string{
			"pitch conditions and expected deterioration",
			"toss importance at this venue",
			"batting depth against spin and pace",
			"recent form in this format",
			"weather interruptions and draw likelihood",
		},
		HeavyFavoriteThreshold: 68,
		CloseMatchSpread:       10,
		Upset:                  UpsetBounds{MaxForHeavyFavorite: 22, MinForCloseMatch: 24},
		Value:                  ValueThresholds{Low: 8, Medium: 16, High: 28},
	},
}

// aliases maps common sport names and league shorthands onto canonical keys.
var aliases = map[string]string{
	"football":           "soccer",
	"futbol":             "soccer",
	"epl":                "soccer",
	"la_liga":            "soccer",
	"nba":                "basketball",
	"ncaab":              "basketball",
	"atp":                "tennis",
	"wta":                "tennis",
	"ice_hockey":         "hockey",
	"nhl":                "hockey",
	"mlb":                "baseball",
	"nfl":                "american_football",
	"gridiron":           "american_football",
	"ufc":                "mma",
	"mixed_martial_arts": "mma",
	"t20":                "cricket",
	"test_cricket":       "cricket",
}
