// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package rules

import "regexp"

// Axis identifies one semantic extraction axis.
type Axis string

// The four semantic axes.
const (
	AxisTheme    Axis = "theme"
	AxisSetting  Axis = "setting"
	AxisMood     Axis = "mood"
	AxisAudience Axis = "audience"
)

// AxisWeights fix the relative contribution of each axis to semantic
// similarity. Theme is the dominant signal.
var AxisWeights = map[Axis]float64{
	AxisTheme:    1.0,
	AxisSetting:  0.8,
	AxisMood:     0.9,
	AxisAudience: 0.7,
}

// Semantic analyzer constants.
const (
	// SemanticFloor is the minimum combined score that emits a connection.
	SemanticFloor = 0.3
	// SemanticBaseConfidence is the starting confidence for semantic matches.
	SemanticBaseConfidence = 0.7
	// SemanticConfidenceCap bounds semantic confidence.
	SemanticConfidenceCap = 0.95
	// SemanticTopK caps semantic connections per entity.
	SemanticTopK = 20
	// SemanticStrongThemeBoost applies when a shared theme is a strong theme.
	SemanticStrongThemeBoost = 1.2
	// SemanticTwoAxisBoost applies when matches span two axes.
	SemanticTwoAxisBoost = 1.1
	// SemanticThreeAxisBoost applies when matches span three or more axes.
	SemanticThreeAxisBoost = 1.3
)

// ThemePatterns are the keyword families for the theme axis, tested against
// the entity's combined content string (overview, tagline, title, genres,
// keywords, lowercased).
var ThemePatterns = map[string]*regexp.Regexp{
	"romance":      regexp.MustCompile(`\b(love|romance|romantic|relationship|wedding|affair|soulmate)\b`),
	"horror":       regexp.MustCompile(`\b(horror|terror|haunt(ed|ing)?|demon|ghost|nightmare|slasher|possess(ed|ion))\b`),
	"mystery":      regexp.MustCompile(`\b(mystery|detective|investigat(e|ion|or)|clue|whodunit|conspiracy)\b`),
	"suspense":     regexp.MustCompile(`\b(suspense|tension|cat.and.mouse|hostage|stalk(er|ing))\b`),
	"crime":        regexp.MustCompile(`\b(crime|criminal|heist|mafia|gangster|murder|robbery|cartel)\b`),
	"war":          regexp.MustCompile(`\b(war|battle|soldier|army|combat|battlefield|regiment)\b`),
	"revenge":      regexp.MustCompile(`\b(revenge|vengeance|retribution|avenge)\b`),
	"family":       regexp.MustCompile(`\b(family|father|mother|son|daughter|sibling|parenthood)\b`),
	"coming_of_age": regexp.MustCompile(`\b(coming.of.age|adolescen(t|ce)|teenager|growing up|first love)\b`),
	"survival":     regexp.MustCompile(`\b(surviv(e|al|or)|stranded|wilderness|outbreak|apocalypse)\b`),
	"science":      regexp.MustCompile(`\b(scien(ce|tist)|experiment|laboratory|technology|artificial intelligence|robot)\b`),
	"future":       regexp.MustCompile(`\b(future|dystopia(n)?|cyberpunk|space|galaxy|interstellar|time travel)\b`),
	"fantasy":      regexp.MustCompile(`\b(magic(al)?|wizard|dragon|kingdom|quest|prophecy|sorcer(er|y))\b`),
	"supernatural": regexp.MustCompile(`\b(supernatural|paranormal|vampire|werewolf|witch|curse(d)?)\b`),
	"sports":       regexp.MustCompile(`\b(sport|boxing|football|baseball|basketball|champion(ship)?|underdog)\b`),
	"comedy":       regexp.MustCompile(`\b(comedy|hilarious|funny|satir(e|ical)|parody|sitcom)\b`),
	"musical":      regexp.MustCompile(`\b(musical|sing(er|ing)?|band|concert|orchestra|broadway)\b`),
	"western":      regexp.MustCompile(`\b(western|cowboy|outlaw|frontier|gunslinger|sheriff)\b`),
	"history":      regexp.MustCompile(`\b(histor(y|ical)|biopic|based on (a )?true|century|empire|dynasty)\b`),
	"redemption":   regexp.MustCompile(`\b(redemption|redeem|second chance|atonement|forgiveness)\b`),
	"heist":        regexp.MustCompile(`\b(heist|con artist|grifter|score|vault)\b`),
	"espionage":    regexp.MustCompile(`\b(spy|espionage|agent|undercover|intelligence agency|double agent)\b`),
}

// SettingPatterns are the keyword families for the setting axis.
var SettingPatterns = map[string]*regexp.Regexp{
	"urban":      regexp.MustCompile(`\b(city|urban|metropolis|downtown|street(s)?|skyscraper)\b`),
	"rural":      regexp.MustCompile(`\b(farm|village|countryside|rural|small town|ranch)\b`),
	"school":     regexp.MustCompile(`\b(school|college|university|campus|classroom|student)\b`),
	"military":   regexp.MustCompile(`\b(military|base|navy|marine(s)?|air force|barracks)\b`),
	"space":      regexp.MustCompile(`\b(space(ship)?|station|planet|orbit|astronaut|colony)\b`),
	"ocean":      regexp.MustCompile(`\b(ocean|sea|ship|submarine|island|sailor)\b`),
	"wilderness": regexp.MustCompile(`\b(forest|jungle|mountain(s)?|desert|arctic|wilderness)\b`),
	"hospital":   regexp.MustCompile(`\b(hospital|clinic|asylum|ward|surgeon|medical)\b`),
	"prison":     regexp.MustCompile(`\b(prison|jail|penitentiary|inmate|cell block)\b`),
	"suburbia":   regexp.MustCompile(`\b(suburb(s|ia|an)?|neighborhood|cul.de.sac)\b`),
	"period":     regexp.MustCompile(`\b(victorian|medieval|ancient|renaissance|roaring twenties|wild west)\b`),
	"workplace":  regexp.MustCompile(`\b(office|corporation|newsroom|firm|wall street|startup)\b`),
}

// MoodPatterns are the keyword families for the mood axis.
var MoodPatterns = map[string]*regexp.Regexp{
	"dark":        regexp.MustCompile(`\b(dark|grim|bleak|disturbing|sinister|brutal|noir)\b`),
	"light":       regexp.MustCompile(`\b(heartwarming|charming|delightful|feel.good|whimsical|uplifting)\b`),
	"intense":     regexp.MustCompile(`\b(intense|gripping|relentless|explosive|adrenaline|edge.of.your.seat)\b`),
	"melancholic": regexp.MustCompile(`\b(melanchol(y|ic)|bittersweet|poignant|tragic|mourning|grief)\b`),
	"tense":       regexp.MustCompile(`\b(tense|claustrophobic|paranoi(a|d)|dread|unsettling)\b`),
	"epic":        regexp.MustCompile(`\b(epic|sweeping|grand|monumental|saga|spectacle)\b`),
	"quirky":      regexp.MustCompile(`\b(quirky|offbeat|eccentric|absurd|deadpan|surreal)\b`),
	"romanticized": regexp.MustCompile(`\b(dreamy|lush|sensual|passionate|tender)\b`),
}

// AudiencePatterns are the keyword families for the audience axis.
var AudiencePatterns = map[string]*regexp.Regexp{
	"family_friendly": regexp.MustCompile(`\b(family.friendly|all ages|kids|children|wholesome|animated adventure)\b`),
	"mature":          regexp.MustCompile(`\b(mature|graphic|explicit|violen(t|ce)|adult(s)? only|unrated)\b`),
	"art_house":       regexp.MustCompile(`\b(art.house|arthouse|experimental|avant.garde|minimalist|meditative|palme)\b`),
	"mainstream":      regexp.MustCompile(`\b(blockbuster|box office|franchise|crowd.pleaser|summer hit)\b`),
	"cult":            regexp.MustCompile(`\b(cult (classic|following|favorite)|midnight movie|b.movie|grindhouse)\b`),
	"teen":            regexp.MustCompile(`\b(teen(s|age|ager)?|high school|prom|yearbook)\b`),
}

// AxisPatterns groups the pattern families by axis for iteration.
var AxisPatterns = map[Axis]map[string]*regexp.Regexp{
	AxisTheme:    ThemePatterns,
	AxisSetting:  SettingPatterns,
	AxisMood:     MoodPatterns,
	AxisAudience: AudiencePatterns,
}

// Title-derived heuristics.
var (
	// SequelTitlePattern marks titles that imply franchise/mainstream signals
	// (numbered sequels, "Part"/"Chapter" entries).
	SequelTitlePattern = regexp.MustCompile(`(?i)\b(part|chapter|vol(ume)?\.?)\b|\b([2-9]|i{2,3}|iv|v|vi{1,3}|ix|x)$|\d+$`)

	// DarkTitlePattern marks titles whose wording implies a dark mood.
	DarkTitlePattern = regexp.MustCompile(`(?i)\b(dark(ness)?|dead|death|blood|night(mare)?|evil|hell|shadow)\b`)
)
