package stats

import (
	"fmt"
	"slices"
	"strings"
)

// Category is a VP scoring category an action label can be filed under.
type Category int

const (
	CategoryRound Category = iota
	CategoryBoosters
	CategoryEndgame
	CategoryTechs
	CategoryAdvTechs
	CategoryFederations
	CategoryQICActions
	CategoryTracks
	CategoryResources
	CategoryLeech
)

// Categories lists every category in report column order.
var Categories = []Category{
	CategoryRound,
	CategoryBoosters,
	CategoryEndgame,
	CategoryTechs,
	CategoryAdvTechs,
	CategoryFederations,
	CategoryQICActions,
	CategoryTracks,
	CategoryResources,
	CategoryLeech,
}

// Header returns the report column title for the category.
func (c Category) Header() string {
	switch c {
	case CategoryRound:
		return "Round"
	case CategoryBoosters:
		return "Boosters"
	case CategoryEndgame:
		return "Endgame"
	case CategoryTechs:
		return "Techs"
	case CategoryAdvTechs:
		return "Adv. Techs"
	case CategoryFederations:
		return "Feds"
	case CategoryQICActions:
		return "QIC Actions"
	case CategoryTracks:
		return "Tracks"
	case CategoryResources:
		return "Resources"
	case CategoryLeech:
		return "Leech"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

func (c Category) String() string {
	return strings.ToLower(c.Header())
}

// TechTracks are the action labels for advancing on a research track.
var TechTracks = []string{"terra", "nav", "int", "gaia", "eco", "sci"}

type categoryRule struct {
	match    func(action string) bool
	category Category
}

func contains(sub string) func(string) bool {
	return func(action string) bool { return strings.Contains(action, sub) }
}

func equals(want string) func(string) bool {
	return func(action string) bool { return action == want }
}

// categoryRules is evaluated top to bottom; the first match wins. Order
// matters: "adv tech" must land in techs, "qic booster" in boosters.
var categoryRules = []categoryRule{
	{contains("round"), CategoryRound},
	{contains("booster"), CategoryBoosters},
	{contains("final"), CategoryEndgame},
	{contains("tech"), CategoryTechs},
	{contains("adv"), CategoryAdvTechs},
	{equals("federation"), CategoryFederations},
	{contains("qic"), CategoryQICActions},
	{func(action string) bool { return slices.Contains(TechTracks, action) }, CategoryTracks},
	{equals("spend"), CategoryResources},
	{equals("charge"), CategoryLeech},
}

// Categorize files an action label under its VP category. ok is false for
// actions no category claims, such as "bid" or "build".
func Categorize(action string) (Category, bool) {
	for _, rule := range categoryRules {
		if rule.match(action) {
			return rule.category, true
		}
	}
	return 0, false
}
