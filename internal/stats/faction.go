package stats

import "github.com/tatianab/gaia-stats/internal/models"

// BaselineVP is the score every faction starts a game with.
const BaselineVP = 10

const (
	actionCharge = "charge"
	actionBid    = "bid"
)

// VPRecord tracks total VP and the per-category VP subtotals.
// Categories do not cover every VP-affecting action, so the subtotals need
// not add up to Total.
type VPRecord struct {
	Total        int `yaml:"total" json:"total"`
	RoundScoring int `yaml:"round" json:"round"`
	Boosters     int `yaml:"boosters" json:"boosters"`
	Endgame      int `yaml:"endgame" json:"endgame"`
	Techs        int `yaml:"techs" json:"techs"`
	AdvTechs     int `yaml:"adv_techs" json:"adv_techs"`
	Federations  int `yaml:"federations" json:"federations"`
	QICActions   int `yaml:"qic_actions" json:"qic_actions"`
	Tracks       int `yaml:"tracks" json:"tracks"`
	Resources    int `yaml:"resources" json:"resources"`
	LeechLoss    int `yaml:"leech" json:"leech"`
}

func (v *VPRecord) field(c Category) *int {
	switch c {
	case CategoryRound:
		return &v.RoundScoring
	case CategoryBoosters:
		return &v.Boosters
	case CategoryEndgame:
		return &v.Endgame
	case CategoryTechs:
		return &v.Techs
	case CategoryAdvTechs:
		return &v.AdvTechs
	case CategoryFederations:
		return &v.Federations
	case CategoryQICActions:
		return &v.QICActions
	case CategoryTracks:
		return &v.Tracks
	case CategoryResources:
		return &v.Resources
	case CategoryLeech:
		return &v.LeechLoss
	}
	return nil
}

// Get returns the subtotal for a category.
func (v VPRecord) Get(c Category) int {
	if p := v.field(c); p != nil {
		return *p
	}
	return 0
}

// Apply adds one VP change to the total and to the category of action.
// Leech always counts as a loss, whatever the change direction.
func (v *VPRecord) Apply(action string, c models.StateChange) {
	delta := c.Signed()
	if cat, ok := Categorize(action); ok {
		if cat == CategoryLeech {
			v.LeechLoss -= c.Quantity
		} else {
			*v.field(cat) += delta
		}
	}
	v.Total += delta
}

// ResourceRecord tracks non-VP resources gained. Losses are not tracked.
type ResourceRecord struct {
	Power       int `yaml:"power" json:"power"`
	Leech       int `yaml:"leech" json:"leech"`
	Coins       int `yaml:"coins" json:"coins"`
	Ore         int `yaml:"ore" json:"ore"`
	Knowledge   int `yaml:"knowledge" json:"knowledge"`
	QIC         int `yaml:"qic" json:"qic"`
	PowerTokens int `yaml:"power_tokens" json:"power_tokens"`
}

// Apply records a non-VP gain. Anything gained through a "charge" action
// is also counted as leech.
func (r *ResourceRecord) Apply(action string, c models.StateChange) {
	if c.Direction == models.Loss {
		return
	}
	if action == actionCharge {
		r.Leech += c.Quantity
	}

	switch c.Resource {
	case models.ResourcePower:
		r.Power += c.Quantity
	case models.ResourceCoin:
		r.Coins += c.Quantity
	case models.ResourceOre:
		r.Ore += c.Quantity
	case models.ResourceKnowledge:
		r.Knowledge += c.Quantity
	case models.ResourceQIC:
		r.QIC += c.Quantity
	case models.ResourcePowerToken:
		r.PowerTokens += c.Quantity
	}
}

// WinRecord counts match outcomes.
type WinRecord struct {
	Matches int `yaml:"matches" json:"matches"`
	Wins    int `yaml:"wins" json:"wins"`
	Losses  int `yaml:"losses" json:"losses"`
}

// Record adds one finished match.
func (w *WinRecord) Record(win bool) {
	w.Matches++
	if win {
		w.Wins++
	} else {
		w.Losses++
	}
}

// WinRate returns the percentage of matches won, 0 when none were played.
func (w WinRecord) WinRate() float64 {
	if w.Matches == 0 {
		return 0
	}
	return float64(w.Wins) / float64(w.Matches) * 100
}

// FactionStats holds everything tracked for one faction.
type FactionStats struct {
	Faction   string
	VP        VPRecord
	Resources ResourceRecord
	Record    WinRecord
}

// NewFactionStats creates stats starting at the baseline score.
func NewFactionStats(faction string) *FactionStats {
	return &FactionStats{
		Faction: faction,
		VP:      VPRecord{Total: BaselineVP},
	}
}

// Augment applies every change of one event. Absent changes are skipped.
func (f *FactionStats) Augment(ev models.Event) {
	for _, c := range ev.Changes {
		if c == nil {
			continue
		}
		switch c.Resource {
		case models.ResourceVP:
			f.VP.Apply(ev.Action, *c)
		case models.ResourceUnknown:
		default:
			f.Resources.Apply(ev.Action, *c)
		}
	}
}
