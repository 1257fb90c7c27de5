package models

import "fmt"

// Resource is one of the seven kinds of game resource a log token can change.
type Resource int

const (
	ResourceUnknown Resource = iota
	ResourceCoin
	ResourceOre
	ResourceKnowledge
	ResourceQIC
	ResourcePower
	ResourcePowerToken
	ResourceVP
)

// Resources lists every known resource in declaration order.
var Resources = []Resource{
	ResourceCoin,
	ResourceOre,
	ResourceKnowledge,
	ResourceQIC,
	ResourcePower,
	ResourcePowerToken,
	ResourceVP,
}

func (r Resource) String() string {
	switch r {
	case ResourceCoin:
		return "coin"
	case ResourceOre:
		return "ore"
	case ResourceKnowledge:
		return "knowledge"
	case ResourceQIC:
		return "qic"
	case ResourcePower:
		return "power"
	case ResourcePowerToken:
		return "power-token"
	case ResourceVP:
		return "vp"
	default:
		return fmt.Sprintf("unknown(%d)", int(r))
	}
}

// Direction tags a StateChange as a gain or a loss.
type Direction int

const (
	Gain Direction = iota
	Loss
)

func (d Direction) String() string {
	if d == Loss {
		return "loss"
	}
	return "gain"
}

// StateChange is one decoded resource delta. Quantity is never negative;
// the sign lives in Direction.
type StateChange struct {
	Direction Direction `yaml:"direction" json:"direction"`
	Resource  Resource  `yaml:"resource" json:"resource"`
	Quantity  int       `yaml:"quantity" json:"quantity"`
}

// Signed returns the quantity with the direction applied.
func (c StateChange) Signed() int {
	if c.Direction == Loss {
		return -c.Quantity
	}
	return c.Quantity
}

// Event is one action label together with the changes it caused.
// A nil entry in Changes marks an empty token slot.
type Event struct {
	Action  string         `yaml:"action" json:"action"`
	Changes []*StateChange `yaml:"changes" json:"changes"`
}

// LogItem is one row of the game log, in chronological order.
type LogItem struct {
	Text    string  `yaml:"text" json:"text"`
	Faction string  `yaml:"faction,omitempty" json:"faction,omitempty"` // empty when no faction was found
	Events  []Event `yaml:"events,omitempty" json:"events,omitempty"`   // nil for narrative rows
}

// HasEvents reports whether the row carried state-change columns.
func (i LogItem) HasEvents() bool {
	return i.Events != nil
}

// GameLog is a fully assembled log. Factions holds each distinct faction
// once, in the order it first appeared.
type GameLog struct {
	Factions []string  `yaml:"factions" json:"factions"`
	Items    []LogItem `yaml:"items" json:"items"`
}

// HasFaction reports whether the faction took part in the game.
func (l *GameLog) HasFaction(faction string) bool {
	for _, f := range l.Factions {
		if f == faction {
			return true
		}
	}
	return false
}

// Row is one raw table row as produced by markup extraction. Each cell
// holds the text fragments found inside it: the first cell carries the row
// text, the second the action labels and the third the token strings.
type Row struct {
	Cells [][]string `yaml:"cells" json:"cells"`
}

// Game is one scraped game. Rows arrive most-recent-first.
type Game struct {
	Name  string `yaml:"name" json:"name"`
	Ended bool   `yaml:"ended" json:"ended"`
	Rows  []Row  `yaml:"rows" json:"rows"`
}

// GameFile is the on-disk shape of an input file.
type GameFile struct {
	Games []Game `yaml:"games" json:"games"`
}
