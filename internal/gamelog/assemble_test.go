package gamelog

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tatianab/gaia-stats/internal/models"
)

func eventRow(text string, actions, tokens []string) models.Row {
	return models.Row{Cells: [][]string{{text}, actions, tokens}}
}

func textRow(text string) models.Row {
	return models.Row{Cells: [][]string{{text}}}
}

func TestFaction(t *testing.T) {
	x := NewExtractor(nil)

	tests := []struct {
		text      string
		want      string
		ambiguous bool
	}{
		{"terrans build m", "terrans", false},
		{"Round 2", "", false},
		{"Terrans pass", "", false}, // case-sensitive
		{"itars charge from xenos", "itars", true},
		{"hadsch-hallas up eco", "hadsch-hallas", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := x.Faction(tt.text)
			if got != tt.want {
				t.Errorf("Faction(%q) = %q, want %q", tt.text, got, tt.want)
			}
			var amb *AttributionAmbiguityError
			if errors.As(err, &amb) != tt.ambiguous {
				t.Errorf("Faction(%q) error = %v, ambiguous want %v", tt.text, err, tt.ambiguous)
			}
		})
	}
}

func TestParseRowNarrative(t *testing.T) {
	x := NewExtractor(nil)
	item, issues, err := x.ParseRow(0, textRow("  Round 1  "))
	if err != nil {
		t.Fatalf("ParseRow error: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("unexpected issues: %v", issues)
	}
	if item.Text != "Round 1" || item.Faction != "" || item.HasEvents() {
		t.Errorf("unexpected item: %+v", item)
	}
}

func TestParseRowEvents(t *testing.T) {
	x := NewExtractor(nil)
	row := eventRow("terrans", []string{" build ", "charge", "pass"}, []string{"-2c, -1o", "1pw 2vp", ""})

	item, issues, err := x.ParseRow(4, row)
	if err != nil {
		t.Fatalf("ParseRow error: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("unexpected issues: %v", issues)
	}
	if item.Faction != "terrans" {
		t.Errorf("Faction = %q, want terrans", item.Faction)
	}
	if len(item.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(item.Events))
	}

	build := item.Events[0]
	if build.Action != "build" || len(build.Changes) != 2 {
		t.Fatalf("unexpected build event: %+v", build)
	}
	if *build.Changes[1] != (models.StateChange{Direction: models.Loss, Resource: models.ResourceOre, Quantity: 1}) {
		t.Errorf("second build change = %+v", *build.Changes[1])
	}

	pass := item.Events[2]
	if len(pass.Changes) != 1 || pass.Changes[0] != nil {
		t.Errorf("pass event should hold a single absent change, got %+v", pass.Changes)
	}
}

func TestParseRowTokenSeparators(t *testing.T) {
	tests := []struct {
		name   string
		tokens string
		want   []*models.StateChange
	}{
		{"space", "3vp 2c", []*models.StateChange{
			{Direction: models.Gain, Resource: models.ResourceVP, Quantity: 3},
			{Direction: models.Gain, Resource: models.ResourceCoin, Quantity: 2},
		}},
		{"tab", "3vp\t2c", []*models.StateChange{
			{Direction: models.Gain, Resource: models.ResourceVP, Quantity: 3},
			{Direction: models.Gain, Resource: models.ResourceCoin, Quantity: 2},
		}},
		{"newline", "-1o,\n4pw", []*models.StateChange{
			{Direction: models.Loss, Resource: models.ResourceOre, Quantity: 1},
			{Direction: models.Gain, Resource: models.ResourcePower, Quantity: 4},
		}},
		{"no-break space", "3vp\u00a02c", []*models.StateChange{
			{Direction: models.Gain, Resource: models.ResourceVP, Quantity: 3},
			{Direction: models.Gain, Resource: models.ResourceCoin, Quantity: 2},
		}},
		{"double space", "1k  1q", []*models.StateChange{
			{Direction: models.Gain, Resource: models.ResourceKnowledge, Quantity: 1},
			nil,
			{Direction: models.Gain, Resource: models.ResourceQIC, Quantity: 1},
		}},
	}

	x := NewExtractor(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, issues, err := x.ParseRow(0, eventRow("terrans", []string{"round"}, []string{tt.tokens}))
			if err != nil {
				t.Fatalf("ParseRow error: %v", err)
			}
			if len(issues) != 0 {
				t.Errorf("unexpected issues: %v", issues)
			}
			got := item.Events[0].Changes
			if len(got) != len(tt.want) {
				t.Fatalf("%q yielded %d changes, want %d", tt.tokens, len(got), len(tt.want))
			}
			for i := range tt.want {
				if (got[i] == nil) != (tt.want[i] == nil) {
					t.Errorf("change %d = %v, want %v", i, got[i], tt.want[i])
					continue
				}
				if got[i] != nil && *got[i] != *tt.want[i] {
					t.Errorf("change %d = %+v, want %+v", i, *got[i], *tt.want[i])
				}
			}
		})
	}
}

func TestParseRowBadTokenIsScoped(t *testing.T) {
	x := NewExtractor(nil)
	row := eventRow("itars", []string{"build", "round"}, []string{"-2c -vp", "3vp"})

	item, issues, err := x.ParseRow(7, row)
	if err != nil {
		t.Fatalf("ParseRow error: %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %v", issues)
	}
	is := issues[0]
	var mq *MissingQuantityError
	if is.Row != 7 || is.Token != "-vp" || !errors.As(is.Err, &mq) {
		t.Errorf("unexpected issue: %+v", is)
	}

	if item.Events[0].Changes[0] == nil || item.Events[0].Changes[1] != nil {
		t.Errorf("bad token should become an absent change: %+v", item.Events[0].Changes)
	}
	if item.Events[1].Changes[0] == nil || item.Events[1].Changes[0].Quantity != 3 {
		t.Errorf("sibling event should still parse: %+v", item.Events[1])
	}
}

func TestParseRowLengthMismatchTruncates(t *testing.T) {
	x := NewExtractor(nil)
	row := eventRow("xenos", []string{"build", "charge", "spend"}, []string{"-1o", "1pw"})

	item, issues, err := x.ParseRow(0, row)
	if err != nil {
		t.Fatalf("ParseRow error: %v", err)
	}
	if len(item.Events) != 2 {
		t.Errorf("expected truncation to 2 events, got %d", len(item.Events))
	}
	if len(issues) != 1 || !errors.Is(issues[0].Err, ErrLengthMismatch) {
		t.Errorf("expected a length mismatch issue, got %v", issues)
	}
	if issues[0].Skipped() {
		t.Error("length mismatch must not drop the row")
	}
}

func TestParseRowMalformed(t *testing.T) {
	x := NewExtractor(nil)

	if _, _, err := x.ParseRow(0, models.Row{}); !errors.Is(err, ErrEmptyRow) {
		t.Errorf("empty row error = %v, want ErrEmptyRow", err)
	}

	_, _, err := x.ParseRow(0, models.Row{Cells: [][]string{{"terrans"}, {"build"}}})
	var mr *MalformedRowError
	if !errors.As(err, &mr) || mr.Cells != 2 {
		t.Errorf("two-cell row error = %v, want MalformedRowError{2}", err)
	}
}

func TestAssembleEmpty(t *testing.T) {
	log, issues := Assemble(nil)
	if log == nil {
		t.Fatal("Assemble(nil) returned nil log")
	}
	if len(log.Factions) != 0 || len(log.Items) != 0 || len(issues) != 0 {
		t.Errorf("expected empty log, got %+v, issues %v", log, issues)
	}
}

func TestAssembleOrderAndFactions(t *testing.T) {
	// Most recent first, as delivered by the extraction step.
	rows := []models.Row{
		eventRow("terrans", []string{"final1"}, []string{"18vp"}),
		eventRow("itars", []string{"round"}, []string{"2vp"}),
		textRow("Round 1"),
		eventRow("itars", []string{"build"}, []string{"-2c"}),
		eventRow("terrans", []string{"build"}, []string{"-1o"}),
	}

	log, issues := Assemble(rows)
	if len(issues) != 0 {
		t.Errorf("unexpected issues: %v", issues)
	}

	if want := []string{"terrans", "itars"}; !reflect.DeepEqual(log.Factions, want) {
		t.Errorf("Factions = %v, want %v", log.Factions, want)
	}

	var texts []string
	for _, it := range log.Items {
		texts = append(texts, it.Text)
	}
	if want := []string{"terrans", "itars", "Round 1", "itars", "terrans"}; !reflect.DeepEqual(texts, want) {
		t.Errorf("item order = %v, want %v", texts, want)
	}
	if log.Items[4].Events[0].Action != "final1" {
		t.Errorf("last item should be the most recent row, got %+v", log.Items[4])
	}
}

func TestAssembleSkipsCorruptRows(t *testing.T) {
	rows := []models.Row{
		eventRow("terrans", []string{"round"}, []string{"2vp"}),
		{Cells: [][]string{{"broken"}, {"build"}}},
		{},
		eventRow("itars", []string{"build"}, []string{"-2q"}),
	}

	log, issues := Assemble(rows)
	if len(log.Items) != 2 {
		t.Errorf("expected 2 surviving items, got %d", len(log.Items))
	}
	skipped := 0
	for _, is := range issues {
		if is.Skipped() {
			skipped++
		}
	}
	if skipped != 2 {
		t.Errorf("expected 2 skipped rows, got %d (%v)", skipped, issues)
	}
	// Chronological index: the empty row sits at position 1 after reversal.
	if issues[0].Row != 1 || !errors.Is(issues[0].Err, ErrEmptyRow) {
		t.Errorf("first issue = %v, want row 1 empty", issues[0])
	}
}

func TestAssembleCustomFactions(t *testing.T) {
	a := NewAssembler([]string{"red", "blue"})
	log, _ := a.Assemble([]models.Row{
		eventRow("blue", []string{"round"}, []string{"1vp"}),
		eventRow("red", []string{"round"}, []string{"1vp"}),
		eventRow("terrans", []string{"round"}, []string{"1vp"}),
	})
	if want := []string{"red", "blue"}; !reflect.DeepEqual(log.Factions, want) {
		t.Errorf("Factions = %v, want %v", log.Factions, want)
	}
}
