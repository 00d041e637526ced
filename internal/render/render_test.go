package render

import (
	"strings"
	"testing"

	"satchel/assets"
	"satchel/internal/component"
	"satchel/internal/inventory"
	"satchel/internal/level"
	"satchel/internal/menu"
	"satchel/internal/settings"
	"satchel/internal/system"

	"github.com/gdamore/tcell/v2"
)

var (
	lantern = inventory.Item{Name: "Lantern", Icon: "🏮", Model: inventory.Model{Glyph: "🏮"}}
	key     = inventory.Item{Name: "Key", Icon: "🔑", Model: inventory.Model{Glyph: "🔑", Grip: inventory.GripRight}}
	apple   = inventory.Item{Name: "Apple", Icon: "🍎", Model: inventory.Model{Glyph: "🍎"}}
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(80, 24)
	t.Cleanup(ss.Fini)
	return ss
}

// rowText returns the printable contents of screen row y.
func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := range w {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range h {
		rows[y] = rowText(s, y)
	}
	return strings.Join(rows, "\n")
}

func TestSlotsUpdate(t *testing.T) {
	var sl Slots
	sl.Update([]inventory.Item{lantern, key, apple})
	if sl.Main.Name != "Lantern" || sl.Sub.Name != "Key" || sl.Count != 3 {
		t.Fatalf("slots = %+v", sl)
	}
	sl.Update([]inventory.Item{key})
	if sl.Main.Name != "Key" || !sl.Sub.IsEmpty() {
		t.Fatalf("one item should clear the sub slot, got %+v", sl)
	}
	sl.Update(nil)
	if !sl.Main.IsEmpty() || sl.Count != 0 {
		t.Fatalf("empty satchel should clear both slots, got %+v", sl)
	}
}

func TestListenersFollowInventory(t *testing.T) {
	inv := inventory.New()
	var sl Slots
	var hand Hand
	inv.Subscribe(sl.Update)
	inv.Subscribe(hand.Update)

	inv.AddItem(lantern)
	inv.AddItem(key)
	if hand.Item.Name != "Lantern" || sl.Sub.Name != "Key" {
		t.Fatalf("hand %q, sub %q", hand.Item.Name, sl.Sub.Name)
	}

	swaps := hand.Swaps
	inv.CycleActive()
	if hand.Swaps-swaps != 2 {
		t.Errorf("cycle should replace the held model twice, got %d", hand.Swaps-swaps)
	}
	if hand.Item.Name != "Key" || sl.Main.Name != "Key" || sl.Sub.Name != "Lantern" {
		t.Errorf("after cycle: hand %q, main %q, sub %q", hand.Item.Name, sl.Main.Name, sl.Sub.Name)
	}
}

func TestHandPose(t *testing.T) {
	var h Hand
	if h.Pose() != "" {
		t.Error("empty hand has no pose")
	}
	h.Update([]inventory.Item{key})
	if got := h.Pose(); got != "tilted right" {
		t.Errorf("Pose() = %q", got)
	}
}

func TestDrawHUD(t *testing.T) {
	ss := newTestScreen(t)
	r := NewRenderer(ss, false)
	var sl Slots
	var hand Hand
	sl.Update([]inventory.Item{lantern, key})
	hand.Update([]inventory.Item{lantern})

	r.DrawHUD(&sl, &hand, Status{
		Title:    "The Cellar",
		Hint:     PickupHint("Apple"),
		Facing:   component.FacingEast,
		Messages: []string{"old", "You picked up the Key."},
	})

	text := screenText(ss)
	for _, want := range []string{"The Cellar", "Main", "Lantern", "Next", "Key", "(2 in satchel)", "upright", "facing east", "Press E to pick up Apple", "You picked up the Key."} {
		if !strings.Contains(text, want) {
			t.Errorf("HUD missing %q", want)
		}
	}
	if strings.Contains(text, "old") {
		t.Error("only the latest message is shown")
	}
}

func TestDrawHUDEmpty(t *testing.T) {
	ss := newTestScreen(t)
	r := NewRenderer(ss, false)
	r.DrawHUD(&Slots{}, &Hand{}, Status{Crouching: true})

	text := screenText(ss)
	for _, want := range []string{"[  ]", "empty", "crouching"} {
		if !strings.Contains(text, want) {
			t.Errorf("HUD missing %q", want)
		}
	}
}

func TestDrawScenePlayerAtCentre(t *testing.T) {
	ss := newTestScreen(t)
	r := NewRenderer(ss, false)
	s, err := level.Load(level.SceneTutorial)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	system.UpdateView(s, s.PlayerID, 6)
	r.DrawScene(s)

	pos := s.PlayerPosition()
	sx, sy, ok := r.WorldToScreen(pos.X, pos.Y)
	if !ok {
		t.Fatal("player should be on screen")
	}
	if sx != 40 || sy != 9 {
		t.Errorf("player drawn at (%d,%d); want (40,9)", sx, sy)
	}
	got, _, _, _ := ss.GetContent(sx, sy)
	if string(got) != assets.GlyphPlayer {
		t.Errorf("cell holds %q; want player glyph", string(got))
	}
}

func TestDrawSceneHidesUnseenItems(t *testing.T) {
	ss := newTestScreen(t)
	r := NewRenderer(ss, false)
	s, err := level.Load(level.SceneTutorial)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Facing north from (5,5) the journal at (16,7) is behind the player.
	system.UpdateView(s, s.PlayerID, 6)
	r.DrawScene(s)

	sx, sy, ok := r.WorldToScreen(16, 7)
	if !ok {
		t.Fatal("journal tile should be inside the viewport")
	}
	got, _, _, _ := ss.GetContent(sx, sy)
	if string(got) == "📕" {
		t.Error("unseen item must not be drawn")
	}
}

func TestFramedRendererDrawsBorder(t *testing.T) {
	ss := newTestScreen(t)
	r := NewRenderer(ss, true)
	s, err := level.Load(level.SceneYard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r.DrawScene(s)

	if c, _, _, _ := ss.GetContent(0, 0); c != '┌' {
		t.Errorf("top-left = %q; want ┌", c)
	}
	if c, _, _, _ := ss.GetContent(79, 24-HUDHeight-1); c != '┘' {
		t.Errorf("bottom-right = %q; want ┘", c)
	}

	r.SetFramed(false)
	r.DrawScene(s)
	if c, _, _, _ := ss.GetContent(0, 0); c == '┌' {
		t.Error("unframed renderer must not draw a border")
	}
}

func TestDrawMainMenu(t *testing.T) {
	ss := newTestScreen(t)
	r := NewRenderer(ss, false)
	m := menu.NewMain()

	r.DrawMainMenu(m, settings.Default(), assets.Credits)
	text := screenText(ss)
	for _, want := range []string{"SATCHEL", "> Play <", "Settings", "Credits", "Exit"} {
		if !strings.Contains(text, want) {
			t.Errorf("main menu missing %q", want)
		}
	}

	m.Down()
	m.Select()
	r.DrawMainMenu(m, settings.Default(), assets.Credits)
	text = screenText(ss)
	for _, want := range []string{"Master volume", "100%", "Medium", "Back"} {
		if !strings.Contains(text, want) {
			t.Errorf("settings panel missing %q", want)
		}
	}
}

func TestDrawPause(t *testing.T) {
	ss := newTestScreen(t)
	r := NewRenderer(ss, false)
	p := menu.NewPause()
	p.Toggle()

	r.DrawPause(p, settings.Default())
	text := screenText(ss)
	for _, want := range []string{"Paused", "> Resume <", "Back to menu"} {
		if !strings.Contains(text, want) {
			t.Errorf("pause menu missing %q", want)
		}
	}
}

func TestCamera(t *testing.T) {
	c := NewCamera(10, 10, 40, 20)
	sx, sy, ok := c.WorldToScreen(10, 10)
	if !ok || sx != 20 || sy != 10 {
		t.Errorf("centre maps to (%d,%d,%v); want (20,10,true)", sx, sy, ok)
	}
	if wx, wy := c.ScreenToWorld(sx, sy); wx != 10 || wy != 10 {
		t.Errorf("ScreenToWorld = (%d,%d)", wx, wy)
	}
	if _, _, ok := c.WorldToScreen(40, 10); ok {
		t.Error("far tile should be off screen")
	}
	c.Resize(-5, -5)
	if c.ViewWidth != 0 || c.ViewHeight != 0 {
		t.Error("Resize must clamp negative sizes")
	}
}
