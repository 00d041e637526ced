package render

import (
	"fmt"

	"satchel/internal/component"
	"satchel/internal/inventory"
)

// Slots mirrors the satchel for the HUD: the active item in the main slot
// and the one after it in the sub slot. Update is an inventory.Listener.
type Slots struct {
	Main  inventory.Item
	Sub   inventory.Item
	Count int
}

// Update refreshes the slots from a satchel snapshot.
func (sl *Slots) Update(items []inventory.Item) {
	sl.Main, sl.Sub = inventory.Item{}, inventory.Item{}
	sl.Count = len(items)
	if len(items) > 0 {
		sl.Main = items[0]
	}
	if len(items) > 1 {
		sl.Sub = items[1]
	}
}

// Hand shows the model of the active item held in the player's hand.
// Update is an inventory.Listener; every call replaces the held model.
type Hand struct {
	Item  inventory.Item
	Swaps int
}

// Update takes the front item of a satchel snapshot into the hand.
func (h *Hand) Update(items []inventory.Item) {
	h.Swaps++
	h.Item = inventory.Item{}
	if len(items) > 0 {
		h.Item = items[0]
	}
}

// Pose describes how the held model is oriented.
func (h *Hand) Pose() string {
	if h.Item.IsEmpty() {
		return ""
	}
	switch h.Item.Model.Grip {
	case inventory.GripRight:
		return "tilted right"
	case inventory.GripInverted:
		return "upside down"
	case inventory.GripLeft:
		return "tilted left"
	}
	return "upright"
}

// Status is the non-inventory state shown in the HUD.
type Status struct {
	Title     string
	Hint      string
	Facing    component.Facing
	Crouching bool
	Messages  []string
}

// DrawHUD renders the satchel slots, the hand, the pickup hint and the last
// message below the map.
func (r *Renderer) DrawHUD(slots *Slots, hand *Hand, st Status) {
	_, h := r.screen.Size()
	top := h - HUDHeight
	if top < 0 {
		return
	}

	r.drawHLine(top, styleFrame)
	if st.Title != "" {
		r.drawText(2, top, " "+st.Title+" ", styleTitle)
	}

	col := r.drawText(0, top+1, "Main ", styleText)
	col = r.drawSlot(col, top+1, slots.Main)
	col = r.drawText(col+2, top+1, "Next ", styleText)
	col = r.drawSlot(col, top+1, slots.Sub)
	r.drawText(col+2, top+1, fmt.Sprintf("(%d in satchel)", slots.Count), styleDim)

	posture := "standing"
	if st.Crouching {
		posture = "crouching"
	}
	col = r.drawText(0, top+2, "Hand ", styleText)
	if hand.Item.IsEmpty() {
		col = r.drawText(col, top+2, "empty", styleDim)
	} else {
		r.putGlyph(col, top+2, hand.Item.Model.Glyph, styleText)
		col = r.drawText(col+3, top+2, hand.Pose(), styleText)
	}
	r.drawText(col+2, top+2, fmt.Sprintf("· facing %s · %s", st.Facing, posture), styleDim)

	if st.Hint != "" {
		r.drawText(0, top+3, st.Hint, styleHint)
	}
	if n := len(st.Messages); n > 0 {
		r.drawText(0, top+4, st.Messages[n-1], styleMessage)
	}
}

// drawSlot draws an item icon and name, or a placeholder for an empty slot.
func (r *Renderer) drawSlot(x, y int, it inventory.Item) int {
	if it.IsEmpty() {
		return r.drawText(x, y, "[  ]", styleDim)
	}
	col := r.drawText(x, y, "[", styleText)
	r.putGlyph(col, y, it.Icon, styleText)
	col = r.drawText(col+2, y, "] ", styleText)
	return r.drawText(col, y, it.Name, styleText)
}

// PickupHint is the HUD line shown while an item is in reach.
func PickupHint(name string) string {
	return fmt.Sprintf("Press E to pick up %s", name)
}
