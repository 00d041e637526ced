package inventory

import (
	"slices"
	"testing"

	"satchel/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	lantern = Item{Name: "Lantern", Icon: "🏮", Model: Model{Glyph: "🏮", Tint: "orange"}}
	key     = Item{Name: "Key", Icon: "🔑", Model: Model{Glyph: "🔑", Tint: "gold", Grip: GripRight}}
	chart   = Item{Name: "Map", Icon: "🗺", Model: Model{Glyph: "🗺", Tint: "white"}}
)

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

// recorder collects every snapshot a listener receives.
type recorder struct{ calls [][]string }

func (r *recorder) listen(items []Item) {
	r.calls = append(r.calls, names(items))
}

func TestAddItemNotifiesOnceWithSnapshot(t *testing.T) {
	inv := New()
	var rec recorder
	inv.Subscribe(rec.listen)

	inv.AddItem(lantern)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, []string{"Lantern"}, rec.calls[0])
	assert.Equal(t, 1, inv.Len())
}

func TestEveryListenerSeesSameSnapshot(t *testing.T) {
	inv := New()
	var a, b, c recorder
	inv.Subscribe(a.listen)
	inv.Subscribe(b.listen)
	inv.Subscribe(c.listen)

	inv.AddItem(lantern)
	inv.AddItem(key)

	for _, r := range []*recorder{&a, &b, &c} {
		assert.Equal(t, [][]string{{"Lantern"}, {"Lantern", "Key"}}, r.calls)
	}
}

func TestListenerSeesPostMutationState(t *testing.T) {
	inv := New()
	inv.AddItem(lantern)
	inv.AddItem(key)

	var lenDuringCall int
	inv.Subscribe(func(items []Item) {
		lenDuringCall = inv.Len()
		assert.Equal(t, inv.Slice(), items)
	})

	_, err := inv.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, lenDuringCall)
}

func TestDequeueNotifiesAndReturnsFront(t *testing.T) {
	inv := New()
	inv.AddItem(lantern)
	inv.AddItem(key)

	var rec recorder
	inv.Subscribe(rec.listen)

	got, err := inv.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, lantern, got)
	assert.Equal(t, [][]string{{"Key"}}, rec.calls)
}

func TestDequeueEmptyPassesErrorWithoutNotify(t *testing.T) {
	inv := New()
	var rec recorder
	inv.Subscribe(rec.listen)

	got, err := inv.Dequeue()
	require.ErrorIs(t, err, queue.ErrEmptyQueue)
	assert.True(t, got.IsEmpty())
	assert.Empty(t, rec.calls)
}

func TestSliceDoesNotNotify(t *testing.T) {
	inv := New()
	inv.AddItem(lantern)
	var rec recorder
	inv.Subscribe(rec.listen)

	assert.Equal(t, []Item{lantern}, inv.Slice())
	assert.Empty(t, rec.calls)
}

func TestCycleActiveRotates(t *testing.T) {
	inv := New()
	inv.AddItem(lantern)
	inv.AddItem(key)
	inv.AddItem(chart)

	inv.CycleActive()

	assert.Equal(t, []string{"Key", "Map", "Lantern"}, names(inv.Slice()))
	active, ok := inv.Active()
	require.True(t, ok)
	assert.Equal(t, key, active)
}

func TestCycleActiveNotifiesTwice(t *testing.T) {
	inv := New()
	inv.AddItem(lantern)
	inv.AddItem(key)
	inv.AddItem(chart)

	var rec recorder
	inv.Subscribe(rec.listen)
	inv.CycleActive()

	assert.Equal(t, [][]string{
		{"Key", "Map"},
		{"Key", "Map", "Lantern"},
	}, rec.calls)
}

func TestCycleActiveNoopOnSingleOrEmpty(t *testing.T) {
	for _, start := range [][]Item{nil, {lantern}} {
		inv := New()
		for _, it := range start {
			inv.AddItem(it)
		}
		before := inv.Slice()

		var rec recorder
		inv.Subscribe(rec.listen)
		inv.CycleActive()

		assert.Equal(t, before, inv.Slice())
		assert.Empty(t, rec.calls, "no notification expected for %d items", len(start))
	}
}

func TestCycleActiveAcrossGrowth(t *testing.T) {
	inv := NewWithCapacity(2)
	inv.AddItem(lantern)
	inv.AddItem(key)
	inv.CycleActive()  // dequeue frees a slot, enqueue wraps into it
	inv.AddItem(chart) // full: grows

	assert.Equal(t, []string{"Key", "Lantern", "Map"}, names(inv.Slice()))
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	inv := New()
	var kept, dropped recorder
	inv.Subscribe(kept.listen)
	id := inv.Subscribe(dropped.listen)

	inv.AddItem(lantern)
	require.True(t, inv.Unsubscribe(id))
	inv.AddItem(key)

	assert.Len(t, kept.calls, 2)
	assert.Len(t, dropped.calls, 1)
	assert.Equal(t, 1, inv.Listeners())
}

func TestUnsubscribeUnknownReturnsFalse(t *testing.T) {
	inv := New()
	id := inv.Subscribe(func([]Item) {})
	assert.True(t, inv.Unsubscribe(id))
	assert.False(t, inv.Unsubscribe(id))
	assert.False(t, inv.Unsubscribe(Subscription(999)))
}

func TestSubscribeDuringNotifyTakesEffectNextTime(t *testing.T) {
	inv := New()
	var late recorder
	subscribed := false
	inv.Subscribe(func([]Item) {
		if !subscribed {
			subscribed = true
			inv.Subscribe(late.listen)
		}
	})

	inv.AddItem(lantern)
	assert.Empty(t, late.calls)

	inv.AddItem(key)
	assert.Equal(t, [][]string{{"Lantern", "Key"}}, late.calls)
}

func TestUnsubscribeDuringNotifyStillDeliversCurrent(t *testing.T) {
	inv := New()
	var second recorder
	var secondID Subscription
	inv.Subscribe(func([]Item) { inv.Unsubscribe(secondID) })
	secondID = inv.Subscribe(second.listen)

	inv.AddItem(lantern)
	inv.AddItem(key)

	assert.Equal(t, [][]string{{"Lantern"}}, second.calls)
}

func TestPanickingListenerFailsFast(t *testing.T) {
	inv := New()
	var before, after recorder
	inv.Subscribe(before.listen)
	inv.Subscribe(func([]Item) { panic("hand model missing") })
	inv.Subscribe(after.listen)

	assert.PanicsWithValue(t, "hand model missing", func() { inv.AddItem(lantern) })

	assert.Len(t, before.calls, 1)
	assert.Empty(t, after.calls, "listeners after a panic must not run")
	assert.Equal(t, []Item{lantern}, inv.Slice(), "mutation stays applied")
}

func TestRefreshNotifiesWithoutMutation(t *testing.T) {
	inv := New()
	inv.AddItem(lantern)
	var rec recorder
	inv.Subscribe(rec.listen)

	inv.Refresh()

	assert.Equal(t, [][]string{{"Lantern"}}, rec.calls)
	assert.Equal(t, 1, inv.Len())
}

func TestSnapshotRetainedAcrossNotificationsIsStable(t *testing.T) {
	inv := New()
	var kept [][]Item
	inv.Subscribe(func(items []Item) { kept = append(kept, slices.Clone(items)) })

	inv.AddItem(lantern)
	inv.AddItem(key)
	_, err := inv.Dequeue()
	require.NoError(t, err)

	require.Len(t, kept, 3)
	assert.Equal(t, []Item{lantern}, kept[0])
	assert.Equal(t, []Item{lantern, key}, kept[1])
	assert.Equal(t, []Item{key}, kept[2])
}

func TestActiveOnEmpty(t *testing.T) {
	_, ok := New().Active()
	assert.False(t, ok)
}
