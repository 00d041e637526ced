// Package inventory holds the player's satchel: a FIFO of items that tells
// its listeners about every change.
package inventory

import "satchel/internal/queue"

// Listener receives the full satchel contents, front to back, after each
// change. The slice is shared by every listener of one notification and
// must be treated as read-only; copy it to keep it past the call.
type Listener func(items []Item)

// Subscription identifies a registered Listener.
type Subscription uint64

type subscriber struct {
	id Subscription
	fn Listener
}

// Inventory wraps a queue of items and notifies listeners synchronously
// after every mutation. The front item is the active one.
//
// Listeners run in registration order on the caller's goroutine before the
// mutating method returns. A listener that panics aborts the fan-out: the
// panic reaches the caller, later listeners are skipped for that change,
// and the change itself stays applied.
//
// An Inventory is not safe for concurrent use.
type Inventory struct {
	items  *queue.RingBuffer[Item]
	subs   []subscriber
	nextID Subscription
}

// New returns an empty inventory with the default queue capacity.
func New() *Inventory {
	return &Inventory{items: queue.New[Item]()}
}

// NewWithCapacity returns an empty inventory whose queue starts with
// capacity slots.
func NewWithCapacity(capacity int) *Inventory {
	return &Inventory{items: queue.NewWithCapacity[Item](capacity)}
}

// Len returns the number of items held.
func (inv *Inventory) Len() int { return inv.items.Len() }

// Enqueue appends item at the back and notifies listeners.
func (inv *Inventory) Enqueue(item Item) {
	inv.items.Enqueue(item)
	inv.notify()
}

// Dequeue removes the active item and notifies listeners.
// On an empty inventory it returns queue.ErrEmptyQueue without notifying.
func (inv *Inventory) Dequeue() (Item, error) {
	item, err := inv.items.Dequeue()
	if err != nil {
		return Item{}, err
	}
	inv.notify()
	return item, nil
}

// Slice returns the items front to back. It does not notify.
func (inv *Inventory) Slice() []Item { return inv.items.Slice() }

// AddItem stores a picked-up item. It is Enqueue under the name pickup
// code uses.
func (inv *Inventory) AddItem(item Item) { inv.Enqueue(item) }

// Active returns the front item, if any.
func (inv *Inventory) Active() (Item, bool) {
	return inv.items.Peek()
}

// CycleActive moves the active item to the back so the next one becomes
// active. It is a dequeue followed by an enqueue, so listeners are told
// twice: once with the item removed and once with it restored at the back.
// With fewer than two items it does nothing and notifies no one.
func (inv *Inventory) CycleActive() {
	if inv.Len() <= 1 {
		return
	}
	first, err := inv.Dequeue()
	if err != nil {
		return
	}
	inv.Enqueue(first)
}

// Refresh notifies listeners of the current contents without changing them.
// Presentation code calls it after subscribing so it starts in sync.
func (inv *Inventory) Refresh() { inv.notify() }

// Subscribe registers fn and returns a handle for Unsubscribe.
// A listener added during a notification is first called on the next one.
func (inv *Inventory) Subscribe(fn Listener) Subscription {
	inv.nextID++
	inv.subs = append(inv.subs, subscriber{id: inv.nextID, fn: fn})
	return inv.nextID
}

// Unsubscribe removes the listener registered under id and reports whether
// it was registered. A listener removed during a notification still
// receives that notification.
func (inv *Inventory) Unsubscribe(id Subscription) bool {
	for i, s := range inv.subs {
		if s.id == id {
			inv.subs = append(inv.subs[:i:i], inv.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Listeners returns the number of registered listeners.
func (inv *Inventory) Listeners() int { return len(inv.subs) }

func (inv *Inventory) notify() {
	if len(inv.subs) == 0 {
		return
	}
	snapshot := inv.items.Slice()
	subs := inv.subs
	for _, s := range subs {
		s.fn(snapshot)
	}
}
