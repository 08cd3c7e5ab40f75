package gymclient

import (
	"context"
	"sync"
)

// saveGate lets one save per date talk to the server at a time. Only the
// newest waiting save of a date gets to go next, older waiters give up.
// A waiter that leaves on its context no longer counts as newer.
type saveGate struct {
	mutex sync.Mutex
	seq   uint64
	slots map[string]*saveSlot
}

type saveSlot struct {
	turn chan struct{}
	// tickets of saves that did not give up on their context, queued or done
	live  map[uint64]struct{}
	users int
}

func (s *saveSlot) newerLive(ticket uint64) bool {
	for t := range s.live {
		if t > ticket {
			return true
		}
	}
	return false
}

func newSaveGate() *saveGate {
	return &saveGate{
		slots: map[string]*saveSlot{},
	}
}

func (g *saveGate) acquire(ctx context.Context, date string) (func(), error) {
	g.mutex.Lock()
	g.seq++
	ticket := g.seq
	slot, ok := g.slots[date]
	if !ok {
		slot = &saveSlot{
			turn: make(chan struct{}, 1),
			live: map[uint64]struct{}{},
		}
		slot.turn <- struct{}{}
		g.slots[date] = slot
	}
	slot.live[ticket] = struct{}{}
	slot.users++
	g.mutex.Unlock()

	select {
	case <-slot.turn:
	case <-ctx.Done():
		g.mutex.Lock()
		delete(slot.live, ticket)
		g.mutex.Unlock()
		g.leave(date, slot)
		return nil, ctx.Err()
	}

	g.mutex.Lock()
	superseded := slot.newerLive(ticket)
	g.mutex.Unlock()

	release := func() {
		slot.turn <- struct{}{}
		g.leave(date, slot)
	}
	if superseded {
		release()
		return nil, ErrSuperseded
	}

	return release, nil
}

func (g *saveGate) leave(date string, slot *saveSlot) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	slot.users--
	if slot.users == 0 {
		delete(g.slots, date)
	}
}

// waiting reports how many saves of date are in flight or queued.
func (g *saveGate) waiting(date string) int {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	if slot, ok := g.slots[date]; ok {
		return slot.users
	}
	return 0
}
