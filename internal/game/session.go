/*
Package game
File: session.go
Description:
    A Session is the server-side home of one running colony.

    HTTP handlers queue deploy and remove orders; the session applies them
    as the colony's strategy during the next turn's deployment phase. The
    session's lock protects the colony, which is not itself thread-safe.
*/

package game

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// OrderAction is what a queued order asks the colony to do.
type OrderAction string

const (
	OrderDeploy OrderAction = "deploy"
	OrderRemove OrderAction = "remove"
)

// Order is a deployment request waiting for the next turn.
type Order struct {
	ID       string      `json:"id"`
	Action   OrderAction `json:"action"`
	Location string      `json:"location"`
	Variant  string      `json:"variant,omitempty"`
}

// Session guards one colony and its pending orders.
type Session struct {
	mu sync.RWMutex

	id      string
	cfg     ColonyConfig
	sink    func(Event)
	colony  *Colony
	pending []Order
}

// NewSession starts a game from cfg. sink may be nil.
func NewSession(cfg ColonyConfig, sink func(Event)) (*Session, error) {
	s := &Session{sink: sink}
	if err := s.Reset(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards the current game and pending orders and starts over from cfg.
func (s *Session) Reset(cfg ColonyConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := BuildColony(cfg, s.applyOrders, WithEventSink(s.sink))
	if err != nil {
		return err
	}
	s.id = uuid.NewString()
	s.cfg = cfg
	s.colony = c
	s.pending = nil
	return nil
}

// Restart begins a new game with the current configuration.
func (s *Session) Restart() error {
	s.mu.RLock()
	cfg := s.cfg
	s.mu.RUnlock()
	return s.Reset(cfg)
}

// ID identifies the current game.
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Enqueue validates an order against the current colony and queues it.
// Food is only checked when the order is applied.
func (s *Session) Enqueue(action OrderAction, location, variant string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.colony.Location(location); err != nil {
		return Order{}, err
	}
	switch action {
	case OrderDeploy:
		if _, err := LookupDefender(variant); err != nil {
			return Order{}, err
		}
	case OrderRemove:
		variant = ""
	default:
		return Order{}, errors.Errorf("unknown order action %q", action)
	}

	o := Order{ID: uuid.NewString(), Action: action, Location: location, Variant: variant}
	s.pending = append(s.pending, o)
	return o, nil
}

// Pending returns the orders waiting for the next turn.
func (s *Session) Pending() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, len(s.pending))
	copy(out, s.pending)
	return out
}

// Step advances the colony one turn.
func (s *Session) Step() (Outcome, Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome := s.colony.Step()
	return outcome, s.snapshotLocked()
}

// Concluded reports whether the current game is over.
func (s *Session) Concluded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.colony.State() == Concluded
}

// Snapshot returns the current view of the colony.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := s.colony.Snapshot()
	snap.SessionID = s.id
	return snap
}

// applyOrders is the colony's strategy. It runs inside Step, under the lock.
func (s *Session) applyOrders(d Deployment) {
	orders := s.pending
	s.pending = nil

	for _, o := range orders {
		var err error
		if o.Action == OrderDeploy {
			err = d.DeployDefender(o.Location, o.Variant)
		} else {
			err = d.RemoveDefender(o.Location)
		}
		if err != nil && s.sink != nil {
			s.sink(Event{
				Kind:     EventRejected,
				Turn:     d.Turn(),
				Actor:    o.Variant,
				Location: o.Location,
				Detail:   o.ID + ": " + err.Error(),
			})
		}
	}
}
