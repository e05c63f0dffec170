/*
Package game
File: location.go
Description:
    Locations are the nodes of the defense path. Each one links forward to an
    exit (toward the nest) and back to a single entrance (toward the hive).
    A location holds any number of attackers and one defender slot, which may
    carry a second, contained defender.
*/

package game

import "github.com/pkg/errors"

// Location is a node in a tunnel chain.
type Location struct {
	name     string
	water    bool
	exit     *Location
	entrance *Location

	attackers []*Attacker
	defender  Defender

	// colony receives expiry events once the location is registered.
	colony *Colony
}

// NewLocation creates a dry location and links it as the entrance of exit.
// The link is written once; an exit that already has an entrance keeps it.
func NewLocation(name string, exit *Location) *Location {
	l := &Location{name: name, exit: exit}
	if exit != nil && exit.entrance == nil {
		exit.entrance = l
	}
	return l
}

// NewWater creates a location that drowns any occupant that is not water-safe.
func NewWater(name string, exit *Location) *Location {
	l := NewLocation(name, exit)
	l.water = true
	return l
}

func (l *Location) Name() string        { return l.name }
func (l *Location) IsWater() bool       { return l.water }
func (l *Location) Exit() *Location     { return l.exit }
func (l *Location) Entrance() *Location { return l.entrance }
func (l *Location) Defender() Defender  { return l.defender }
func (l *Location) String() string      { return l.name }
func (l *Location) HasAttackers() bool  { return len(l.attackers) > 0 }
func (l *Location) AttackerCount() int  { return len(l.attackers) }

// Attackers returns a copy of the attackers in this location, safe to iterate
// while actors are removed.
func (l *Location) Attackers() []*Attacker {
	out := make([]*Attacker, len(l.attackers))
	copy(out, l.attackers)
	return out
}

// AddOccupant places an actor here and binds it to this location. An actor
// that is not water-safe drowns right after placement in water.
//
// Attackers always fit. A defender takes the empty slot, slips inside a
// container already holding the slot, or wraps the current occupant when it
// is itself a container. Any other combination is an ErrOccupancyConflict.
func (l *Location) AddOccupant(a Actor) error {
	if err := l.settle(a); err != nil {
		return err
	}
	l.drown(a)
	return nil
}

// settle binds a to this location without applying water damage.
func (l *Location) settle(a Actor) error {
	switch v := a.(type) {
	case *Attacker:
		l.attackers = append(l.attackers, v)
	case Defender:
		switch {
		case l.defender == nil:
			l.defender = v
		case l.defender.CanContain(v):
			l.defender.contain(v)
		case v.CanContain(l.defender):
			v.contain(l.defender)
			l.defender = v
		default:
			return errors.Wrapf(ErrOccupancyConflict, "%s already holds %s, cannot add %s",
				l.name, l.defender.Name(), v.Name())
		}
	default:
		return errors.Errorf("location %s: unsupported actor %T", l.name, a)
	}
	a.bind(l)
	return nil
}

// drown applies damage equal to a's armor when this is water and a is not water-safe.
func (l *Location) drown(a Actor) {
	if l.water && !a.WaterSafe() && a.Location() == l {
		a.ApplyDamage(a.Armor())
	}
}

// RemoveOccupant unbinds an actor from this location.
//
// The permanent queen is never evicted; removing her is a no-op. Removing a
// container promotes the defender it held to the slot.
func (l *Location) RemoveOccupant(a Actor) error {
	switch v := a.(type) {
	case *Attacker:
		idx := -1
		for i, other := range l.attackers {
			if other == v {
				idx = i
				break
			}
		}
		if idx == -1 {
			return errors.Wrapf(ErrNotPresent, "%s is not in %s", v.Name(), l.name)
		}
		l.attackers = append(l.attackers[:idx], l.attackers[idx+1:]...)

	case Defender:
		if q, ok := v.(*Queen); ok && q.permanent && q.place == l {
			return nil
		}
		switch {
		case l.defender != nil && l.defender == v:
			l.defender = v.Contained()
			v.release()
		case l.defender != nil && l.defender.Contained() != nil && l.defender.Contained() == v:
			l.defender.release()
		default:
			return errors.Wrapf(ErrNotPresent, "%s is not in %s", v.Name(), l.name)
		}

	default:
		return errors.Errorf("location %s: unsupported actor %T", l.name, a)
	}
	a.bind(nil)
	return nil
}

// notify forwards an event to the owning colony, if any.
func (l *Location) notify(kind EventKind, a Actor, detail string) {
	if l.colony != nil {
		l.colony.emit(kind, a, l, detail)
	}
}
