/*
Package game
File: actor.go
Description:
    The shared contract for everything that occupies a location. Defenders and
    attackers both take damage, act once per turn and expire when their armor
    runs out.
*/

package game

// Actor is anything that can occupy a Location.
type Actor interface {
	Name() string
	Armor() int
	Location() *Location
	WaterSafe() bool

	// ApplyDamage lowers armor; at zero or below the actor leaves its location.
	ApplyDamage(amount int)

	// Act performs the actor's per-turn behaviour.
	Act(c *Colony)

	bind(l *Location)
}

// unit carries the state common to every actor.
type unit struct {
	armor int
	place *Location
}

func (u *unit) Armor() int          { return u.armor }
func (u *unit) Location() *Location { return u.place }
func (u *unit) bind(l *Location)    { u.place = l }

// wound lowers armor and reports whether this blow took the actor from
// positive armor to none.
func (u *unit) wound(amount int) bool {
	before := u.armor
	u.armor -= amount
	return before > 0 && u.armor <= 0
}

// expire removes a spent actor from its location and reports it.
func expire(a Actor) {
	l := a.Location()
	if l == nil {
		return
	}
	mustNot(l.RemoveOccupant(a))
	l.notify(EventExpired, a, "ran out of armor")
}
