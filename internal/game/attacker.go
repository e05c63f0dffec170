/*
Package game
File: attacker.go
Description:
    Attackers leave the hive in waves and walk the exit chain toward the nest.
    A path-blocking defender stops them; they sting it until it falls.
*/

package game

import "fmt"

// StingDamage is the armor an attacker removes from a blocking defender per turn.
const StingDamage = 1

// Attacker is an enemy unit advancing toward the nest.
type Attacker struct {
	unit
	ID        int
	waterSafe bool
}

// NewAttacker creates a water-safe attacker that is not yet in play.
func NewAttacker(armor int) *Attacker {
	return &Attacker{unit: unit{armor: armor}, waterSafe: true}
}

func (a *Attacker) Name() string    { return fmt.Sprintf("Attacker#%d", a.ID) }
func (a *Attacker) WaterSafe() bool { return a.waterSafe }

// Blocked reports whether the defender in the attacker's location bars the way.
func (a *Attacker) Blocked() bool {
	if a.place == nil {
		return false
	}
	d := a.place.defender
	return d != nil && d.BlocksPath()
}

// Sting attacks a defender for StingDamage.
func (a *Attacker) Sting(d Defender) {
	d.ApplyDamage(StingDamage)
}

// MoveTo relocates the attacker. Both ends must accept the move.
func (a *Attacker) MoveTo(l *Location) {
	if a.place != nil {
		mustNot(a.place.RemoveOccupant(a))
	}
	mustNot(l.AddOccupant(a))
}

func (a *Attacker) ApplyDamage(amount int) {
	if a.wound(amount) {
		expire(a)
	}
}

// Act stings the blocking defender, or advances one location toward the nest.
// Attackers still queued in the hive wait for their wave.
func (a *Attacker) Act(c *Colony) {
	if a.Blocked() {
		a.Sting(a.place.defender)
		return
	}
	if a.place == nil || a.place == c.entry || a.armor <= 0 {
		return
	}
	if next := a.place.exit; next != nil {
		a.MoveTo(next)
	}
}
