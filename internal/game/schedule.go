/*
Package game
File: schedule.go
Description:
    The assault schedule: which attackers leave the hive on which turn.
    Waves are keyed by turn; turns without an entry release nobody.
*/

package game

import (
	"iter"
	"slices"
)

// DefaultAttackerArmor is the armor of attackers in the standard presets.
const DefaultAttackerArmor = 3

// AssaultSchedule maps turns to the attackers introduced on them.
type AssaultSchedule struct {
	armor     int
	waterSafe bool
	waves     map[int][]*Attacker
	nextID    int
}

// NewAssaultSchedule returns an empty schedule whose attackers carry armor.
// Armor below 1 is raised to 1 so every attacker can act and expire.
func NewAssaultSchedule(armor int) *AssaultSchedule {
	return &AssaultSchedule{
		armor:     max(armor, 1),
		waterSafe: true,
		waves:     make(map[int][]*Attacker),
	}
}

// Grounded makes attackers added afterwards drown in water.
func (s *AssaultSchedule) Grounded() *AssaultSchedule {
	s.waterSafe = false
	return s
}

// AttackerArmor returns the armor given to new attackers.
func (s *AssaultSchedule) AttackerArmor() int { return s.armor }

// AddWave appends count new attackers to the wave at turn.
func (s *AssaultSchedule) AddWave(turn, count int) *AssaultSchedule {
	for i := 0; i < count; i++ {
		s.nextID++
		a := NewAttacker(s.armor)
		a.ID = s.nextID
		a.waterSafe = s.waterSafe
		s.waves[turn] = append(s.waves[turn], a)
	}
	return s
}

// Wave returns the attackers scheduled for turn, in insertion order.
func (s *AssaultSchedule) Wave(turn int) []*Attacker {
	return slices.Clone(s.waves[turn])
}

// Turns returns the scheduled turns in ascending order.
func (s *AssaultSchedule) Turns() []int {
	turns := make([]int, 0, len(s.waves))
	for t := range s.waves {
		turns = append(turns, t)
	}
	slices.Sort(turns)
	return turns
}

// Len returns the number of attackers across all waves.
func (s *AssaultSchedule) Len() int {
	n := 0
	for _, w := range s.waves {
		n += len(w)
	}
	return n
}

// AllAttackers yields every attacker, wave by wave in turn order. Each call
// starts a fresh pass.
func (s *AssaultSchedule) AllAttackers() iter.Seq[*Attacker] {
	return func(yield func(*Attacker) bool) {
		for _, t := range s.Turns() {
			for _, a := range s.waves[t] {
				if !yield(a) {
					return
				}
			}
		}
	}
}

// TestAssault is two single attackers on turns 2 and 3.
func TestAssault() *AssaultSchedule {
	return NewAssaultSchedule(DefaultAttackerArmor).AddWave(2, 1).AddWave(3, 1)
}

// FullAssault trickles single attackers in before a wave of eight on turn 15.
func FullAssault() *AssaultSchedule {
	s := NewAssaultSchedule(DefaultAttackerArmor).AddWave(2, 1)
	for t := 3; t < 15; t += 2 {
		s.AddWave(t, 1)
	}
	return s.AddWave(15, 8)
}

// InsaneAssault uses tougher attackers and ends with a wave of twenty.
func InsaneAssault() *AssaultSchedule {
	s := NewAssaultSchedule(4).AddWave(1, 2)
	for t := 3; t < 15; t++ {
		s.AddWave(t, 1)
	}
	return s.AddWave(15, 20)
}
