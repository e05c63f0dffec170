/*
Package game
File: queen.go
Description:
    The queen is a water-safe thrower whose location joins the nest in the
    colony's goal set. The first queen deployed in a colony is the true queen;
    any later one is an impostor and destroys itself on its first action.
*/

package game

// Queen doubles the damage of every defender in her tunnel, then throws.
type Queen struct {
	Thrower
	permanent bool
	doubled   map[Defender]bool
}

func newQueen(k *DefenderKind) Defender {
	q := &Queen{doubled: make(map[Defender]bool)}
	q.init(q, k)
	return q
}

// Permanent reports whether this is the colony's true queen.
func (q *Queen) Permanent() bool { return q.permanent }

func (q *Queen) Act(c *Colony) {
	if !q.permanent {
		q.ApplyDamage(q.armor)
		return
	}
	if q.place == nil {
		return
	}

	// 1. Walk back to the first location past the hive.
	cur := q.place
	for cur.entrance != nil && cur.entrance != c.entry {
		cur = cur.entrance
	}

	// 2. Walk forward to the nest, boosting each defender once.
	for ; cur != nil; cur = cur.exit {
		if d := cur.defender; d != nil {
			if held := d.Contained(); held != nil {
				q.boost(held)
			}
			q.boost(d)
		}
	}

	q.Thrower.Act(c)
}

func (q *Queen) boost(d Defender) {
	if d == Defender(q) || q.doubled[d] {
		return
	}
	d.doubleDamage()
	q.doubled[d] = true
}
