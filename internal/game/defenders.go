/*
Package game
File: defenders.go
Description:
    The defender variants. Each type embeds the shared defender base and
    overrides only the behaviour that makes it different.
*/

package game

// DigestTurns is how long a Hungry defender rests after eating.
const DigestTurns = 3

// Harvester adds one food to the colony every turn.
type Harvester struct{ defender }

func newHarvester(k *DefenderKind) Defender {
	h := &Harvester{}
	h.init(h, k)
	return h
}

func (h *Harvester) Act(c *Colony) {
	c.food++
}

// Thrower strikes the nearest attacker within its range. The Long, Short and
// Scuba variants share this type and differ only in their kind's stats.
type Thrower struct{ defender }

func newThrower(k *DefenderKind) Defender {
	t := &Thrower{}
	t.init(t, k)
	return t
}

// NearestAttacker walks entrances from the thrower's location toward the hive
// and returns a random attacker from the first in-range location holding any.
func (t *Thrower) NearestAttacker(c *Colony) *Attacker {
	distance := 0
	for place := t.place; place != nil && place != c.entry; place = place.entrance {
		if distance >= t.kind.MinRange && distance <= t.kind.MaxRange && place.HasAttackers() {
			return c.pick(place.attackers)
		}
		distance++
	}
	return nil
}

// ThrowAt damages target; a nil target is a miss.
func (t *Thrower) ThrowAt(target *Attacker) {
	if target != nil {
		target.ApplyDamage(t.damage)
	}
}

func (t *Thrower) Act(c *Colony) {
	t.ThrowAt(t.NearestAttacker(c))
}

// Fire burns every attacker in its location when it expires.
type Fire struct{ defender }

func newFire(k *DefenderKind) Defender {
	f := &Fire{}
	f.init(f, k)
	return f
}

func (f *Fire) ApplyDamage(amount int) {
	if !f.wound(amount) {
		return
	}
	if f.place != nil {
		for _, a := range f.place.Attackers() {
			a.ApplyDamage(f.damage)
		}
	}
	expire(f)
}

// Wall only soaks up stings.
type Wall struct{ defender }

func newWall(k *DefenderKind) Defender {
	w := &Wall{}
	w.init(w, k)
	return w
}

// Ninja lets attackers pass and cuts every attacker in its location each turn.
type Ninja struct{ defender }

func newNinja(k *DefenderKind) Defender {
	n := &Ninja{}
	n.init(n, k)
	return n
}

func (n *Ninja) Act(c *Colony) {
	if n.place == nil {
		return
	}
	for _, a := range n.place.Attackers() {
		a.ApplyDamage(n.damage)
	}
}

// Hungry swallows a random attacker in its location whole, then digests.
type Hungry struct {
	defender
	digesting int
}

func newHungry(k *DefenderKind) Defender {
	h := &Hungry{}
	h.init(h, k)
	return h
}

// Digesting returns the turns left before it can eat again.
func (h *Hungry) Digesting() int { return h.digesting }

func (h *Hungry) Act(c *Colony) {
	if h.digesting > 0 {
		h.digesting--
		return
	}
	if h.place == nil || !h.place.HasAttackers() {
		return
	}
	prey := c.pick(h.place.attackers)
	prey.ApplyDamage(prey.Armor())
	h.digesting = DigestTurns
}

// Bodyguard shelters one non-container defender and acts on its behalf.
type Bodyguard struct {
	defender
	held Defender
}

func newBodyguard(k *DefenderKind) Defender {
	b := &Bodyguard{}
	b.init(b, k)
	return b
}

func (b *Bodyguard) CanContain(other Defender) bool {
	return b.held == nil && !other.IsContainer()
}

func (b *Bodyguard) Contained() Defender { return b.held }
func (b *Bodyguard) contain(d Defender)  { b.held = d }
func (b *Bodyguard) release()            { b.held = nil }

func (b *Bodyguard) Act(c *Colony) {
	if b.held != nil {
		b.held.Act(c)
	}
}

// Remover is a zero-armor placeholder; deploying it vacates a location.
type Remover struct{ defender }

func newRemover(k *DefenderKind) Defender {
	r := &Remover{}
	r.init(r, k)
	return r
}
