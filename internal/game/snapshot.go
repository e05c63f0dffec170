/*
Package game
File: snapshot.go
Description:
    Builds the JSON views defined in models.go from a live colony.
*/

package game

// Snapshot captures the colony's current state. The hive is summarised by
// QueuedAttackers; the nest is listed last.
func (c *Colony) Snapshot() Snapshot {
	snap := Snapshot{
		Turn:            c.turn,
		Food:            c.food,
		State:           c.state.String(),
		Outcome:         c.outcome.String(),
		QueuedAttackers: c.entry.AttackerCount(),
		Locations:       []LocationView{},
	}
	for _, g := range c.goals {
		snap.Goals = append(snap.Goals, g.name)
	}

	entries := make(map[*Location]bool, len(c.entries))
	for _, l := range c.entries {
		entries[l] = true
	}
	for _, l := range c.places {
		if l == c.entry {
			continue
		}
		snap.Locations = append(snap.Locations, viewLocation(l, entries[l]))
	}
	snap.Locations = append(snap.Locations, viewLocation(c.goal, false))
	return snap
}

func viewLocation(l *Location, entry bool) LocationView {
	v := LocationView{
		Name:      l.name,
		Water:     l.water,
		Entry:     entry,
		Defender:  viewDefender(l.defender),
		Attackers: []AttackerView{},
	}
	if l.exit != nil {
		v.Exit = l.exit.name
	}
	for _, a := range l.attackers {
		v.Attackers = append(v.Attackers, AttackerView{ID: a.ID, Armor: a.armor})
	}
	return v
}

func viewDefender(d Defender) *DefenderView {
	if d == nil {
		return nil
	}
	return &DefenderView{
		Variant:   d.Name(),
		Armor:     d.Armor(),
		Damage:    d.Damage(),
		Contained: viewDefender(d.Contained()),
	}
}
