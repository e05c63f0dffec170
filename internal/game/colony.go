/*
Package game
File: colony.go
Description:
    The colony owns the locations, the food supply and the turn loop.

    One call to Step runs a full turn:
    1. Entry: attackers scheduled for this turn leave the hive.
    2. Deployment: the strategy places or removes defenders.
    3. Defenders act, in location registration order.
    4. Attackers act, in location order.
    5. The turn counter advances and the end condition is checked.

    A Colony is not safe for concurrent use; the Session wraps it with a lock.
*/

package game

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// Names of the two locations every colony creates itself.
const (
	EntryName = "Hive"
	GoalName  = "Nest"
)

// State of the turn engine.
type State int

const (
	AwaitingGoalBreach State = iota
	Concluded
)

func (s State) String() string {
	if s == Concluded {
		return "concluded"
	}
	return "awaiting_goal_breach"
}

// Outcome is the result reported by Step.
type Outcome int

const (
	Continuing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "continuing"
	}
}

// Deployment is the view of the colony handed to a strategy. It can place and
// remove defenders but cannot advance time.
type Deployment interface {
	Turn() int
	Food() int
	Locations() []*Location
	Defenders() []Defender
	Attackers() []*Attacker
	DeployDefender(location, variant string) error
	RemoveDefender(location string) error
}

// Strategy is called once per turn during the deployment phase.
type Strategy func(d Deployment)

// Option configures a Colony.
type Option func(*Colony)

// WithRand sets the random source used for targeting and wave entry.
func WithRand(r *rand.Rand) Option {
	return func(c *Colony) { c.rng = r }
}

// WithEventSink receives every event the colony emits.
func WithEventSink(sink func(Event)) Option {
	return func(c *Colony) { c.sink = sink }
}

// Colony is the game state and turn engine.
type Colony struct {
	turn     int
	food     int
	strategy Strategy
	schedule *AssaultSchedule

	entry   *Location
	goal    *Location
	goals   []*Location
	places  []*Location
	byName  map[string]*Location
	entries []*Location

	queens int
	queen  *Queen

	state   State
	outcome Outcome

	rng  *rand.Rand
	sink func(Event)
}

// NewColony builds the hive, the nest and the layout's tunnels, and queues
// every scheduled attacker in the hive.
func NewColony(strategy Strategy, schedule *AssaultSchedule, layout Layout, food int, opts ...Option) (*Colony, error) {
	c := &Colony{
		food:     food,
		strategy: strategy,
		schedule: schedule,
		byName:   make(map[string]*Location),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.schedule == nil {
		c.schedule = NewAssaultSchedule(DefaultAttackerArmor)
	}

	c.entry = NewLocation(EntryName, nil)
	c.goal = NewLocation(GoalName, nil)
	c.goal.colony = c
	c.goals = []*Location{c.goal}

	var regErr error
	register := func(l *Location, entry bool) {
		if regErr != nil {
			return
		}
		if _, dup := c.byName[l.name]; dup || l.name == GoalName {
			regErr = errors.Errorf("duplicate location name %q", l.name)
			return
		}
		l.colony = c
		c.places = append(c.places, l)
		c.byName[l.name] = l
		if entry {
			l.entrance = c.entry
			c.entries = append(c.entries, l)
		}
	}
	register(c.entry, false)
	if layout != nil {
		layout(c.goal, register)
	}
	if regErr != nil {
		return nil, regErr
	}

	for a := range c.schedule.AllAttackers() {
		if err := c.entry.AddOccupant(a); err != nil {
			return nil, err
		}
	}
	if c.entry.HasAttackers() && len(c.entries) == 0 {
		return nil, errors.New("layout has no entry locations for the scheduled attackers")
	}
	return c, nil
}

func (c *Colony) Turn() int                  { return c.turn }
func (c *Colony) Food() int                  { return c.food }
func (c *Colony) State() State               { return c.state }
func (c *Colony) Outcome() Outcome           { return c.outcome }
func (c *Colony) Entry() *Location           { return c.entry }
func (c *Colony) Goal() *Location            { return c.goal }
func (c *Colony) Schedule() *AssaultSchedule { return c.schedule }

// Queen returns the colony's true queen, or nil before one is deployed.
func (c *Colony) Queen() *Queen { return c.queen }

// Goals returns every location an attacker must not reach.
func (c *Colony) Goals() []*Location {
	out := make([]*Location, len(c.goals))
	copy(out, c.goals)
	return out
}

// Locations returns registered locations in registration order, hive first.
func (c *Colony) Locations() []*Location {
	out := make([]*Location, len(c.places))
	copy(out, c.places)
	return out
}

// Entries returns the locations attackers are released into.
func (c *Colony) Entries() []*Location {
	out := make([]*Location, len(c.entries))
	copy(out, c.entries)
	return out
}

// Location looks up a deployable location by name.
func (c *Colony) Location(name string) (*Location, error) {
	l, ok := c.byName[name]
	if !ok || l == c.entry {
		return nil, errors.Wrapf(ErrUnknownLocation, "%q", name)
	}
	return l, nil
}

// Defenders returns the visible defender of each location, in registration order.
func (c *Colony) Defenders() []Defender {
	var out []Defender
	for _, l := range c.places {
		if l.defender != nil {
			out = append(out, l.defender)
		}
	}
	return out
}

// Attackers returns every attacker in a registered location, queued ones included.
func (c *Colony) Attackers() []*Attacker {
	var out []*Attacker
	for _, l := range c.places {
		out = append(out, l.attackers...)
	}
	return out
}

// DeployDefender places a new defender of variant at location and charges its cost.
// Deploying a Remover vacates the location instead.
func (c *Colony) DeployDefender(location, variant string) error {
	place, err := c.Location(location)
	if err != nil {
		return err
	}
	kind, err := LookupDefender(variant)
	if err != nil {
		return err
	}
	if kind.Name == RemoverName {
		return c.RemoveDefender(location)
	}
	if c.food < kind.FoodCost {
		return errors.Wrapf(ErrInsufficientFood, "%s costs %d, colony has %d", kind.Name, kind.FoodCost, c.food)
	}

	// 1. Claim the slot, then charge and announce the new defender
	d := kind.New()
	if err := place.settle(d); err != nil {
		return err
	}
	c.food -= kind.FoodCost
	if q, ok := d.(*Queen); ok {
		c.crown(q, place)
	}
	c.emit(EventDeployed, d, place, "")

	// 2. Water claims anything that cannot swim
	place.drown(d)
	return nil
}

// RemoveDefender takes the visible defender out of location. The true queen
// stays put.
func (c *Colony) RemoveDefender(location string) error {
	place, err := c.Location(location)
	if err != nil {
		return err
	}
	d := place.defender
	if d == nil {
		return errors.Wrapf(ErrNotPresent, "no defender in %s", location)
	}
	if err := place.RemoveOccupant(d); err != nil {
		return err
	}
	if d.Location() == nil {
		c.emit(EventRemoved, d, place, "")
	}
	return nil
}

// crown records the first queen as the true one and adds her location to the goals.
func (c *Colony) crown(q *Queen, place *Location) {
	if c.queens == 0 {
		q.permanent = true
		c.queen = q
		c.goals = append(c.goals, place)
	}
	c.queens++
}

// Step runs one turn and reports the outcome. A concluded colony does nothing.
func (c *Colony) Step() Outcome {
	if c.state == Concluded {
		return c.outcome
	}

	c.release()

	if c.strategy != nil {
		c.strategy(c)
	}

	for _, d := range c.Defenders() {
		if d.Armor() > 0 {
			d.Act(c)
		}
	}

	for _, a := range c.Attackers() {
		if a.Armor() > 0 {
			a.Act(c)
		}
	}

	c.turn++

	switch {
	case c.breached():
		c.conclude(Lost)
	case len(c.Attackers()) == 0:
		c.conclude(Won)
	}
	return c.outcome
}

// RunToCompletion steps until the game is decided.
func (c *Colony) RunToCompletion() Outcome {
	for c.Step() == Continuing {
	}
	return c.outcome
}

// release moves this turn's wave from the hive to random entry locations.
func (c *Colony) release() {
	for _, a := range c.schedule.Wave(c.turn) {
		if a.place != c.entry {
			continue
		}
		dest := c.entries[c.rng.Intn(len(c.entries))]
		a.MoveTo(dest)
		c.emit(EventReleased, a, dest, "")
	}
}

func (c *Colony) breached() bool {
	for _, g := range c.goals {
		if g.HasAttackers() {
			return true
		}
	}
	return c.queen != nil && c.queen.armor <= 0
}

func (c *Colony) conclude(o Outcome) {
	c.state = Concluded
	c.outcome = o
	c.emit(EventConcluded, nil, nil, o.String())
}

// pick chooses uniformly among attackers; the slice must not be empty.
func (c *Colony) pick(attackers []*Attacker) *Attacker {
	return attackers[c.rng.Intn(len(attackers))]
}

func (c *Colony) emit(kind EventKind, a Actor, l *Location, detail string) {
	if c.sink == nil {
		return
	}
	ev := Event{Kind: kind, Turn: c.turn, Detail: detail}
	if a != nil {
		ev.Actor = a.Name()
	}
	if l != nil {
		ev.Location = l.name
	}
	c.sink(ev)
}
