/*
Package game
File: defender.go
Description:
    Defines the Defender contract and the static variant registry.

    Every variant is its own type implementing Defender. The registry maps a
    variant name to its stats and constructor; it is the only place deployable
    variants are declared.
*/

package game

import "github.com/pkg/errors"

// Defender is a player-placed unit.
type Defender interface {
	Actor

	Kind() *DefenderKind
	FoodCost() int
	Damage() int
	BlocksPath() bool
	IsContainer() bool

	// CanContain reports whether this defender can hold other right now.
	CanContain(other Defender) bool

	// Contained returns the defender held inside this one, or nil.
	Contained() Defender

	contain(d Defender)
	release()
	doubleDamage()
}

// DefenderKind holds the declared stats of one variant.
type DefenderKind struct {
	Name        string `json:"name"`
	FoodCost    int    `json:"food_cost"`
	Armor       int    `json:"armor"`
	Damage      int    `json:"damage"`
	MinRange    int    `json:"min_range,omitempty"`
	MaxRange    int    `json:"max_range,omitempty"`
	BlocksPath  bool   `json:"blocks_path"`
	Container   bool   `json:"container"`
	WaterSafe   bool   `json:"water_safe"`
	Implemented bool   `json:"implemented"`

	build func(k *DefenderKind) Defender
}

// New constructs a fresh, unplaced defender of this kind.
func (k *DefenderKind) New() Defender {
	return k.build(k)
}

// Variant names.
const (
	HarvesterName = "Harvester"
	ThrowerName   = "Thrower"
	LongName      = "Long"
	ShortName     = "Short"
	ScubaName     = "Scuba"
	FireName      = "Fire"
	WallName      = "Wall"
	NinjaName     = "Ninja"
	HungryName    = "Hungry"
	BodyguardName = "Bodyguard"
	QueenName     = "Queen"
	RemoverName   = "Remover"
)

// defenderKinds is the registry, in display order.
var defenderKinds = []*DefenderKind{
	{Name: HarvesterName, FoodCost: 2, Armor: 1, BlocksPath: true, Implemented: true, build: newHarvester},
	{Name: ThrowerName, FoodCost: 4, Armor: 1, Damage: 1, MaxRange: 10, BlocksPath: true, Implemented: true, build: newThrower},
	{Name: LongName, FoodCost: 3, Armor: 1, Damage: 1, MinRange: 4, MaxRange: 10, BlocksPath: true, Implemented: true, build: newThrower},
	{Name: ShortName, FoodCost: 3, Armor: 1, Damage: 1, MaxRange: 2, BlocksPath: true, Implemented: true, build: newThrower},
	{Name: ScubaName, FoodCost: 5, Armor: 1, Damage: 1, MaxRange: 10, BlocksPath: true, WaterSafe: true, Implemented: true, build: newThrower},
	{Name: FireName, FoodCost: 4, Armor: 1, Damage: 3, BlocksPath: true, Implemented: true, build: newFire},
	{Name: WallName, FoodCost: 4, Armor: 4, BlocksPath: true, Implemented: true, build: newWall},
	{Name: NinjaName, FoodCost: 6, Armor: 1, Damage: 1, Implemented: true, build: newNinja},
	{Name: HungryName, FoodCost: 4, Armor: 1, BlocksPath: true, Implemented: true, build: newHungry},
	{Name: BodyguardName, FoodCost: 4, Armor: 2, BlocksPath: true, Container: true, Implemented: true, build: newBodyguard},
	{Name: QueenName, FoodCost: 6, Armor: 1, Damage: 1, MaxRange: 10, BlocksPath: true, WaterSafe: true, Implemented: true, build: newQueen},
	{Name: RemoverName, Armor: 0, BlocksPath: true, Implemented: true, build: newRemover},
}

var kindsByName = func() map[string]*DefenderKind {
	m := make(map[string]*DefenderKind, len(defenderKinds))
	for _, k := range defenderKinds {
		m[k.Name] = k
	}
	return m
}()

// LookupDefender returns the deployable kind registered under name.
func LookupDefender(name string) (*DefenderKind, error) {
	k, ok := kindsByName[name]
	if !ok || !k.Implemented {
		return nil, errors.Wrapf(ErrUnknownVariant, "%q", name)
	}
	return k, nil
}

// DefenderKinds lists the deployable variants in registry order.
func DefenderKinds() []*DefenderKind {
	out := make([]*DefenderKind, 0, len(defenderKinds))
	for _, k := range defenderKinds {
		if k.Implemented {
			out = append(out, k)
		}
	}
	return out
}

// defender is embedded by every variant. self points back at the outer
// variant so expiry removes the value the location actually holds.
type defender struct {
	unit
	self   Defender
	kind   *DefenderKind
	damage int
}

func (d *defender) init(self Defender, k *DefenderKind) {
	d.self = self
	d.kind = k
	d.armor = k.Armor
	d.damage = k.Damage
}

func (d *defender) Name() string                   { return d.kind.Name }
func (d *defender) Kind() *DefenderKind            { return d.kind }
func (d *defender) FoodCost() int                  { return d.kind.FoodCost }
func (d *defender) Damage() int                    { return d.damage }
func (d *defender) BlocksPath() bool               { return d.kind.BlocksPath }
func (d *defender) WaterSafe() bool                { return d.kind.WaterSafe }
func (d *defender) IsContainer() bool              { return d.kind.Container }
func (d *defender) CanContain(other Defender) bool { return false }
func (d *defender) Contained() Defender            { return nil }
func (d *defender) Act(c *Colony)                  {}
func (d *defender) contain(Defender)               {}
func (d *defender) release()                       {}
func (d *defender) doubleDamage()                  { d.damage *= 2 }

func (d *defender) ApplyDamage(amount int) {
	if d.wound(amount) {
		expire(d.self)
	}
}
