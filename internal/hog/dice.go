/*
Package hog
File: dice.go
Description:
    Dice are zero-argument functions returning one outcome per call.
*/

package hog

import (
	"fmt"
	"math/rand"
)

// Dice produces one roll outcome per call.
type Dice func() int

// FairDice returns a die with the given number of sides backed by rng.
// It panics if sides is less than one.
func FairDice(sides int, rng *rand.Rand) Dice {
	if sides < 1 {
		panic(fmt.Sprintf("hog: a die needs at least one side, got %d", sides))
	}
	return func() int { return rng.Intn(sides) + 1 }
}

// TestDice cycles through outcomes forever, for deterministic games.
// It panics without outcomes.
func TestDice(outcomes ...int) Dice {
	if len(outcomes) == 0 {
		panic("hog: TestDice needs at least one outcome")
	}
	i := 0
	return func() int {
		o := outcomes[i%len(outcomes)]
		i++
		return o
	}
}

// DiceSet is the pair of dice a game switches between.
type DiceSet struct {
	Six  Dice
	Four Dice
}

// FairDiceSet returns six- and four-sided dice sharing rng.
func FairDiceSet(rng *rand.Rand) DiceSet {
	return DiceSet{Six: FairDice(6, rng), Four: FairDice(4, rng)}
}
