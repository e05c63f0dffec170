package hog

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Strategy returns how many dice to roll given the player's and opponent's scores.
type Strategy func(score, opponentScore int) int

const (
	BaselineNumRolls = 5
	BaconMargin      = 8
)

// AlwaysRoll ignores the scores and rolls n dice.
func AlwaysRoll(n int) Strategy {
	return func(score, opponentScore int) int { return n }
}

// BaconStrategy takes free bacon when it is worth at least BaconMargin points.
func BaconStrategy(score, opponentScore int) int {
	if FreeBacon(opponentScore) >= BaconMargin {
		return 0
	}
	return BaselineNumRolls
}

// SwapStrategy takes free bacon when it triggers a beneficial swap, avoids it
// when it would trigger a harmful one, and otherwise plays like BaconStrategy.
func SwapStrategy(score, opponentScore int) int {
	bacon := FreeBacon(opponentScore)
	next := score + bacon
	switch {
	case next*2 == opponentScore:
		return 0
	case opponentScore*2 == next:
		return BaselineNumRolls
	case bacon >= BaconMargin:
		return 0
	default:
		return BaselineNumRolls
	}
}

// ParseStrategy resolves "bacon", "swap" or "always:N".
func ParseStrategy(name string) (Strategy, error) {
	switch {
	case name == "bacon":
		return BaconStrategy, nil
	case name == "swap":
		return SwapStrategy, nil
	case strings.HasPrefix(name, "always:"):
		n, err := strconv.Atoi(strings.TrimPrefix(name, "always:"))
		if err != nil || n < 0 || n > MaxRolls {
			return nil, errors.Errorf("bad roll count in %q", name)
		}
		return AlwaysRoll(n), nil
	default:
		return nil, errors.Errorf("unknown strategy %q", name)
	}
}
