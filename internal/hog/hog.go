/*
Package hog
File: hog.go
Description:
    The rules of Hog, a two-player dice race to GoalScore.

    - Pig out: a turn that rolls any 1 scores 1.
    - Free bacon: rolling zero dice scores one more than the opponent's
      highest digit.
    - Hog wild: when the two scores sum to a multiple of 7 the player rolls
      four-sided dice.
    - Swine swap: after a turn, if the mover's score is exactly half the
      other's, the scores trade places.
*/

package hog

import "github.com/pkg/errors"

const (
	GoalScore = 100
	MaxRolls  = 10
)

// ErrInvalidRolls is returned for a roll count outside the rules.
var ErrInvalidRolls = errors.New("invalid number of rolls")

// RollDice rolls dice numRolls times and returns the sum, or 1 if any roll was a 1.
// dice is called exactly numRolls times.
func RollDice(numRolls int, dice Dice) (int, error) {
	if numRolls < 1 {
		return 0, errors.Wrapf(ErrInvalidRolls, "must roll at least once, got %d", numRolls)
	}
	total, pigOut := 0, false
	for i := 0; i < numRolls; i++ {
		outcome := dice()
		if outcome == 1 {
			pigOut = true
		}
		total += outcome
	}
	if pigOut {
		return 1, nil
	}
	return total, nil
}

// FreeBacon is the score for rolling zero dice against opponentScore.
func FreeBacon(opponentScore int) int {
	tens, ones := opponentScore/10%10, opponentScore%10
	return max(tens, ones) + 1
}

// TakeTurn scores one turn of numRolls dice; zero rolls takes free bacon.
func TakeTurn(numRolls, opponentScore int, dice Dice) (int, error) {
	if numRolls < 0 || numRolls > MaxRolls {
		return 0, errors.Wrapf(ErrInvalidRolls, "%d is outside 0..%d", numRolls, MaxRolls)
	}
	if numRolls == 0 {
		return FreeBacon(opponentScore), nil
	}
	return RollDice(numRolls, dice)
}

// SelectDice picks four-sided dice when the scores sum to a multiple of 7.
func SelectDice(score, opponentScore int, set DiceSet) Dice {
	if IsFourSided(score, opponentScore) {
		return set.Four
	}
	return set.Six
}

// IsFourSided reports whether SelectDice would hand out the four-sided die.
func IsFourSided(score, opponentScore int) bool {
	return (score+opponentScore)%7 == 0
}

// Other returns the other player, for a player numbered 0 or 1.
func Other(who int) int {
	return 1 - who
}

// Play runs a game to goal and returns player 0's and player 1's final scores.
func Play(strategy0, strategy1 Strategy, goal int, set DiceSet) (int, int, error) {
	scores := [2]int{}
	strategies := [2]Strategy{strategy0, strategy1}
	who := 0

	for {
		me, them := who, Other(who)
		rolls := strategies[me](scores[me], scores[them])
		dice := SelectDice(scores[me], scores[them], set)

		points, err := TakeTurn(rolls, scores[them], dice)
		if err != nil {
			return scores[0], scores[1], errors.Wrapf(err, "player %d", me)
		}
		scores[me] += points

		if scores[me]*2 == scores[them] {
			scores[me], scores[them] = scores[them], scores[me]
		}
		if scores[me] >= goal {
			return scores[0], scores[1], nil
		}
		who = them
	}
}

// Winner returns 0 if player 0 finished ahead, otherwise 1.
func Winner(score0, score1 int) int {
	if score0 > score1 {
		return 0
	}
	return 1
}
