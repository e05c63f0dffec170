/*
Package game
File: errors.go
Description:
    The error taxonomy of the colony engine. Callers match these with errors.Is;
    the engine wraps them with the location or variant involved.
*/

package game

import "github.com/pkg/errors"

var (
	// ErrInsufficientFood rejects a deployment the colony cannot pay for. No state changes.
	ErrInsufficientFood = errors.New("insufficient food")

	// ErrUnknownLocation is returned for a location name the colony never registered.
	ErrUnknownLocation = errors.New("unknown location")

	// ErrUnknownVariant is returned for a defender variant missing from the registry.
	ErrUnknownVariant = errors.New("unknown defender variant")

	// ErrOccupancyConflict means a second uncontained defender was pushed into a location.
	ErrOccupancyConflict = errors.New("occupancy conflict")

	// ErrNotPresent means an actor was removed from a location it does not occupy.
	ErrNotPresent = errors.New("actor not present")
)

// mustNot panics on invariant breaches raised mid-turn.
func mustNot(err error) {
	if err != nil {
		panic(err)
	}
}
