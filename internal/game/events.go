/*
Package game
File: events.go
Description:
    Events are the colony's outward record of what happened during a turn.
    The core never logs; it hands each Event to the sink set with
    WithEventSink, and the server logs and broadcasts them.
*/

package game

// EventKind names something observable that happened in the colony.
type EventKind string

const (
	EventReleased  EventKind = "released"
	EventDeployed  EventKind = "deployed"
	EventRemoved   EventKind = "removed"
	EventExpired   EventKind = "expired"
	EventRejected  EventKind = "rejected"
	EventConcluded EventKind = "concluded"
)

// Event is emitted to the colony's sink as the simulation runs.
type Event struct {
	Kind     EventKind `json:"kind"`
	Turn     int       `json:"turn"`
	Actor    string    `json:"actor,omitempty"`
	Location string    `json:"location,omitempty"`
	Detail   string    `json:"detail,omitempty"`
}
