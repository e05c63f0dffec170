/*
Package game
File: layout.go
Description:
    Layouts build the tunnels of a colony. Each tunnel is a chain of
    locations ending at the nest; its far end is where attackers enter.
*/

package game

import "fmt"

// Layout creates locations leading to goal and hands each to register.
// entry marks a location attackers can be released into.
type Layout func(goal *Location, register func(l *Location, entry bool))

// Default tunnel geometry.
const (
	DefaultTunnelLength  = 8
	DefaultMoatFrequency = 3
)

// MixedLayout builds tunnels of length steps, turning every moatFrequency-th
// step into water. A frequency of zero keeps every tunnel dry.
func MixedLayout(tunnels, length, moatFrequency int) Layout {
	return func(goal *Location, register func(*Location, bool)) {
		for tunnel := 0; tunnel < tunnels; tunnel++ {
			exit := goal
			for step := 0; step < length; step++ {
				if moatFrequency != 0 && (step+1)%moatFrequency == 0 {
					exit = NewWater(fmt.Sprintf("water_%d_%d", tunnel, step), exit)
				} else {
					exit = NewLocation(fmt.Sprintf("tunnel_%d_%d", tunnel, step), exit)
				}
				register(exit, step == length-1)
			}
		}
	}
}

// TestLayout is a single dry tunnel.
func TestLayout() Layout { return MixedLayout(1, DefaultTunnelLength, 0) }

// TestLayoutMultiTunnels is two dry tunnels.
func TestLayoutMultiTunnels() Layout { return MixedLayout(2, DefaultTunnelLength, 0) }

// DryLayout is three dry tunnels.
func DryLayout() Layout { return MixedLayout(3, DefaultTunnelLength, 0) }

// WetLayout is three tunnels with a moat every third step.
func WetLayout() Layout { return MixedLayout(3, DefaultTunnelLength, DefaultMoatFrequency) }
