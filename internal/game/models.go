/*
Package game
File: models.go
Description:
    Defines the data structures exchanged with the outside world: the
    'colony.yaml' configuration schema and the JSON views of a running colony.

    No logic is performed here; this file is strictly for type definitions.
*/

package game

// Config is the root configuration struct, mapping to the entire 'colony.yaml' file.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Colony ColonyConfig `yaml:"colony"`
}

// ServerConfig controls the HTTP/WebSocket surface and the turn heartbeat.
type ServerConfig struct {
	Addr                string `yaml:"addr"`                  // Listen address (e.g., ":8081")
	TurnIntervalSeconds int    `yaml:"turn_interval_seconds"` // Heartbeat period; 0 means turns only advance on request
}

// ColonyConfig describes one game.
type ColonyConfig struct {
	Food    int           `yaml:"food" json:"food"`       // Starting food
	Seed    int64         `yaml:"seed" json:"seed"`       // Random seed; 0 seeds from the clock
	Layout  LayoutConfig  `yaml:"layout" json:"layout"`   // Tunnel geometry
	Assault AssaultConfig `yaml:"assault" json:"assault"` // When attackers arrive
}

// LayoutConfig selects a tunnel layout.
type LayoutConfig struct {
	Kind          string `yaml:"kind" json:"kind"`                     // "test", "test_multi", "dry" or "mixed"
	Tunnels       int    `yaml:"tunnels" json:"tunnels"`               // Overrides the kind's tunnel count
	Length        int    `yaml:"length" json:"length"`                 // Overrides the tunnel length
	MoatFrequency int    `yaml:"moat_frequency" json:"moat_frequency"` // Every n-th step is water ("mixed" only)
}

// AssaultConfig selects a preset or lists explicit waves.
type AssaultConfig struct {
	Preset            string       `yaml:"preset" json:"preset"`                           // "test", "full", "insane" or "none"
	AttackerArmor     int          `yaml:"attacker_armor" json:"attacker_armor"`           // Armor for explicit waves
	AttackerWaterSafe *bool        `yaml:"attacker_water_safe" json:"attacker_water_safe"` // Defaults to true
	Waves             []WaveConfig `yaml:"waves" json:"waves"`                             // Used instead of the preset when set
}

// WaveConfig is one entry of an explicit assault.
type WaveConfig struct {
	Turn  int `yaml:"turn" json:"turn"`
	Count int `yaml:"count" json:"count"`
}

// Snapshot is the JSON view of a colony broadcast to clients.
type Snapshot struct {
	SessionID       string         `json:"session_id,omitempty"`
	Turn            int            `json:"turn"`
	Food            int            `json:"food"`
	State           string         `json:"state"`
	Outcome         string         `json:"outcome"`
	QueuedAttackers int            `json:"queued_attackers"` // Still waiting in the hive
	Goals           []string       `json:"goals"`
	Locations       []LocationView `json:"locations"`
}

// LocationView describes one location and its occupants.
type LocationView struct {
	Name      string         `json:"name"`
	Water     bool           `json:"water"`
	Exit      string         `json:"exit,omitempty"`
	Entry     bool           `json:"entry"` // Attackers are released here
	Defender  *DefenderView  `json:"defender,omitempty"`
	Attackers []AttackerView `json:"attackers"`
}

// DefenderView describes a placed defender.
type DefenderView struct {
	Variant   string        `json:"variant"`
	Armor     int           `json:"armor"`
	Damage    int           `json:"damage"`
	Contained *DefenderView `json:"contained,omitempty"`
}

// AttackerView describes an attacker in play.
type AttackerView struct {
	ID    int `json:"id"`
	Armor int `json:"armor"`
}
