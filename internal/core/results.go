package core

import "github.com/mpristools/mediaplayerctl/pkg/mpris"

// PlayerSet holds the discovered player service names, sorted.
type PlayerSet []string

// StateMap maps a player service name to its playback state. Players whose
// state could not be determined have no entry.
type StateMap map[string]mpris.PlaybackState

// ActionPlan maps a player service name to the control method to invoke.
// Players without an entry receive no call.
type ActionPlan map[string]mpris.Method

// PlayersResult holds the discovered players.
type PlayersResult struct {
	Players PlayerSet `json:"players"`
}

// StatusResult holds the discovered players and their observed states.
// Players present in Players but absent from States failed their query.
type StatusResult struct {
	Players PlayerSet         `json:"players"`
	States  map[string]string `json:"states"`
}

// ControlResult reports what one playback command resolved to.
type ControlResult struct {
	Command Command    `json:"command"`
	Players PlayerSet  `json:"players"`
	Plan    ActionPlan `json:"plan,omitempty"`
}

// NoPlayers reports whether discovery came up empty.
func (r ControlResult) NoPlayers() bool { return len(r.Players) == 0 }
