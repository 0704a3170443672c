package core

import (
	"fmt"
	"sort"

	"github.com/mpristools/mediaplayerctl/pkg/mpris"
)

// Command is one abstract playback command.
type Command string

const (
	CommandPlay      Command = "play"
	CommandPause     Command = "pause"
	CommandPlayPause Command = "playpause"
	CommandStop      Command = "stop"
	CommandNext      Command = "next"
	CommandPrev      Command = "prev"
)

// Resolve maps one command and the observed player states to the control
// methods to invoke. Pure: no I/O, identical inputs yield identical plans.
//
// Single-target commands (play, next, prev) pick the lexicographically
// smallest candidate service name.
func Resolve(command Command, states StateMap) (ActionPlan, error) {
	playing := playersIn(states, mpris.Playing)
	plan := ActionPlan{}

	switch command {
	case CommandPlay:
		if len(playing) == 0 {
			resolvePlay(plan, states)
		}
	case CommandPause:
		for _, player := range playing {
			plan[player] = mpris.MethodPause
		}
	case CommandPlayPause:
		if len(playing) == 0 {
			resolvePlay(plan, states)
		} else {
			for _, player := range playing {
				plan[player] = mpris.MethodPause
			}
		}
	case CommandStop:
		for _, player := range playersIn(states, mpris.Playing, mpris.Paused) {
			plan[player] = mpris.MethodStop
		}
	case CommandNext:
		if len(playing) > 0 {
			plan[playing[0]] = mpris.MethodNext
		}
	case CommandPrev:
		if len(playing) > 0 {
			plan[playing[0]] = mpris.MethodPrevious
		}
	default:
		return nil, &CLIError{Code: ExitUsage, Msg: fmt.Sprintf("unknown command %q", command)}
	}

	return plan, nil
}

// resolvePlay targets exactly one non-playing player, preferring a paused
// one over a stopped one. No candidate means no action.
func resolvePlay(plan ActionPlan, states StateMap) {
	candidates := playersIn(states, mpris.Paused)
	if len(candidates) == 0 {
		candidates = playersIn(states, mpris.Stopped)
	}
	if len(candidates) > 0 {
		plan[candidates[0]] = mpris.MethodPlay
	}
}

// playersIn returns the players whose state is in want, sorted by name.
func playersIn(states StateMap, want ...mpris.PlaybackState) []string {
	players := make([]string, 0, len(states))
	for player, state := range states {
		for _, candidate := range want {
			if state == candidate {
				players = append(players, player)
				break
			}
		}
	}
	sort.Strings(players)
	return players
}
