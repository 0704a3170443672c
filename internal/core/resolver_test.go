package core

import (
	"reflect"
	"testing"

	"github.com/mpristools/mediaplayerctl/pkg/mpris"
)

func TestResolvePause(t *testing.T) {
	states := StateMap{
		"org.mpris.MediaPlayer2.a": mpris.Playing,
		"org.mpris.MediaPlayer2.b": mpris.Paused,
		"org.mpris.MediaPlayer2.c": mpris.Playing,
		"org.mpris.MediaPlayer2.d": mpris.Stopped,
	}
	plan, err := Resolve(CommandPause, states)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	expected := ActionPlan{
		"org.mpris.MediaPlayer2.a": mpris.MethodPause,
		"org.mpris.MediaPlayer2.c": mpris.MethodPause,
	}
	if !reflect.DeepEqual(plan, expected) {
		t.Fatalf("expected %v got %v", expected, plan)
	}
}

func TestResolvePauseNothingPlaying(t *testing.T) {
	states := StateMap{
		"org.mpris.MediaPlayer2.a": mpris.Paused,
		"org.mpris.MediaPlayer2.b": mpris.Stopped,
	}
	plan, err := Resolve(CommandPause, states)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(plan) != 0 {
		t.Fatalf("expected empty plan, got %v", plan)
	}
}

func TestResolveStop(t *testing.T) {
	states := StateMap{
		"org.mpris.MediaPlayer2.a": mpris.Playing,
		"org.mpris.MediaPlayer2.b": mpris.Paused,
		"org.mpris.MediaPlayer2.c": mpris.Stopped,
	}
	plan, err := Resolve(CommandStop, states)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	expected := ActionPlan{
		"org.mpris.MediaPlayer2.a": mpris.MethodStop,
		"org.mpris.MediaPlayer2.b": mpris.MethodStop,
	}
	if !reflect.DeepEqual(plan, expected) {
		t.Fatalf("expected %v got %v", expected, plan)
	}
}

func TestResolvePlay(t *testing.T) {
	tests := []struct {
		name     string
		states   StateMap
		expected ActionPlan
	}{
		{
			name: "noop while playing",
			states: StateMap{
				"org.mpris.MediaPlayer2.a": mpris.Playing,
				"org.mpris.MediaPlayer2.b": mpris.Paused,
			},
			expected: ActionPlan{},
		},
		{
			name: "prefers paused over stopped",
			states: StateMap{
				"org.mpris.MediaPlayer2.a": mpris.Stopped,
				"org.mpris.MediaPlayer2.b": mpris.Paused,
			},
			expected: ActionPlan{"org.mpris.MediaPlayer2.b": mpris.MethodPlay},
		},
		{
			name: "falls back to stopped",
			states: StateMap{
				"org.mpris.MediaPlayer2.a": mpris.Stopped,
				"org.mpris.MediaPlayer2.b": mpris.Stopped,
			},
			expected: ActionPlan{"org.mpris.MediaPlayer2.a": mpris.MethodPlay},
		},
		{
			name:     "no candidates",
			states:   StateMap{},
			expected: ActionPlan{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			plan, err := Resolve(CommandPlay, test.states)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if !reflect.DeepEqual(plan, test.expected) {
				t.Fatalf("expected %v got %v", test.expected, plan)
			}
			if len(plan) > 1 {
				t.Fatalf("play must target at most one player, got %v", plan)
			}
		})
	}
}

func TestResolvePlayPauseMatchesPauseOrPlay(t *testing.T) {
	maps := []StateMap{
		{"org.mpris.MediaPlayer2.a": mpris.Playing, "org.mpris.MediaPlayer2.b": mpris.Paused},
		{"org.mpris.MediaPlayer2.a": mpris.Paused, "org.mpris.MediaPlayer2.b": mpris.Stopped},
		{"org.mpris.MediaPlayer2.a": mpris.Stopped},
		{},
	}

	for _, states := range maps {
		toggled, err := Resolve(CommandPlayPause, states)
		if err != nil {
			t.Fatalf("resolve playpause: %v", err)
		}
		anyPlaying := len(playersIn(states, mpris.Playing)) > 0
		equivalent := CommandPlay
		if anyPlaying {
			equivalent = CommandPause
		}
		expected, err := Resolve(equivalent, states)
		if err != nil {
			t.Fatalf("resolve %s: %v", equivalent, err)
		}
		if !reflect.DeepEqual(toggled, expected) {
			t.Fatalf("playpause %v: expected %v got %v", states, expected, toggled)
		}
	}
}

func TestResolveNextPrev(t *testing.T) {
	states := StateMap{
		"org.mpris.MediaPlayer2.b": mpris.Playing,
		"org.mpris.MediaPlayer2.a": mpris.Playing,
		"org.mpris.MediaPlayer2.c": mpris.Paused,
	}

	plan, err := Resolve(CommandNext, states)
	if err != nil {
		t.Fatalf("resolve next: %v", err)
	}
	expected := ActionPlan{"org.mpris.MediaPlayer2.a": mpris.MethodNext}
	if !reflect.DeepEqual(plan, expected) {
		t.Fatalf("expected %v got %v", expected, plan)
	}

	plan, err = Resolve(CommandPrev, states)
	if err != nil {
		t.Fatalf("resolve prev: %v", err)
	}
	expected = ActionPlan{"org.mpris.MediaPlayer2.a": mpris.MethodPrevious}
	if !reflect.DeepEqual(plan, expected) {
		t.Fatalf("expected %v got %v", expected, plan)
	}

	for _, command := range []Command{CommandNext, CommandPrev} {
		plan, err := Resolve(command, StateMap{"org.mpris.MediaPlayer2.a": mpris.Paused})
		if err != nil {
			t.Fatalf("resolve %s: %v", command, err)
		}
		if len(plan) != 0 {
			t.Fatalf("%s with nothing playing: expected empty plan, got %v", command, plan)
		}
	}
}

func TestResolveUnknownCommand(t *testing.T) {
	_, err := Resolve(Command("rewind"), StateMap{})
	if err == nil {
		t.Fatalf("expected error for unknown command")
	}
	if ExitCode(err) != ExitUsage {
		t.Fatalf("expected usage exit code, got %d", ExitCode(err))
	}
}

func TestResolveDeterministic(t *testing.T) {
	states := StateMap{
		"org.mpris.MediaPlayer2.spotify": mpris.Paused,
		"org.mpris.MediaPlayer2.mpv":     mpris.Paused,
		"org.mpris.MediaPlayer2.vlc":     mpris.Stopped,
	}
	for _, command := range []Command{CommandPlay, CommandPause, CommandPlayPause, CommandStop, CommandNext, CommandPrev} {
		first, err := Resolve(command, states)
		if err != nil {
			t.Fatalf("resolve %s: %v", command, err)
		}
		second, err := Resolve(command, states)
		if err != nil {
			t.Fatalf("resolve %s: %v", command, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("%s not deterministic: %v vs %v", command, first, second)
		}
	}
}
