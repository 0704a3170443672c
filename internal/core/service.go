package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/mpristools/mediaplayerctl/internal/ports"
	"github.com/mpristools/mediaplayerctl/pkg/mpris"
)

// Service orchestrates the discovery, aggregation, resolution and dispatch
// stages over the session bus.
type Service struct {
	Bus    ports.Bus
	Logger *zap.Logger
}

// Control runs the full pipeline for one playback command. An empty
// discovery result short-circuits: no state queries, no dispatch.
func (s Service) Control(ctx context.Context, command Command) (ControlResult, error) {
	players, err := s.Discover(ctx)
	if err != nil {
		return ControlResult{}, err
	}
	result := ControlResult{Command: command, Players: players}
	if len(players) == 0 {
		return result, nil
	}

	states, err := s.Aggregate(ctx, players)
	if err != nil {
		return ControlResult{}, err
	}

	plan, err := Resolve(command, states)
	if err != nil {
		return ControlResult{}, err
	}
	result.Plan = plan

	if err := s.Dispatch(ctx, plan); err != nil {
		return ControlResult{}, err
	}
	return result, nil
}

// Discover returns the sorted service names of all MPRIS players currently
// registered on the bus.
func (s Service) Discover(ctx context.Context) (PlayerSet, error) {
	registrar, err := s.Bus.Handle(mpris.RegistrarName, mpris.RegistrarPath, mpris.RegistrarInterface)
	if err != nil {
		return nil, WrapError(ExitRegistrarHandle, "create registrar handle", err)
	}

	values, err := registrar.Call(ctx, "ListNames")
	if err != nil {
		return nil, WrapError(ExitBusUnavailable, "list bus names", err)
	}
	names, err := stringSliceReply(values)
	if err != nil {
		return nil, WrapError(ExitBusUnavailable, "list bus names", err)
	}

	players := make(PlayerSet, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, mpris.NamePrefix) {
			players = append(players, name)
		}
	}
	sort.Strings(players)
	s.Logger.Debug("players discovered", zap.Int("count", len(players)))
	return players, nil
}

// Aggregate queries each player's playback status in order. Per-player
// failures are logged and drop the player from the result; only handle
// creation aborts the run.
func (s Service) Aggregate(ctx context.Context, players PlayerSet) (StateMap, error) {
	states := make(StateMap, len(players))
	for _, player := range players {
		properties, err := s.Bus.Handle(player, mpris.ObjectPath, mpris.PropertiesInterface)
		if err != nil {
			return nil, WrapError(ExitPropertyHandle, fmt.Sprintf("create property handle for %s", player), err)
		}

		values, err := properties.Call(ctx, "Get", mpris.PlayerInterface, mpris.PlaybackStatusProperty)
		if err != nil {
			s.Logger.Warn("playback status query failed", zap.String("player", player), zap.Error(err))
			continue
		}
		if len(values) != 1 {
			s.Logger.Warn("unable to determine playback state", zap.String("player", player), zap.Int("values", len(values)))
			continue
		}
		text, ok := values[0].(string)
		if !ok {
			s.Logger.Warn("unable to determine playback state", zap.String("player", player), zap.Any("value", values[0]))
			continue
		}
		state, err := mpris.ParsePlaybackStatus(text)
		if err != nil {
			s.Logger.Warn("unknown playback state", zap.String("player", player), zap.String("status", text))
			continue
		}
		states[player] = state
	}
	return states, nil
}

// Dispatch invokes each planned method on its player, in sorted order.
// Call failures are logged and do not stop the remaining dispatches.
func (s Service) Dispatch(ctx context.Context, plan ActionPlan) error {
	players := make([]string, 0, len(plan))
	for player := range plan {
		players = append(players, player)
	}
	sort.Strings(players)

	for _, player := range players {
		method := plan[player]
		if method == "" {
			continue
		}
		control, err := s.Bus.Handle(player, mpris.ObjectPath, mpris.PlayerInterface)
		if err != nil {
			return WrapError(ExitControlHandle, fmt.Sprintf("create control handle for %s", player), err)
		}
		s.Logger.Debug("dispatching", zap.String("player", player), zap.String("method", string(method)))
		if _, err := control.Call(ctx, string(method)); err != nil {
			s.Logger.Warn("control call failed", zap.String("player", player), zap.String("method", string(method)), zap.Error(err))
		}
	}
	return nil
}

// ListPlayers returns the discovered players for presentation.
func (s Service) ListPlayers(ctx context.Context) (PlayersResult, error) {
	players, err := s.Discover(ctx)
	if err != nil {
		return PlayersResult{}, err
	}
	return PlayersResult{Players: players}, nil
}

// Status reports each discovered player's playback state.
func (s Service) Status(ctx context.Context) (StatusResult, error) {
	players, err := s.Discover(ctx)
	if err != nil {
		return StatusResult{}, err
	}
	result := StatusResult{Players: players, States: map[string]string{}}
	if len(players) == 0 {
		return result, nil
	}
	states, err := s.Aggregate(ctx, players)
	if err != nil {
		return StatusResult{}, err
	}
	for player, state := range states {
		result.States[player] = state.String()
	}
	return result, nil
}

// stringSliceReply extracts the single string-array value of a registrar
// ListNames reply.
func stringSliceReply(values []any) ([]string, error) {
	if len(values) != 1 {
		return nil, fmt.Errorf("expected 1 reply value, got %d", len(values))
	}
	names, ok := values[0].([]string)
	if !ok {
		return nil, fmt.Errorf("expected a string array, got %T", values[0])
	}
	return names, nil
}
