package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mpristools/mediaplayerctl/internal/core"
)

func runControl(cmd *cobra.Command, command core.Command) error {
	app := fromContext(cmd)
	ctx, cancel := withTimeout(context.Background(), app.timeout)
	defer cancel()

	result, err := app.service.Control(ctx, command)
	if err != nil {
		return err
	}
	return app.printer.Print(result)
}

func playCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start playback on one idle player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runControl(cmd, core.CommandPlay)
		},
	}
}

func pauseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause every playing player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runControl(cmd, core.CommandPause)
		},
	}
}

func playPauseCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "playpause",
		Aliases: []string{"toggle"},
		Short:   "Pause playing players, or start one idle player",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runControl(cmd, core.CommandPlayPause)
		},
	}
}

func stopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop every playing or paused player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runControl(cmd, core.CommandStop)
		},
	}
}

func nextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Skip to the next track on one playing player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runControl(cmd, core.CommandNext)
		},
	}
}

func prevCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prev",
		Short: "Skip to the previous track on one playing player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runControl(cmd, core.CommandPrev)
		},
	}
}
