package output

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mpristools/mediaplayerctl/internal/core"
)

// HumanPrinter prints human-readable output.
type HumanPrinter struct{}

// Print renders human output.
func (HumanPrinter) Print(v any) error {
	switch data := v.(type) {
	case core.ControlResult:
		return printControl(data)
	case core.PlayersResult:
		return printPlayers(data)
	case core.StatusResult:
		return printStatus(data)
	default:
		_, err := fmt.Fprintln(os.Stdout, "ok")
		return err
	}
}

func printControl(result core.ControlResult) error {
	if result.NoPlayers() {
		_, err := fmt.Fprintln(os.Stdout, "no player found.")
		return err
	}
	// Successful control runs stay quiet.
	return nil
}

func printPlayers(result core.PlayersResult) error {
	if len(result.Players) == 0 {
		_, err := fmt.Fprintln(os.Stdout, "no player found.")
		return err
	}
	for _, player := range result.Players {
		if _, err := fmt.Fprintln(os.Stdout, player); err != nil {
			return err
		}
	}
	return nil
}

func printStatus(result core.StatusResult) error {
	if len(result.Players) == 0 {
		_, err := fmt.Fprintln(os.Stdout, "no player found.")
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "PLAYER\tSTATE"); err != nil {
		return err
	}
	for _, player := range result.Players {
		state, ok := result.States[player]
		if !ok {
			state = "-"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", player, state); err != nil {
			return err
		}
	}
	return tw.Flush()
}
