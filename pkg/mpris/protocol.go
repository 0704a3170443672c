// Package mpris defines the bus-facing constants and value types of the
// MPRIS media player protocol surface used by the controller.
package mpris

import "fmt"

// NamePrefix is the exact service name prefix shared by every MPRIS player.
const NamePrefix = "org.mpris.MediaPlayer2."

// Well-known addressing for player objects and the bus registrar.
const (
	ObjectPath          = "/org/mpris/MediaPlayer2"
	PlayerInterface     = "org.mpris.MediaPlayer2.Player"
	PropertiesInterface = "org.freedesktop.DBus.Properties"

	RegistrarName      = "org.freedesktop.DBus"
	RegistrarPath      = "/org/freedesktop/DBus"
	RegistrarInterface = "org.freedesktop.DBus"
)

// PlaybackStatusProperty is the player property holding the textual state.
const PlaybackStatusProperty = "PlaybackStatus"

// PlaybackState is one of the three playback states a player reports.
type PlaybackState int

const (
	Stopped PlaybackState = iota
	Paused
	Playing
)

// String returns the wire spelling of the state.
func (s PlaybackState) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Paused:
		return "Paused"
	case Playing:
		return "Playing"
	default:
		return fmt.Sprintf("PlaybackState(%d)", int(s))
	}
}

// ParsePlaybackStatus maps a PlaybackStatus property value to a state.
// Anything outside the three defined spellings is an error; case matters.
func ParsePlaybackStatus(text string) (PlaybackState, error) {
	switch text {
	case "Playing":
		return Playing, nil
	case "Paused":
		return Paused, nil
	case "Stopped":
		return Stopped, nil
	default:
		return Stopped, fmt.Errorf("unknown playback status %q", text)
	}
}

// Method is a no-argument control method on the player interface.
type Method string

const (
	MethodPlay     Method = "Play"
	MethodPause    Method = "Pause"
	MethodStop     Method = "Stop"
	MethodNext     Method = "Next"
	MethodPrevious Method = "Previous"
)
