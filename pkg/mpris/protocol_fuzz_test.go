package mpris

import "testing"

func FuzzParsePlaybackStatus(f *testing.F) {
	f.Add("Playing")
	f.Add("Paused")
	f.Add("Stopped")
	f.Add("")
	f.Add("Buffering")

	f.Fuzz(func(t *testing.T, text string) {
		state, err := ParsePlaybackStatus(text)
		if err != nil {
			return
		}
		if state != Playing && state != Paused && state != Stopped {
			t.Fatalf("parse %q: state %v outside the defined set", text, state)
		}
		if state.String() != text {
			t.Fatalf("parse %q: state spells %q", text, state.String())
		}
	})
}
