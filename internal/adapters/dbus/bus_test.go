package dbus

import "testing"

func TestHandleRejectsBadAddresses(t *testing.T) {
	conn := &Conn{}

	if _, err := conn.Handle("", "/org/mpris/MediaPlayer2", "org.mpris.MediaPlayer2.Player"); err == nil {
		t.Fatalf("expected error for empty service")
	}
	if _, err := conn.Handle("org.mpris.MediaPlayer2.vlc", "not-a-path", "org.mpris.MediaPlayer2.Player"); err == nil {
		t.Fatalf("expected error for relative path")
	}
	if _, err := conn.Handle("org.mpris.MediaPlayer2.vlc", "/org/mpris/MediaPlayer2", ""); err == nil {
		t.Fatalf("expected error for empty interface")
	}
}
