package main

import "testing"

func TestRootCommandTree(t *testing.T) {
	root := newRootCommand()

	expected := []string{"play", "pause", "playpause", "stop", "next", "prev", "ls", "status"}
	for _, name := range expected {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Fatalf("missing command %q", name)
		}
	}

	cmd, _, err := root.Find([]string{"toggle"})
	if err != nil || cmd.Name() != "playpause" {
		t.Fatalf("expected toggle to alias playpause")
	}
}
