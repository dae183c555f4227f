package main

import "testing"

func TestCommandTree(t *testing.T) {
	for _, name := range []string{"list", "play", "bench", "stats", "route", "serve", "config"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd == rootCmd || cmd.Name() != name {
			t.Errorf("subcommand %q not registered: %v", name, err)
		}
	}
}
