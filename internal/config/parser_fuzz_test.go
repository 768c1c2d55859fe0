//go:build go1.18

package config

import (
	"context"
	"testing"
)

func FuzzParser_ParseString(f *testing.F) {
	f.Add(`rosettafinder = { binary = "rosetta_scripts" }`)
	f.Add(`rosettafinder = { search_paths = { "/opt/rosetta/bin" } }`)
	f.Add(`rosettafinder = { log_level = "debug" }`)

	parser := NewParser(nil)

	f.Fuzz(func(t *testing.T, luaCode string) {
		cfg, err := parser.ParseString(context.Background(), luaCode)
		if err != nil {
			return
		}
		if verr := cfg.Validate(); verr != nil {
			t.Errorf("ParseString accepted a config that fails Validate: %v", verr)
		}
	})
}
