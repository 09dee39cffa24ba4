package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parkerblume/minotaur/party"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantPresents int
		wantServants int
	}{
		{name: "no args", args: nil, wantPresents: party.DefaultPresents, wantServants: party.DefaultServants},
		{name: "pool size only", args: []string{"1000"}, wantPresents: 1000, wantServants: party.DefaultServants},
		{name: "pool and servants", args: []string{"1000", "8"}, wantPresents: 1000, wantServants: 8},
		{name: "flag before positionals", args: []string{"-p", "200", "2"}, wantPresents: 200, wantServants: 2},
		{name: "flag between positionals", args: []string{"200", "-p", "2"}, wantPresents: 200, wantServants: 2},
		{name: "malformed pool size", args: []string{"lots", "2"}, wantPresents: party.DefaultPresents, wantServants: 2},
		{name: "negative servant count", args: []string{"200", "-3"}, wantPresents: 200, wantServants: party.DefaultServants},
		{name: "zero pool size", args: []string{"0"}, wantPresents: party.DefaultPresents, wantServants: party.DefaultServants},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := parseArgs(tt.args)
			assert.Equal(t, tt.wantPresents, cfg.Presents())
			assert.Equal(t, tt.wantServants, cfg.Servants())
		})
	}
}
