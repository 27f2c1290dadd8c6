package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idelchi/gocaesar/internal/commands"
	"github.com/idelchi/gocaesar/internal/config"
)

func TestPositional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "empty", args: nil, want: []string{}},
		{name: "plain", args: []string{"3", "in", "out"}, want: []string{"3", "in", "out"}},
		{name: "stdio dash", args: []string{"3", "-", "-"}, want: []string{"3", "-", "-"}},
		{name: "negative shift", args: []string{"-1", "-", "-"}, want: []string{"--", "-1", "-", "-"}},
		{name: "negative with suffix", args: []string{"-5x", "-", "-"}, want: []string{"--", "-5x", "-", "-"}},
		{name: "negative fraction", args: []string{"-1.5", "-", "-"}, want: []string{"--", "-1.5", "-", "-"}},
		{name: "flags before", args: []string{"-q", "decrypt", "-10", "a", "b"}, want: []string{"-q", "decrypt", "--", "-10", "a", "b"}},
		{name: "existing terminator", args: []string{"--", "-1", "a", "b"}, want: []string{"--", "-1", "a", "b"}},
		{name: "shorthand flag untouched", args: []string{"-v", "3", "a", "b"}, want: []string{"-v", "3", "a", "b"}},
		{name: "shorthand cluster untouched", args: []string{"-qv", "3", "a", "b"}, want: []string{"-qv", "3", "a", "b"}},
		{name: "help shorthand untouched", args: []string{"-h"}, want: []string{"-h"}},
		{name: "long flag untouched", args: []string{"--bogus", "3", "a", "b"}, want: []string{"--bogus", "3", "a", "b"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			root := commands.NewRootCommand(&config.Config{}, "test")

			require.Equal(t, tc.want, commands.Positional(root, tc.args))
		})
	}
}
