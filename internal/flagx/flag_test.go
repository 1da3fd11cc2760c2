package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		allowed  []string
		expected []string
	}{
		{
			name:     "separate value form",
			args:     []string{"-s", "state.db", "-x", "other"},
			allowed:  []string{"-s"},
			expected: []string{"-s", "state.db"},
		},
		{
			name:     "equals form",
			args:     []string{"--storage=state.db", "--other=1"},
			allowed:  []string{"--storage"},
			expected: []string{"--storage=state.db"},
		},
		{
			name:     "flag followed by another flag keeps no value",
			args:     []string{"-s", "-v"},
			allowed:  []string{"-s"},
			expected: []string{"-s"},
		},
		{
			name:     "nothing allowed",
			args:     []string{"-a", "1", "-b"},
			allowed:  []string{"-z"},
			expected: []string{},
		},
		{
			name:     "empty args",
			args:     nil,
			allowed:  []string{"-s"},
			expected: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, FilterArgs(tc.args, tc.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"pubcrawl", "-c", "conf.json", "-s", "state.db"}
	require.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"pubcrawl", "--config=other.json"}
	require.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"pubcrawl"}
	require.Equal(t, "", JsonConfigFlags())
}
