package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("OVERWHELMED_TEST_DIR", "/tmp/overwhelmed")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty", path: "", want: ""},
		{name: "absolute untouched", path: "/var/data/tasks.db", want: "/var/data/tasks.db"},
		{name: "tilde prefix", path: "~/backups", want: filepath.Join(home, "backups")},
		{name: "bare tilde", path: "~", want: home},
		{name: "env var", path: "$OVERWHELMED_TEST_DIR/db", want: "/tmp/overwhelmed/db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.path))
		})
	}
}
