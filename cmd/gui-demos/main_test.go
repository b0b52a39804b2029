package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommandLayout(t *testing.T) {
	root := newRootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	require.ElementsMatch(t, []string{"demo", "font", "threads", "screenshot"}, names)

	for _, f := range []string{"config", "log-level", "json-logs", "profile-addr"} {
		require.NotNil(t, root.PersistentFlags().Lookup(f), f)
	}

	threads, _, err := root.Find([]string{"threads"})
	require.NoError(t, err)
	require.NotNil(t, threads.Flags().Lookup("workers"))

	screenshot, _, err := root.Find([]string{"screenshot"})
	require.NoError(t, err)
	require.Equal(t, "top_left.png", screenshot.Flags().Lookup("out").DefValue)
}

func TestInvalidConfigFails(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"font", "--config", t.TempDir() + "/missing.toml"})
	require.ErrorContains(t, root.Execute(), "read config")
}
