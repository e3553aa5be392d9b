package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"PORT", "LOG_LEVEL", "CORS_ORIGINS", "MAX_BODY_BYTES"} {
		t.Setenv(k, "")
	}
	t.Cleanup(func() { configFile = "" })

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_DefaultsToMenu(t *testing.T) {
	out, err := execute(t, "1\nBali\n2024-05-01\n1500\n2\n6\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Trip ID: 1, Destination: Bali, Date: 2024-05-01, Price: RP1500.00")
	assert.Contains(t, out, "Exiting the program.")
}

func TestMenuCommand(t *testing.T) {
	out, err := execute(t, "2\n6\n", "menu")

	require.NoError(t, err)
	assert.Contains(t, out, "No trips available.")
}

func TestMenuCommand_BadConfig(t *testing.T) {
	out, err := execute(t, "", "menu", "--config", "/does/not/exist.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exist.yaml")
	assert.NotContains(t, out, "Error:", "cobra must leave printing to main")
}
