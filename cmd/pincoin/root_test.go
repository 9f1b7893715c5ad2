package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
version: "1.0"
theme: dark
panels:
  - id: hero
    title: Pincoin
    content:
      - Keys on your device.
  - id: outro
    title: Thanks for scrolling
`

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(nil)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "pincoin")
	assert.Contains(t, out, version)
}

func TestValidateCommandAcceptsValidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0644))

	out, err := executeCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid: 2 panels")
}

func TestValidateCommandRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landing.yaml")
	broken := "version: \"1.0\"\npanels:\n  - id: solo\n    title: Solo\n"
	require.NoError(t, os.WriteFile(path, []byte(broken), 0644))

	_, err := executeCommand(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation error")
}

func TestValidateCommandMissingFile(t *testing.T) {
	_, err := executeCommand(t, "validate", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateCommandRequiresArgument(t *testing.T) {
	_, err := executeCommand(t, "validate")
	require.Error(t, err)
}

func TestLoadConfigDefaultsWithoutPath(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Panels)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Panels, 2)
}
