//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const configFile = ".chipselect.toml"

// CreateTestWorkspace creates an empty working directory for the app
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	workspace, err := os.MkdirTemp("", "chipselect-e2e-*")
	if err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}
	tf.workspace = workspace
	return workspace, nil
}

// WriteConfig writes the form config into the workspace
func (tf *TUITestFramework) WriteConfig(content string) error {
	if tf.workspace == "" {
		return fmt.Errorf("workspace not created")
	}
	return os.WriteFile(filepath.Join(tf.workspace, configFile), []byte(content), 0644)
}

// ReadConfig returns the workspace config file contents
func (tf *TUITestFramework) ReadConfig() (string, error) {
	data, err := os.ReadFile(filepath.Join(tf.workspace, configFile))
	return string(data), err
}

const fruitConfig = `version = 1
label = "Favorite fruits"
placeholder = "Add fruit"
required = %t
value = [%s]

[[items]]
value = 1
view_value = "Apple"

[[items]]
value = 2
view_value = "Lemon"

[[items]]
value = 3
view_value = "Lime"

[[items]]
value = 4
view_value = "Orange"

[[items]]
value = 5
view_value = "Strawberry"

[ui]
show_help = true
autosave = %t
`

// FruitConfig renders the five-fruit form config
func FruitConfig(required bool, value string, autosave bool) string {
	return fmt.Sprintf(fruitConfig, required, value, autosave)
}
