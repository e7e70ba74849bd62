//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Renders the turntable demo with the default settings file.
func (Run) Demo() error {
	fmt.Println("Run demo...")
	if _, err := executeCmd("go", withArgs("run", "main.go", "-config", "testbed/settings.toml"), withStream()); err != nil {
		return err
	}
	return nil
}
