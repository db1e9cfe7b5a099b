//go:build mage

package main

import (
	"github.com/magefile/mage/sh"
)

// Default target to run when no target is specified.
var Default = Test

// Test runs the full package test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}
