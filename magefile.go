//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - run the tests
var Default = Test

// Build compiles every package
func Build() error {
	return sh.RunV("go", "build", "./...")
}

// Test runs the full test suite with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Lint runs golangci-lint (expects it on PATH)
func Lint() error {
	mg.Deps(Vet)
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
