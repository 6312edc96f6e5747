//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target runs when mage is invoked without arguments.
var Default = Build

// Build compiles the phonetictext binary.
func Build() error {
	return sh.RunV("go", "build", "-o", "phonetictext", "./cmd/phonetictext")
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the phonetictext binary.
func Install() error {
	return sh.RunV("go", "install", "./cmd/phonetictext")
}

// CI runs vet and the tests, then builds.
func CI() error {
	mg.SerialDeps(Vet, Test)
	return Build()
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("phonetictext")
}
