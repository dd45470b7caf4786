// Package project assembles an Android project tree on disk from a validated
// configuration. It decides which artifacts to emit, renders them through the
// template registry, and copies optional font assets.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrGenerationFailed indicates a required artifact could not be produced.
	// Partial output is removed before it is returned.
	ErrGenerationFailed = errors.New("project generation failed")

	// ErrProjectExists indicates the target directory exists and is not empty.
	ErrProjectExists = errors.New("project directory already exists")

	// ErrPathTraversal indicates a planned path would escape the project root.
	ErrPathTraversal = errors.New("path escapes project root")
)
