//go:build tools
// +build tools

// Package tools pins the mockgen version used by go:generate.
package stresscheck

import (
	_ "go.uber.org/mock/mockgen"
)
