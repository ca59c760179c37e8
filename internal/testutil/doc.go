// Package testutil provides shared helpers for tests that drive the
// devloop pipeline against real files: scratch workspaces, stub tool
// scripts, and small filesystem assertions.
package testutil
