// Package testutil provides helpers shared by unit and integration tests.
package testutil
