// Package utils provides small helpers shared by the services, the HTTP layer
// and the demo.
//
// Go Learning Note — "pkg/" Directory Convention:
// Code under pkg/ is intended to be importable by external projects (unlike
// internal/ which is compiler-enforced private). This is a community
// convention, not a language feature.
package utils

import (
	"github.com/google/uuid"
)

// GenerateID creates a random identifier with the given prefix, e.g.
// "evt-550e8400-e29b-41d4-a716-446655440000". Ride, driver and rider ids are
// chosen by the caller; generated ids are only used for notifications, where
// no caller-supplied id exists.
//
// Go Learning Note — "github.com/google/uuid":
// uuid.New() returns a version 4 (random) UUID. It panics only if the system
// random source fails; uuid.NewRandom() returns that failure as an error
// instead.
func GenerateID(prefix string) string {
	id := uuid.New().String()
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}
