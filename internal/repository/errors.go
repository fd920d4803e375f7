package repository

import "errors"

// Sentinel errors shared by every implementation. Callers match them with
// errors.Is.
var (
	ErrRideNotFound    = errors.New("ride not found")
	ErrDriverNotFound  = errors.New("driver not found")
	ErrRiderNotFound   = errors.New("rider not found")
	ErrDuplicateRide   = errors.New("ride id already exists")
	ErrDuplicateDriver = errors.New("driver id already exists")
	ErrDuplicateRider  = errors.New("rider id already exists")
)
