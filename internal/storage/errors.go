package storage

import "errors"

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")

	// ErrLeafProtection is returned when an operation would give a container
	// both stories and child containers.
	ErrLeafProtection = errors.New("container cannot hold both stories and child containers")

	// ErrMaxDepthExceeded is returned when creating a container would nest
	// it deeper than MaxContainerDepth levels.
	ErrMaxDepthExceeded = errors.New("container nesting too deep")

	// ErrOwnershipMismatch is returned when an operation references an
	// entity that does not belong to the expected parent, story, or version.
	ErrOwnershipMismatch = errors.New("entity does not belong to the expected owner")

	// ErrLastVersion is returned when deleting a version would leave its
	// story with no versions at all.
	ErrLastVersion = errors.New("a story must keep at least one version")
)
