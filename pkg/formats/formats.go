// Package formats provides parsers and writers for the room files of the PC release.
package formats

// Note: the RDT container (header, section directory, mutation, serialization) is in rdt*.go
// Note: section payload decoders are in collision.go, floor.go, script.go and animation.go
