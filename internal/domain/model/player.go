// Package model contains domain models passed between layers.
package model

// Player represents a ranked participant. Level is the sole ordering key
// used by the ranking algorithms; every other field is opaque payload that
// the core moves around but never inspects.
type Player struct {
	ID     string // unique player identifier
	Handle string // display name, not part of ranking
	Level  uint64 // ordering key
}
