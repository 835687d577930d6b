package config

import "fmt"

// wrapLoadError annotates errors surfaced by configuration providers.
func wrapLoadError(err error) error {
	return fmt.Errorf("load config: %w", err)
}
