package model

import "fmt"

// DiscoveryError wraps a tag-query backend failure. It is fatal to the
// run: nothing is published when discovery fails part-way.
type DiscoveryError struct {
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("resource discovery failed: %v", e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// PublishError wraps a backend failure writing one dashboard. It is
// isolated to that dashboard; the run continues with the next one.
type PublishError struct {
	Dashboard string
	Err       error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publishing dashboard %s failed: %v", e.Dashboard, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }
