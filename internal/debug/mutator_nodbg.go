//go:build !debug

package debug

// Mutator is a no-op placeholder outside debug builds.
type Mutator struct{}

// NewMutator returns a zero Mutator ready to use.
func NewMutator() *Mutator { return &Mutator{} }

// CheckMutator does nothing outside debug builds.
func CheckMutator(*Mutator) {}
