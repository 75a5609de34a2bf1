//go:build debug

package debug

import (
	"sync/atomic"

	"github.com/timandy/routine"
)

// Mutator tracks which goroutine last performed a mutating operation on some
// owner value (typically a *btree.Tree), so CheckMutator can assert that
// mutations are not interleaved across goroutines. The tree's concurrency
// model assumes a single mutator at a time; this turns a violation into a
// loud panic in debug builds instead of silent corruption.
type Mutator struct {
	goid atomic.Int64
	set  atomic.Bool
}

// NewMutator returns a zero Mutator ready to use.
func NewMutator() *Mutator { return &Mutator{} }

// CheckMutator asserts that the calling goroutine is the same one that made
// the previous call, recording the current goroutine on first use.
func CheckMutator(m *Mutator) {
	id := routine.Goid()
	if m.set.CompareAndSwap(false, true) {
		m.goid.Store(id)
		return
	}
	Assert(m.goid.Load() == id, "concurrent mutation from goroutine %d, expected %d", id, m.goid.Load())
}
