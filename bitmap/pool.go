package bitmap

import (
	"iter"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/zeebo/errs/v2"
)

// Pool hands out the lowest free slot index from a growable list of B64 words.
// It is safe for concurrent use.
type Pool struct {
	_ [0]func() // no equality

	words atomic.Pointer[[]*B64]
	mu    sync.Mutex // protects grow
}

func NewPool() *Pool {
	p := new(Pool)
	p.words.Store(new([]*B64))
	return p
}

// Cap returns the number of slots currently backed by words.
func (p *Pool) Cap() int { return len(*p.words.Load()) * 64 }

// Claim marks the lowest free slot as claimed and returns its index, growing
// the pool by a word if every slot is taken.
func (p *Pool) Claim() int {
	for {
		ws := *p.words.Load()
		for i, w := range ws {
			if idx, ok := w.AtomicClaim(); ok {
				return i*64 + idx
			}
		}
		p.grow(len(ws))
	}
}

func (p *Pool) grow(seen int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// another claimer already grew past what we scanned
	ws := *p.words.Load()
	if len(ws) != seen {
		return
	}

	next := append(slices.Clip(ws), new(B64))
	p.words.Store(&next)
}

// Release frees a claimed slot.
func (p *Pool) Release(idx int) error {
	w, bit, err := p.word(idx)
	if err != nil {
		return err
	}
	if !w.AtomicRelease(bit) {
		return errs.Errorf("slot %d is not claimed", idx)
	}
	return nil
}

// Claimed reports whether the slot is claimed. Out of range slots are not.
func (p *Pool) Claimed(idx int) bool {
	w, bit, err := p.word(idx)
	return err == nil && w.AtomicHas(bit)
}

// All iterates the claimed slots in ascending order from a snapshot of each
// word.
func (p *Pool) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, w := range *p.words.Load() {
			for idx := range w.AtomicClone().All() {
				if !yield(i*64 + idx) {
					return
				}
			}
		}
	}
}

func (p *Pool) word(idx int) (*B64, uint, error) {
	ws := *p.words.Load()
	if idx < 0 || idx >= len(ws)*64 {
		return nil, 0, errs.Errorf("slot %d out of range [0, %d)", idx, len(ws)*64)
	}
	return ws[idx/64], uint(idx % 64), nil
}
