// Package progress tracks how much of a long-running operation is done.
//
// A Progress is a pull-model counter: producers call Complete as units of
// work finish and consumers poll Fraction. Handles can be nested with
// AddChild so that a parent reflects the weighted progress of its children.
package progress

import "sync"

// Progress is safe for concurrent use. The zero value is not usable; create
// handles with New.
type Progress struct {
	mu        sync.Mutex
	total     int64
	completed int64
	children  []child
}

type child struct {
	handle  *Progress
	pending int64
}

// New returns a handle expecting total units of work.
func New(total int64) *Progress {
	if total < 0 {
		total = 0
	}
	return &Progress{total: total}
}

// SetTotal changes the number of expected units.
func (p *Progress) SetTotal(total int64) {
	if total < 0 {
		total = 0
	}
	p.mu.Lock()
	p.total = total
	p.mu.Unlock()
}

// Complete records n finished units. Completion never exceeds the total.
func (p *Progress) Complete(n int64) {
	if n <= 0 {
		return
	}
	p.mu.Lock()
	p.completed = min(p.completed+n, p.total)
	p.mu.Unlock()
}

// AddChild attaches child so that it accounts for pending units of p's
// total. The child's own fraction scales those units.
func (p *Progress) AddChild(c *Progress, pending int64) {
	if c == nil || c == p || pending <= 0 {
		return
	}
	p.mu.Lock()
	p.children = append(p.children, child{handle: c, pending: pending})
	p.mu.Unlock()
}

// Fraction returns the completed share in [0, 1]. A handle with zero total
// reports 0 until something is attached to it.
func (p *Progress) Fraction() float64 {
	p.mu.Lock()
	total := p.total
	done := float64(p.completed)
	children := append([]child(nil), p.children...)
	p.mu.Unlock()

	if total == 0 {
		return 0
	}

	for _, c := range children {
		done += c.handle.Fraction() * float64(c.pending)
	}

	return min(done/float64(total), 1)
}

// Finished reports whether all units are accounted for.
func (p *Progress) Finished() bool {
	p.mu.Lock()
	total := p.total
	p.mu.Unlock()

	return total > 0 && p.Fraction() >= 1
}

// Counts returns the directly completed units and the total, ignoring
// children.
func (p *Progress) Counts() (completed, total int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completed, p.total
}
