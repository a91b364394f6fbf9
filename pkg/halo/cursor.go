package halo

import "sync"

// cursorGuard is a scoped "cursor hidden" acquisition. release shows the
// cursor again exactly once, whichever of Stop, a failed write or
// RestoreCursor gets there first.
type cursorGuard struct {
	target RenderTarget
	owner  sync.Locker // the spinner lock that guards target
	once   sync.Once
}

var (
	guardsMu sync.Mutex
	guards   = map[*cursorGuard]struct{}{}
)

// hideCursor hides the cursor on t. The caller holds owner.
func hideCursor(t RenderTarget, owner sync.Locker) *cursorGuard {
	g := &cursorGuard{target: t, owner: owner}

	guardsMu.Lock()
	guards[g] = struct{}{}
	guardsMu.Unlock()

	t.HideCursor()
	return g
}

// release shows the cursor. The caller holds g.owner.
func (g *cursorGuard) release() {
	if g == nil {
		return
	}
	g.once.Do(func() {
		guardsMu.Lock()
		delete(guards, g)
		guardsMu.Unlock()

		g.target.ShowCursor()
	})
}

// RestoreCursor shows the cursor for every spinner that currently hides it.
// Call it from signal handlers and deferred exit paths; spinners still
// running keep animating until they are stopped. Each cursor is shown under
// its spinner's lock, so it never interleaves with a frame being drawn.
func RestoreCursor() {
	guardsMu.Lock()
	pending := make([]*cursorGuard, 0, len(guards))
	for g := range guards {
		pending = append(pending, g)
	}
	guardsMu.Unlock()

	for _, g := range pending {
		g.owner.Lock()
		g.release()
		g.owner.Unlock()
	}
}
