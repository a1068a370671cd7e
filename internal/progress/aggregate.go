package progress

// Aggregate combines per-root handles into one composite handle. Nil
// handles are skipped. It returns nil when no handle is left, so callers can
// hide progress entirely. Every child contributes one unit to the composite
// regardless of its own size.
func Aggregate(handles ...*Progress) *Progress {
	present := make([]*Progress, 0, len(handles))
	for _, h := range handles {
		if h != nil {
			present = append(present, h)
		}
	}
	if len(present) == 0 {
		return nil
	}

	composite := New(int64(len(present)))
	for _, h := range present {
		composite.AddChild(h, 1)
	}

	return composite
}
