package tui

import (
	"github.com/MKhiriev/go-cam-scan/internal/device"
	"github.com/MKhiriev/go-cam-scan/internal/presenter"
)

// browser shows a window of scan results through a fixed set of slots.
// Item i is always drawn by slot i mod len(slots), so moving the window by
// one row rebinds exactly one slot.
type browser struct {
	items  []device.Item
	slots  []*presenter.Slot
	cursor int
	offset int
}

type browserRow struct {
	index    int
	item     device.Item
	slot     *presenter.Slot
	selected bool
}

func newBrowser(slots []*presenter.Slot) *browser {
	return &browser{slots: slots}
}

func (b *browser) setItems(items []device.Item) {
	b.items = items
	b.cursor = 0
	b.offset = 0
	b.bind()
}

func (b *browser) move(delta int) {
	if len(b.items) == 0 {
		return
	}

	b.cursor = min(max(b.cursor+delta, 0), len(b.items)-1)

	window := len(b.slots)
	switch {
	case b.cursor < b.offset:
		b.offset = b.cursor
	case b.cursor >= b.offset+window:
		b.offset = b.cursor - window + 1
	}
	b.bind()
}

// bind rebinds the slots whose item changed and clears the unused ones.
func (b *browser) bind() {
	window := len(b.slots)
	if window == 0 {
		return
	}

	end := min(b.offset+window, len(b.items))
	for i := b.offset; i < end; i++ {
		slot := b.slots[i%window]
		if slot.Item() != b.items[i] {
			slot.Bind(b.items[i])
		}
	}

	for i := end - b.offset; i < window; i++ {
		slot := b.slots[(b.offset+i)%window]
		if slot.Item() != nil {
			slot.Bind(nil)
		}
	}
}

func (b *browser) rows() []browserRow {
	window := len(b.slots)
	if window == 0 {
		return nil
	}

	end := min(b.offset+window, len(b.items))
	rows := make([]browserRow, 0, end-b.offset)
	for i := b.offset; i < end; i++ {
		rows = append(rows, browserRow{
			index:    i,
			item:     b.items[i],
			slot:     b.slots[i%window],
			selected: i == b.cursor,
		})
	}
	return rows
}

func (b *browser) current() (browserRow, bool) {
	if len(b.items) == 0 || len(b.slots) == 0 {
		return browserRow{}, false
	}
	return browserRow{
		index:    b.cursor,
		item:     b.items[b.cursor],
		slot:     b.slots[b.cursor%len(b.slots)],
		selected: true,
	}, true
}

func (b *browser) count() int {
	return len(b.items)
}
