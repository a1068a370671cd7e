// Package presenter binds lazily populated device items into reusable
// display slots.
//
// A Slot walks Start → LoadingMetadata → LoadingThumbnail → Done every time
// an item is bound to it. Remote work runs on background goroutines; its
// results are handed back through a Dispatcher and applied only if the slot
// still shows the generation that issued the request.
package presenter

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/MKhiriev/go-cam-scan/internal/device"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
)

const (
	PlaceholderName = "Loading…"
	UnknownDate     = "Unknown Date"
	DateLayout      = "Jan 2, 2006 at 3:04 PM"
)

// Display is what a slot currently shows.
type Display struct {
	Name      string
	Date      string
	Thumbnail []byte
	Busy      bool
}

// Slot is not safe for concurrent use: every method must be called on the
// coordinating context that its Dispatcher runs functions on.
type Slot struct {
	ctx        context.Context
	dispatcher Dispatcher
	logger     *logger.Logger

	// generation is read from the preflight, which runs on the device
	// queue's goroutine.
	generation atomic.Uint64

	item    device.Item
	state   State
	display Display
}

func NewSlot(ctx context.Context, dispatcher Dispatcher, logger *logger.Logger) *Slot {
	return &Slot{
		ctx:        ctx,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Bind shows item in the slot, restarting the pipeline. Work still in flight
// for a previous item is ignored when it completes. Binding nil clears the
// slot.
func (s *Slot) Bind(item device.Item) {
	gen := s.generation.Add(1)
	s.item = item
	s.state = StateStart

	if item == nil {
		s.display = Display{}
		return
	}
	s.advance(gen)
}

func (s *Slot) State() State {
	return s.state
}

func (s *Slot) Display() Display {
	return s.display
}

func (s *Slot) Item() device.Item {
	return s.item
}

// current reports whether gen is still the slot's generation.
func (s *Slot) current(gen uint64) bool {
	return s.generation.Load() == gen
}

func (s *Slot) advance(gen uint64) {
	s.state = s.state.next()
	s.render()

	switch s.state {
	case StateLoadingMetadata:
		s.loadMetadata(gen)
	case StateLoadingThumbnail:
		s.loadThumbnail(gen)
	}
}

func (s *Slot) render() {
	switch s.state {
	case StateStart, StateLoadingMetadata:
		s.display = Display{Name: PlaceholderName, Busy: true}
	case StateLoadingThumbnail:
		s.display.Name = s.item.Name()
		s.display.Date = UnknownDate
		if created, ok := s.item.CreatedAt(); ok {
			s.display.Date = created.Local().Format(DateLayout)
		}
	case StateDone:
		s.display.Busy = false
	}
}

func (s *Slot) loadMetadata(gen uint64) {
	item := s.item
	if item.MetadataLoaded() {
		s.advance(gen)
		return
	}

	go func() {
		err := item.LoadMetadata(s.ctx)
		s.dispatcher.Dispatch(func() {
			if err != nil {
				s.logger.Warn().Err(err).Str("item_id", item.ID()).Msg("failed to load metadata")
			}
			if !s.current(gen) {
				return
			}
			s.advance(gen)
		})
	}()
}

func (s *Slot) loadThumbnail(gen uint64) {
	item := s.item
	preflight := func(device.Item) bool {
		return s.current(gen)
	}

	go func() {
		data, err := item.FetchThumbnail(s.ctx, preflight)
		s.dispatcher.Dispatch(func() {
			if err != nil && !errors.Is(err, device.ErrPreflightRejected) {
				s.logger.Warn().Err(err).Str("item_id", item.ID()).Msg("failed to load thumbnail")
			}
			if !s.current(gen) {
				return
			}
			if data != nil {
				s.display.Thumbnail = data
			}
			s.advance(gen)
		})
	}()
}
