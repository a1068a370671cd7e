package tui

import (
	"github.com/MKhiriev/go-cam-scan/internal/device"
	"github.com/MKhiriev/go-cam-scan/internal/discovery"
)

type deviceFoundMsg struct {
	found discovery.Found
}

type connectedMsg struct {
	session *device.Session
	err     error
}

type scanDoneMsg struct {
	items []device.Item
	err   error
}

type reloadedMsg struct {
	err error
}

// categoriesMsg reports a refresh of the device's command mode.
type categoriesMsg struct {
	err error
}

type cacheClearedMsg struct {
	removed int64
	err     error
}

// dispatchMsg carries a presenter callback onto the event loop.
type dispatchMsg struct {
	fn func()
}

type progressTickMsg struct{}

type copiedMsg struct {
	name string
	err  error
}

type clearStatusMsg struct{}
