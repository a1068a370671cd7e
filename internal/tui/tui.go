// Package tui is the terminal front end: it waits for discovery, connects to
// the first camera found, scans it and lets the user browse the results.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-cam-scan/internal/config"
	"github.com/MKhiriev/go-cam-scan/internal/discovery"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/service"
	"github.com/MKhiriev/go-cam-scan/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	program *tea.Program
	logger  *logger.Logger
}

// New builds the program. Nothing is drawn until Run.
func New(ctx context.Context, services *service.ClientServices, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}

	dispatcher := &programDispatcher{}
	model := newAppModel(ctx, services, cfg, buildInfo, dispatcher, logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	dispatcher.program = program

	return &TUI{program: program, logger: logger}, nil
}

// Run blocks until the user quits.
func (t *TUI) Run() error {
	final, err := t.program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return ErrUserQuit
		}
		return err
	}

	if m, ok := final.(appModel); ok {
		m.shutdown()
	}
	return nil
}

// DeviceFound hands a discovered camera to the UI. It blocks until the UI
// takes it or has exited, so it must not be called from inside Update.
func (t *TUI) DeviceFound(found discovery.Found) {
	t.program.Send(deviceFoundMsg{found: found})
}

// programDispatcher runs presenter callbacks on the bubbletea event loop.
type programDispatcher struct {
	program *tea.Program
}

func (d *programDispatcher) Dispatch(fn func()) {
	d.program.Send(dispatchMsg{fn: fn})
}
