package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-cam-scan/internal/config"
	"github.com/MKhiriev/go-cam-scan/internal/device"
	"github.com/MKhiriev/go-cam-scan/internal/discovery"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/presenter"
	"github.com/MKhiriev/go-cam-scan/internal/progress"
	"github.com/MKhiriev/go-cam-scan/internal/service"
	"github.com/MKhiriev/go-cam-scan/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	progressbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenDiscovering screen = iota
	screenConnecting
	screenScanning
	screenBrowsing
)

const (
	progressTickInterval = 100 * time.Millisecond
	statusTTL            = 2 * time.Second
	nameColumnWidth      = 40
	previewCols          = 48
	previewRows          = 16
)

type appModel struct {
	ctx        context.Context
	services   *service.ClientServices
	addresses  []string
	buildInfo  models.AppBuildInfo
	dispatcher presenter.Dispatcher
	logger     *logger.Logger

	screen  screen
	spinner spinner.Model
	bar     progressbar.Model

	found        *discovery.Found
	pairing      string
	session      *device.Session
	scanProgress *progress.Progress
	browser      *browser

	showPreview   bool
	showBuildInfo bool
	status        string
	errMsg        string
}

func newAppModel(ctx context.Context, services *service.ClientServices, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, dispatcher presenter.Dispatcher, logger *logger.Logger) appModel {
	slots := make([]*presenter.Slot, cfg.Scan.Slots)
	for i := range slots {
		slots[i] = presenter.NewSlot(ctx, dispatcher, logger.WithField("slot", strconv.Itoa(i)))
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return appModel{
		ctx:        ctx,
		services:   services,
		addresses:  cfg.Adapter.Addresses,
		buildInfo:  buildInfo,
		dispatcher: dispatcher,
		logger:     logger,
		screen:     screenDiscovering,
		spinner:    sp,
		bar:        progressbar.New(progressbar.WithDefaultGradient(), progressbar.WithWidth(nameColumnWidth)),
		browser:    newBrowser(slots),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatchMsg:
		msg.fn()
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progressTickMsg:
		if m.screen != screenScanning {
			return m, nil
		}
		return m, cmdProgressTick()
	case deviceFoundMsg:
		return m.onDeviceFound(msg.found)
	case connectedMsg:
		return m.onConnected(msg)
	case scanDoneMsg:
		return m.onScanDone(msg)
	case reloadedMsg:
		if msg.err != nil {
			m.screen = screenBrowsing
			m.errMsg = humanizeDeviceError(msg.err)
			return m, nil
		}
		return m, m.startScan()
	case categoriesMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("refresh command categories")
		}
		return m, nil
	case cacheClearedMsg:
		if msg.err != nil {
			m.errMsg = humanizeDeviceError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Removed %d cached thumbnails", msg.removed)
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Copied %q", msg.name)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m, nil
}

func (m appModel) onDeviceFound(found discovery.Found) (tea.Model, tea.Cmd) {
	if m.screen != screenDiscovering {
		m.logger.Debug().Str("address", found.Address).Msg("ignoring device, already connected")
		return m, nil
	}

	method, err := found.Info.Auth.Method()
	if err != nil {
		m.logger.Warn().Err(err).Str("address", found.Address).Msg("unknown pairing requirement")
	}

	m.found = &found
	m.pairing = pairingInstructions(method)
	m.screen = screenConnecting
	return m, m.cmdConnect()
}

func (m appModel) onConnected(msg connectedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = humanizeDeviceError(msg.err)
		return m, nil
	}

	m.session = msg.session
	m.pairing = ""
	return m, m.startScan()
}

func (m appModel) onScanDone(msg scanDoneMsg) (tea.Model, tea.Cmd) {
	m.screen = screenBrowsing
	m.scanProgress = nil

	if msg.err != nil {
		m.browser.setItems(nil)
		m.errMsg = humanizeDeviceError(msg.err)
		return m, nil
	}

	m.browser.setItems(msg.items)
	m.status = fmt.Sprintf("%d files", len(msg.items))
	return m, cmdClearStatus()
}

func (m appModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.errMsg != "" {
		switch {
		case key.Matches(msg, keys.esc):
			m.errMsg = ""
		case m.screen == screenConnecting && key.Matches(msg, keys.retry):
			m.errMsg = ""
			return m, m.cmdConnect()
		case m.screen == screenBrowsing && key.Matches(msg, keys.rescan):
			m.errMsg = ""
			return m, m.cmdReload()
		}
		return m, nil
	}

	if key.Matches(msg, keys.buildInfo) {
		m.showBuildInfo = !m.showBuildInfo
		if m.showBuildInfo {
			return m, m.cmdRefreshCategories()
		}
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.screen != screenBrowsing {
		return m, nil
	}

	page := len(m.browser.slots)
	switch {
	case key.Matches(msg, keys.up):
		m.browser.move(-1)
	case key.Matches(msg, keys.down):
		m.browser.move(1)
	case key.Matches(msg, keys.pageUp):
		m.browser.move(-page)
	case key.Matches(msg, keys.pageDown):
		m.browser.move(page)
	case key.Matches(msg, keys.preview):
		m.showPreview = !m.showPreview
	case key.Matches(msg, keys.esc):
		m.showPreview = false
	case key.Matches(msg, keys.copy):
		row, ok := m.browser.current()
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		return m, cmdCopyToClipboard(row.item.Name())
	case key.Matches(msg, keys.rescan):
		return m, m.cmdReload()
	case key.Matches(msg, keys.clearCache):
		return m, m.cmdClearCache()
	}

	return m, nil
}

// startScan must run inside Update: done may fire before Scan returns, so
// it only writes to a buffered channel.
func (m *appModel) startScan() tea.Cmd {
	results := make(chan scanDoneMsg, 1)
	m.screen = screenScanning
	m.status = ""
	m.scanProgress = m.services.ScanService.Scan(m.ctx, m.session, func(items []device.Item, err error) {
		results <- scanDoneMsg{items: items, err: err}
	})

	return tea.Batch(
		func() tea.Msg { return <-results },
		cmdProgressTick(),
	)
}

func (m appModel) cmdConnect() tea.Cmd {
	ctx := m.ctx
	svc := m.services.CameraService
	adp := m.found.Adapter
	return func() tea.Msg {
		session, err := svc.Connect(ctx, adp)
		return connectedMsg{session: session, err: err}
	}
}

func (m appModel) cmdReload() tea.Cmd {
	if m.session == nil {
		return nil
	}
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		return reloadedMsg{err: session.Reload(ctx)}
	}
}

func (m appModel) cmdRefreshCategories() tea.Cmd {
	if m.session == nil {
		return nil
	}
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		return categoriesMsg{err: session.RefreshCategories(ctx)}
	}
}

func (m appModel) cmdClearCache() tea.Cmd {
	if m.session == nil {
		return nil
	}
	ctx := m.ctx
	svc := m.services.CameraService
	session := m.session
	return func() tea.Msg {
		removed, err := svc.ClearThumbnailCache(ctx, session)
		return cacheClearedMsg{removed: removed, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{name: text}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdProgressTick() tea.Cmd {
	return tea.Tick(progressTickInterval, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}

// shutdown releases the device session once the program has exited.
func (m appModel) shutdown() {
	if m.session != nil {
		m.session.Close()
	}
}

func (m appModel) View() string {
	if m.showBuildInfo {
		var (
			info       models.DeviceInfo
			categories []string
		)
		if m.session != nil {
			info = m.session.Info()
			categories = m.session.CommandCategories().Names()
		}
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, info, categories))
	}

	var page string
	switch m.screen {
	case screenDiscovering:
		page = m.viewDiscovering()
	case screenConnecting:
		page = m.viewConnecting()
	case screenScanning:
		page = m.viewScanning()
	default:
		page = m.viewBrowsing()
	}

	if m.errMsg != "" {
		page = lipgloss.JoinVertical(lipgloss.Left, page, "", errorOverlayModel{message: m.errMsg}.View())
	}
	return appStyle.Render(page)
}

func (m appModel) viewDiscovering() string {
	data := m.spinner.View() + " Looking for cameras at " + strings.Join(m.addresses, ", ")
	return renderPage("SEARCHING", data, "v: about")
}

func (m appModel) viewConnecting() string {
	var b strings.Builder
	if m.errMsg == "" {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
	}
	b.WriteString("Connecting to ")
	b.WriteString(m.found.Info.DisplayName())
	b.WriteString(" at ")
	b.WriteString(m.found.Address)
	if m.pairing != "" {
		b.WriteString("\n\n")
		b.WriteString(m.pairing)
	}

	hotKeys := ""
	if m.errMsg != "" {
		hotKeys = "r: retry"
	}
	return renderPage("CONNECTING", b.String(), hotKeys)
}

func (m appModel) viewScanning() string {
	var b strings.Builder
	b.WriteString(m.spinner.View())
	b.WriteString(" Scanning ")
	b.WriteString(m.session.Info().DisplayName())
	if m.scanProgress != nil {
		b.WriteString("\n\n")
		b.WriteString(m.bar.ViewAs(m.scanProgress.Fraction()))
	}
	return renderPage("SCANNING", b.String(), "")
}

func (m appModel) viewBrowsing() string {
	var b strings.Builder

	rows := m.browser.rows()
	if len(rows) == 0 {
		b.WriteString("No files")
	}
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderRow(row))
	}

	if m.showPreview {
		if row, ok := m.browser.current(); ok {
			b.WriteString("\n\n")
			b.WriteString(m.renderPreview(row.slot.Display()))
		}
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	title := "FILES"
	if m.session != nil {
		title = fmt.Sprintf("FILES ON %s (%d)", strings.ToUpper(m.session.Info().DisplayName()), m.browser.count())
	}
	return renderPage(title, b.String(), "↑/↓: move  enter: preview  c: copy name  r: rescan  x: clear cache  v: about")
}

func (m appModel) renderRow(row browserRow) string {
	display := row.slot.Display()

	marker := " "
	switch {
	case display.Busy:
		marker = m.spinner.View()
	case display.Thumbnail != nil:
		marker = "▣"
	}

	line := fmt.Sprintf("%s %-*s %s", marker, nameColumnWidth, fitText(display.Name, nameColumnWidth), dateStyle.Render(display.Date))
	if row.selected {
		return selectedStyle.Render(line)
	}
	return line
}

func (m appModel) renderPreview(display presenter.Display) string {
	if display.Busy {
		return m.spinner.View() + " loading preview"
	}
	if display.Thumbnail == nil {
		return "No thumbnail"
	}

	out, err := renderThumbnail(display.Thumbnail, previewCols, previewRows)
	if err != nil {
		m.logger.Warn().Err(err).Msg("cannot render thumbnail")
		return "Thumbnail cannot be shown"
	}
	return out
}
