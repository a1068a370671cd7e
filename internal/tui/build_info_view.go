// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-cam-scan/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, device models.DeviceInfo, categories []string) string {
	var b strings.Builder

	b.WriteString("Application: go-cam-scan\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\nDate: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\nCommit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	if device != (models.DeviceInfo{}) {
		b.WriteString("\n\nCamera: ")
		b.WriteString(device.DisplayName())
		b.WriteString("\nSerial: ")
		b.WriteString(valueOrNA(device.SerialNumber))
		b.WriteString("\nMode: ")
		b.WriteString(valueOrNA(strings.Join(categories, ", ")))
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
