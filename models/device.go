// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DeviceInfo identifies a camera. Any field may be empty for devices that
// do not report it.
type DeviceInfo struct {
	Manufacturer string          `json:"manufacturer"`
	Model        string          `json:"model"`
	SerialNumber string          `json:"serial_number"`
	Auth         AuthRequirement `json:"auth"`
}

// DisplayName returns a short human-readable label for the device.
func (d DeviceInfo) DisplayName() string {
	name := strings.TrimSpace(d.Manufacturer + " " + d.Model)
	if name == "" {
		return "unknown device"
	}
	return name
}

// CommandCategory is a mode a device can be switched into. The set of
// currently allowed categories gates which operations are legal.
type CommandCategory uint8

const (
	// FilesystemAccess allows browsing storage and fetching files.
	FilesystemAccess CommandCategory = 1 << iota
	// RemoteShooting allows live view and shutter control.
	RemoteShooting
)

const (
	filesystemAccessName = "filesystem_access"
	remoteShootingName   = "remote_shooting"
)

// CommandCategories is a set of [CommandCategory] values.
type CommandCategories uint8

// Contains reports whether c includes category.
func (c CommandCategories) Contains(category CommandCategory) bool {
	return uint8(c)&uint8(category) != 0
}

// With returns a copy of c that includes category.
func (c CommandCategories) With(category CommandCategory) CommandCategories {
	return CommandCategories(uint8(c) | uint8(category))
}

// Names returns the wire names of the categories in c in a stable order.
func (c CommandCategories) Names() []string {
	names := make([]string, 0, 2)
	if c.Contains(FilesystemAccess) {
		names = append(names, filesystemAccessName)
	}
	if c.Contains(RemoteShooting) {
		names = append(names, remoteShootingName)
	}
	return names
}

// ParseCommandCategories converts wire names into a set. Unknown names are
// an error.
func ParseCommandCategories(names []string) (CommandCategories, error) {
	var c CommandCategories
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case filesystemAccessName:
			c = c.With(FilesystemAccess)
		case remoteShootingName:
			c = c.With(RemoteShooting)
		case "":
		default:
			return 0, fmt.Errorf("unknown command category %q", name)
		}
	}
	return c, nil
}

// CategoriesResponse is the body of GET /api/device/categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// MarshalJSON encodes the set as a list of names.
func (c CommandCategories) MarshalJSON() ([]byte, error) {
	return json.Marshal(CategoriesResponse{Categories: c.Names()})
}

// UnmarshalJSON decodes a list of names.
func (c *CommandCategories) UnmarshalJSON(b []byte) error {
	var resp CategoriesResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		return err
	}
	parsed, err := ParseCommandCategories(resp.Categories)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
