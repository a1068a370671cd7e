// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AuthMethod is the way a device asks the user to approve a connection.
// The set of implementations is closed: [InteractAtDevice],
// [UsernamePassword] and [NumericCode].
type AuthMethod interface {
	authMethod()
}

// InteractAtDevice means the user confirms the pairing on the camera itself.
type InteractAtDevice struct{}

// UsernamePassword means the device expects account credentials.
type UsernamePassword struct {
	// Realm is the account system the credentials belong to, if reported.
	Realm string
}

// NumericCode means the device shows or expects a numeric code.
type NumericCode struct {
	// Digits is the length of the code.
	Digits int
}

func (InteractAtDevice) authMethod() {}
func (UsernamePassword) authMethod() {}
func (NumericCode) authMethod()      {}

// Auth kinds as they appear on the wire.
const (
	AuthKindNone             = ""
	AuthKindInteractAtDevice = "interact_at_device"
	AuthKindUsernamePassword = "username_password"
	AuthKindNumericCode      = "numeric_code"
)

// AuthRequirement is the wire form of an [AuthMethod]. A zero value means
// the device needs no pairing.
type AuthRequirement struct {
	Kind   string `json:"kind,omitempty"`
	Realm  string `json:"realm,omitempty"`
	Digits int    `json:"digits,omitempty"`
}

// Method converts the wire form into its variant. It returns nil, nil when
// no pairing is required.
func (a AuthRequirement) Method() (AuthMethod, error) {
	switch a.Kind {
	case AuthKindNone:
		return nil, nil
	case AuthKindInteractAtDevice:
		return InteractAtDevice{}, nil
	case AuthKindUsernamePassword:
		return UsernamePassword{Realm: a.Realm}, nil
	case AuthKindNumericCode:
		return NumericCode{Digits: a.Digits}, nil
	default:
		return nil, fmt.Errorf("unknown auth kind %q", a.Kind)
	}
}
