package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandCategories_Contains(t *testing.T) {
	var c CommandCategories
	assert.False(t, c.Contains(FilesystemAccess))

	c = c.With(FilesystemAccess)
	assert.True(t, c.Contains(FilesystemAccess))
	assert.False(t, c.Contains(RemoteShooting))
}

func TestCommandCategories_JSON(t *testing.T) {
	c := CommandCategories(0).With(RemoteShooting).With(FilesystemAccess)

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"categories":["filesystem_access","remote_shooting"]}`, string(b))

	var decoded CommandCategories
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, c, decoded)
}

func TestParseCommandCategories_Unknown(t *testing.T) {
	_, err := ParseCommandCategories([]string{"filesystem_access", "teleport"})
	assert.Error(t, err)
}

func TestAuthRequirement_Method(t *testing.T) {
	tests := []struct {
		name string
		req  AuthRequirement
		want AuthMethod
	}{
		{name: "none", req: AuthRequirement{}, want: nil},
		{name: "interact", req: AuthRequirement{Kind: AuthKindInteractAtDevice}, want: InteractAtDevice{}},
		{name: "credentials", req: AuthRequirement{Kind: AuthKindUsernamePassword, Realm: "cloud"}, want: UsernamePassword{Realm: "cloud"}},
		{name: "code", req: AuthRequirement{Kind: AuthKindNumericCode, Digits: 6}, want: NumericCode{Digits: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Method()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := AuthRequirement{Kind: "retina"}.Method()
	assert.Error(t, err)
}

func TestDeviceInfo_DisplayName(t *testing.T) {
	assert.Equal(t, "Canon EOS R5", DeviceInfo{Manufacturer: "Canon", Model: "EOS R5"}.DisplayName())
	assert.Equal(t, "unknown device", DeviceInfo{}.DisplayName())
}
