// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateLogin(t *testing.T) {
	gate, err := NewGate("admin@fga.local", "SecurePass123")
	require.NoError(t, err)

	t.Run("valid pair", func(t *testing.T) {
		user, ok := gate.Login("admin@fga.local", "SecurePass123")
		require.True(t, ok)
		assert.Equal(t, "admin@fga.local", user.Email)
		assert.Equal(t, "Admin", user.Name)
	})

	t.Run("email is normalized", func(t *testing.T) {
		user, ok := gate.Login("  Admin@FGA.Local ", "SecurePass123")
		require.True(t, ok)
		assert.Equal(t, "admin@fga.local", user.Email)
	})

	t.Run("uniform failure", func(t *testing.T) {
		cases := []struct {
			name, email, password string
		}{
			{"wrong password", "admin@fga.local", "SecurePass124"},
			{"unknown email", "other@fga.local", "SecurePass123"},
			{"both wrong", "other@fga.local", "nope"},
			{"empty", "", ""},
			{"password is not trimmed", "admin@fga.local", " SecurePass123"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				user, ok := gate.Login(tc.email, tc.password)
				assert.False(t, ok)
				assert.Nil(t, user)
			})
		}
	})
}

func TestUserProfile(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"jane.doe@x.com", "Jane Doe"},
		{"admin@x.com", "Admin"},
		{"...@x.com", "Administrator"},
		{"_-.@x.com", "Administrator"},
		{"mary_ann-smith@x.com", "Mary Ann Smith"},
		{"head.of.school@fga.local", "Head Of School"},
	}
	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			user := UserProfile(tc.email)
			assert.Equal(t, tc.want, user.Name)
			assert.Equal(t, tc.email, user.Email)
		})
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("SecurePass123")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := CheckPassword("SecurePass123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword("SecurePass124", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckPasswordBadHash(t *testing.T) {
	_, err := CheckPassword("x", "not-a-hash")
	assert.Error(t, err)

	_, err = CheckPassword("x", "$bcrypt$v=19$m=1,t=1,p=1$aaaa$bbbb")
	assert.Error(t, err)
}
