// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fgacademy/fga-cms/internal/model"
)

// FallbackName is used when an email's local part yields no name segments.
const FallbackName = "Administrator"

// Gate validates the single configured admin credential pair. Failure is
// uniform: callers cannot tell an unknown email from a wrong password.
type Gate struct {
	email        string
	passwordHash string
}

// NewGate builds a Gate from a plain credential pair, hashing the password
// so only the hash stays in memory.
func NewGate(email, password string) (*Gate, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}
	return &Gate{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: hash,
	}, nil
}

// AdminEmail returns the configured admin email.
func (g *Gate) AdminEmail() string {
	return g.email
}

// Login checks the credential pair. On success it returns the derived admin
// identity; on any failure it returns nil and false.
func (g *Gate) Login(email, password string) (*model.AdminUser, bool) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized != g.email {
		return nil, false
	}
	ok, err := CheckPassword(password, g.passwordHash)
	if err != nil || !ok {
		return nil, false
	}
	user := UserProfile(normalized)
	return &user, true
}

// UserProfile derives the display identity from an email address. The local
// part is split on ".", "_" and "-", each segment gets its first rune
// upper-cased, and the segments are joined with spaces. An empty result
// falls back to "Administrator".
func UserProfile(email string) model.AdminUser {
	local, _, _ := strings.Cut(email, "@")
	segments := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})

	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		runes := []rune(seg)
		runes[0] = unicode.ToUpper(runes[0])
		parts = append(parts, string(runes))
	}

	name := strings.Join(parts, " ")
	if name == "" {
		name = FallbackName
	}
	return model.AdminUser{Email: email, Name: name}
}
