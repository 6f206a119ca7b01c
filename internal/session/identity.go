// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"context"
	"encoding/json"

	"github.com/alexedwards/scs/v2"

	"github.com/fgacademy/fga-cms/internal/auth"
	"github.com/fgacademy/fga-cms/internal/model"
)

// identityKey is the session key holding the logged-in admin identity.
const identityKey = "admin_session"

// legacyMarker is the bare flag older deployments stored instead of a JSON
// identity. It resolves to the profile derived from the configured admin
// email.
const legacyMarker = "true"

type identityPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// PutIdentity stores the logged-in admin in the session and rotates the
// session token.
func PutIdentity(ctx context.Context, sm *scs.SessionManager, user model.AdminUser) error {
	if err := sm.RenewToken(ctx); err != nil {
		return err
	}
	b, err := json.Marshal(identityPayload{Email: user.Email, Name: user.Name})
	if err != nil {
		return err
	}
	sm.Put(ctx, identityKey, string(b))
	return nil
}

// GetIdentity reads the admin identity from the session. A missing key,
// malformed JSON or an incomplete payload all read as logged out; the
// session itself is never treated as an error.
func GetIdentity(ctx context.Context, sm *scs.SessionManager, adminEmail string) (model.AdminUser, bool) {
	raw := sm.GetString(ctx, identityKey)
	if raw == "" {
		return model.AdminUser{}, false
	}
	if raw == legacyMarker {
		return auth.UserProfile(adminEmail), true
	}

	var p identityPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return model.AdminUser{}, false
	}
	if p.Email == "" || p.Name == "" {
		return model.AdminUser{}, false
	}
	return model.AdminUser{Email: p.Email, Name: p.Name}, true
}

// ClearIdentity removes the admin identity and destroys the session.
func ClearIdentity(ctx context.Context, sm *scs.SessionManager) error {
	sm.Remove(ctx, identityKey)
	return sm.Destroy(ctx)
}
