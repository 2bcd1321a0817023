// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if UsernameCtxKey.String() != "username" {
		t.Errorf("expected 'username', got '%s'", UsernameCtxKey.String())
	}
}

func TestGetUsernameFromContext_Success(t *testing.T) {
	ctx := WithUsername(context.Background(), "alice12")

	username, ok := GetUsernameFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if username != "alice12" {
		t.Errorf("expected alice12, got %s", username)
	}
}

func TestGetUsernameFromContext_Missing(t *testing.T) {
	if _, ok := GetUsernameFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetUsernameFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, 42)

	if _, ok := GetUsernameFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetUsernameFromContext_Empty(t *testing.T) {
	if _, ok := GetUsernameFromContext(WithUsername(context.Background(), "")); ok {
		t.Error("expected ok=false for empty username")
	}
}
