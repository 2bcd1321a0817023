// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/tui"
)

// Client is a runnable terminal application. Run blocks until the user
// exits or ctx is cancelled.
type Client interface {
	Run(ctx context.Context) error
}

// UI is the part of the terminal UI driven by [App]. LoginFlow ends with an
// authenticated session; MainLoop reports whether the user logged out.
type UI interface {
	LoginFlow(ctx context.Context) (tui.Session, error)
	MainLoop(ctx context.Context, session tui.Session) (logout bool, err error)
}

var _ Client = (*App)(nil)
