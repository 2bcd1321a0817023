// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive note keeper client.
//
// It wires the terminal UI to the client services and keeps the per-process
// session cache of users who chose to stay logged in.
package client
