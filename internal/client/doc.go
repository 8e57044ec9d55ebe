// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It runs the terminal UI until the user quits or the process is signalled
// and releases the local store afterwards.
package client
