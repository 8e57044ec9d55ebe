// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the market-pulse transport servers.
//
// It starts the enabled HTTP and gRPC servers, flips the gRPC health status
// once storage answers, and shuts everything down gracefully on SIGINT,
// SIGTERM or SIGQUIT.
package server
