// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the server's background jobs.
//
// Workers is the aggregate started after the transports and stopped on
// shutdown. The only job today is the storage maintenance sweep, scheduled
// with robfig/cron.
package workers

// Worker is a background job with a start and a graceful stop.
//
// Run must not block; Stop waits for a running iteration to finish.
type Worker interface {
	Run()
	Stop()
}
