// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the offline-first goals engine into one process.
//
// [App] owns the local SQLite replica, the remote goals collection, the sync
// coordinator and the background [workers.SyncWorker]. The CLI drives it one
// command at a time; the watch command keeps the worker running.
package client
