// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lightclient follows an Ethereum chain through a beacon node's
// light-client API and serves execution blocks whose hashes match the
// consensus heads it tracks.
//
// A [Client] is produced by a [Builder], started against a trusted
// checkpoint, and kept current by a head-tracking worker that polls the
// beacon node. The last finalized root is persisted per network in the
// client's data directory so restarts resume from it.
package lightclient
