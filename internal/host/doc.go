// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package host implements the helios-keeper process runtime.
//
// It resolves the application directories, opens storage, wires the light
// client services behind the HTTP surface, and on exit tears the running
// session down before closing storage.
package host
