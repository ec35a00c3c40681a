// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import "context"

// Host defines the lifecycle contract for the runnable application.
type Host interface {
	// Run serves until ctx is done, then shuts everything down.
	Run(ctx context.Context) error
}
