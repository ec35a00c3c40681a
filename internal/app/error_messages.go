// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// helios-keeper handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the caller cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgInvalidBlockTag is returned when the block tag path segment is not
	// "latest", "finalized" or a block number.
	MsgInvalidBlockTag = "invalid block tag"

	// MsgInvalidLimit is returned when the sessions listing limit is not a
	// positive integer.
	MsgInvalidLimit = "invalid limit"
)
