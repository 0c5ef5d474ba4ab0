// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrConnection is returned when the bridge could not be reached or did
	// not answer in time.
	ErrConnection = errors.New("bridge connection error")

	// ErrTransport is wrapped by [TransportError] for HTTP statuses outside
	// 200-299.
	ErrTransport = errors.New("bridge transport error")

	// ErrProtocol is returned when a 2xx body is not the expected JSON
	// envelope, or its data has an unexpected shape.
	ErrProtocol = errors.New("bridge protocol error")

	// ErrRemoteRejection is wrapped by [RemoteRejectionError] for a
	// well-formed response with success:false.
	ErrRemoteRejection = errors.New("bridge rejected request")

	// ErrProfileIncomplete is returned before any network call when host,
	// user, database or bridge URL is empty.
	ErrProfileIncomplete = errors.New("connection profile is incomplete")

	// ErrInvalidTableName is returned for table names that are not plain
	// identifiers.
	ErrInvalidTableName = errors.New("invalid table name")
)

// TransportError carries the HTTP status of a non-2xx bridge response. The
// body is never parsed.
type TransportError struct {
	StatusCode int
	Status     string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: HTTP %s", ErrTransport, e.Status)
}

func (e *TransportError) Unwrap() error {
	return ErrTransport
}

// RemoteRejectionError carries the message of a success:false response,
// e.g. bad credentials reported by the remote database.
type RemoteRejectionError struct {
	Message string
}

func (e *RemoteRejectionError) Error() string {
	if e.Message == "" {
		return ErrRemoteRejection.Error()
	}
	return fmt.Sprintf("%s: %s", ErrRemoteRejection, e.Message)
}

func (e *RemoteRejectionError) Unwrap() error {
	return ErrRemoteRejection
}
