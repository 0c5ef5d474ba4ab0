// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/site-sync/models"
)

// mapHTTPError returns a *TransportError for any status outside 200-299.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	status := resp.Status()
	if status == "" {
		status = strconv.Itoa(resp.StatusCode()) + " " + http.StatusText(resp.StatusCode())
	}

	return &TransportError{StatusCode: resp.StatusCode(), Status: status}
}

// mapEnvelope decodes a 2xx body. Anything but a JSON object with a boolean
// success flag is a protocol error; success:false is a remote rejection.
func mapEnvelope(body []byte) (json.RawMessage, error) {
	var envelope models.BridgeResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProtocol, err)
	}

	if envelope.Success == nil {
		return nil, fmt.Errorf("%w: response has no success flag", ErrProtocol)
	}
	if !*envelope.Success {
		return nil, &RemoteRejectionError{Message: envelope.Message}
	}

	return envelope.Data, nil
}

// mapRequestError wraps any failure to obtain a response, timeouts included.
func mapRequestError(err error) error {
	return fmt.Errorf("%w: %w", ErrConnection, err)
}
