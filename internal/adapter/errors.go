// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrSynthesisUnavailable is returned when the TTS service is not
	// configured (missing API key) or rejects the request.
	ErrSynthesisUnavailable = errors.New("voice synthesis unavailable")

	// ErrUploadFailed is returned when the blob store rejects an upload
	// after the bucket-create retry.
	ErrUploadFailed = errors.New("audio upload failed")
)

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
