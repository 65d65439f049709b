// SPDX-License-Identifier: Apache-2.0

package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/coach-courier/models"
)

// VoiceSynthesizer converts a text script into audio bytes with an
// estimated spoken duration. Any returned error means "skip the voice
// note"; callers never fail the surrounding send because of it.
type VoiceSynthesizer interface {
	Synthesize(ctx context.Context, script string) (models.Synthesis, error)
}

// AudioStore uploads synthesized audio to the blob store and returns its
// public URL. The destination bucket is created lazily when missing.
type AudioStore interface {
	UploadAudio(ctx context.Context, audio []byte, name string, durationSeconds int) (models.StoredObject, error)
}

// GeoLocator resolves a source address to a location. Failures degrade to
// a Location with Success=false; Resolve never returns an error.
type GeoLocator interface {
	Resolve(ctx context.Context, ip string) models.Location
}
