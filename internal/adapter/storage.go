package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/coach-courier/internal/config"
	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/internal/utils"
	"github.com/MKhiriev/coach-courier/models"
	"github.com/go-resty/resty/v2"
)

// voiceMessagePath is the namespaced prefix under which all voice notes
// live inside the bucket.
const voiceMessagePath = "voice-messages"

type storageAdapter struct {
	client *utils.HTTPClient
	cfg    config.ObjectStorage

	logger *logger.Logger
}

// NewStorageAdapter constructs an HTTP implementation of [AudioStore]
// against the configured blob storage service.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL, or if no bucket is configured.
func NewStorageAdapter(cfg config.ObjectStorage, logger *logger.Logger) (AudioStore, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid storage base url: %w", err)
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is not configured")
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)

	return &storageAdapter{client: client, cfg: cfg, logger: logger}, nil
}

// UploadAudio implements [AudioStore]. It PUTs the audio bytes under the
// voice-messages path of the configured bucket. A missing bucket is
// created public-read and the upload retried once.
func (s *storageAdapter) UploadAudio(ctx context.Context, audio []byte, name string, durationSeconds int) (models.StoredObject, error) {
	log := logger.FromContext(ctx)

	objectPath := fmt.Sprintf("/object/%s/%s/%s", s.cfg.Bucket, voiceMessagePath, name)

	resp, err := s.put(ctx, objectPath, audio)
	if err != nil {
		log.Err(err).Str("func", "*storageAdapter.UploadAudio").Msg("error: upload request failed")
		return models.StoredObject{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	if isBucketMissing(resp) {
		if err = s.createBucket(ctx); err != nil {
			return models.StoredObject{}, err
		}

		resp, err = s.put(ctx, objectPath, audio)
		if err != nil {
			log.Err(err).Str("func", "*storageAdapter.UploadAudio").Msg("error: upload retry failed")
			return models.StoredObject{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
		}
	}

	if resp.IsError() {
		log.Error().Str("func", "*storageAdapter.UploadAudio").Int("status", resp.StatusCode()).Msg("error: storage returned failure")
		return models.StoredObject{}, fmt.Errorf("%w: status %d", ErrUploadFailed, resp.StatusCode())
	}

	return models.StoredObject{
		URL:             s.publicURL(name),
		DurationSeconds: durationSeconds,
	}, nil
}

func (s *storageAdapter) put(ctx context.Context, path string, audio []byte) (*resty.Response, error) {
	return s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.cfg.ServiceKey).
		SetHeader("Content-Type", "audio/mpeg").
		SetBody(audio).
		Put(path)
}

type bucketRequest struct {
	Name   string `json:"name"`
	Public bool   `json:"public"`
}

// createBucket creates the configured bucket with public-read access.
func (s *storageAdapter) createBucket(ctx context.Context) error {
	log := logger.FromContext(ctx)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.cfg.ServiceKey).
		SetHeader("Content-Type", "application/json").
		SetBody(bucketRequest{Name: s.cfg.Bucket, Public: true}).
		Post("/bucket")
	if err != nil {
		log.Err(err).Str("func", "*storageAdapter.createBucket").Msg("error: bucket create request failed")
		return fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "*storageAdapter.createBucket").Int("status", resp.StatusCode()).Msg("error: bucket create returned failure")
		return fmt.Errorf("%w: bucket create status %d", ErrUploadFailed, resp.StatusCode())
	}

	return nil
}

func (s *storageAdapter) publicURL(name string) string {
	return fmt.Sprintf("%s/object/public/%s/%s/%s", s.client.BaseURL, s.cfg.Bucket, voiceMessagePath, name)
}

func isBucketMissing(resp *resty.Response) bool {
	return resp.StatusCode() == http.StatusNotFound &&
		strings.Contains(strings.ToLower(string(resp.Body())), "bucket")
}
