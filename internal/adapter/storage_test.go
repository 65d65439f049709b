package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/coach-courier/internal/config"
	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, serverURL string) *storageAdapter {
	t.Helper()
	a, err := NewStorageAdapter(config.ObjectStorage{
		BaseURL:    serverURL,
		ServiceKey: "service-key",
		Bucket:     "voice-notes",
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*storageAdapter)
}

func TestUploadAudio_Success(t *testing.T) {
	audio := []byte("mpeg-audio-bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/object/voice-notes/voice-messages/welcome-7.mp3", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, audio, body)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestStorage(t, srv.URL)
	got, err := a.UploadAudio(context.Background(), audio, "welcome-7.mp3", 14)

	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/object/public/voice-notes/voice-messages/welcome-7.mp3", got.URL)
	assert.Equal(t, 14, got.DurationSeconds)
}

func TestUploadAudio_CreatesMissingBucketAndRetries(t *testing.T) {
	var uploads, bucketCreates int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/bucket":
			bucketCreates++
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodPut:
			uploads++
			if uploads == 1 {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"error":"Bucket not found"}`))
				return
			}
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestStorage(t, srv.URL)
	got, err := a.UploadAudio(context.Background(), []byte("audio"), "note.mp3", 5)

	require.NoError(t, err)
	assert.Equal(t, 2, uploads)
	assert.Equal(t, 1, bucketCreates)
	assert.NotEmpty(t, got.URL)
}

func TestUploadAudio_FailureAfterRetry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/bucket" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Bucket not found"}`))
	}))
	defer srv.Close()

	a := newTestStorage(t, srv.URL)
	_, err := a.UploadAudio(context.Background(), []byte("audio"), "note.mp3", 5)

	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestUploadAudio_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestStorage(t, srv.URL)
	_, err := a.UploadAudio(context.Background(), []byte("audio"), "note.mp3", 5)

	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestNewStorageAdapter_Invalid(t *testing.T) {
	_, err := NewStorageAdapter(config.ObjectStorage{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewStorageAdapter(config.ObjectStorage{BaseURL: "http://storage.local"}, logger.Nop())
	assert.Error(t, err)
}
