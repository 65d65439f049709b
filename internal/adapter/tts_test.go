package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/coach-courier/internal/config"
	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTTS(t *testing.T, serverURL string, cfg config.TTS) *ttsAdapter {
	t.Helper()
	cfg.BaseURL = serverURL
	a, err := NewTTSAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*ttsAdapter)
}

func TestSynthesize_Success(t *testing.T) {
	audio := []byte("mpeg-audio-bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/text-to-speech/voice-1", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("xi-api-key"))

		var req synthesizeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Hi Anna, welcome!", req.Text)
		assert.Equal(t, "model-2", req.ModelID)
		assert.InDelta(t, 0.5, req.VoiceSettings.Stability, 1e-9)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(audio)
	}))
	defer srv.Close()

	a := newTestTTS(t, srv.URL, config.TTS{
		APIKey:    "secret-key",
		VoiceID:   "voice-1",
		ModelID:   "model-2",
		Stability: 0.5,
		Speed:     1.0,
	})

	got, err := a.Synthesize(context.Background(), "Hi Anna, welcome!")
	require.NoError(t, err)
	assert.Equal(t, audio, got.Audio)
	assert.Equal(t, 2, got.DurationSeconds) // 3 words / 2.5 wps, rounded up
}

func TestSynthesize_NoAPIKey(t *testing.T) {
	a, err := NewTTSAdapter(config.TTS{BaseURL: "http://localhost:1"}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Synthesize(context.Background(), "some script")
	assert.ErrorIs(t, err, ErrSynthesisUnavailable)
}

func TestSynthesize_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"invalid api key"}`))
	}))
	defer srv.Close()

	a := newTestTTS(t, srv.URL, config.TTS{APIKey: "bad-key", VoiceID: "voice-1"})

	_, err := a.Synthesize(context.Background(), "some script")
	assert.ErrorIs(t, err, ErrSynthesisUnavailable)
}

func TestSynthesize_EmptyAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestTTS(t, srv.URL, config.TTS{APIKey: "key", VoiceID: "voice-1"})

	_, err := a.Synthesize(context.Background(), "some script")
	assert.ErrorIs(t, err, ErrSynthesisUnavailable)
}

func TestEstimateDuration(t *testing.T) {
	tests := []struct {
		name   string
		script string
		speed  float64
		want   int
	}{
		{name: "empty script floors at one second", script: "", speed: 1.0, want: 1},
		{name: "five words at normal speed", script: "one two three four five", speed: 1.0, want: 2},
		{name: "faster speech shortens the estimate", script: "one two three four five six seven eight nine ten", speed: 2.0, want: 2},
		{name: "zero speed treated as normal", script: "one two three", speed: 0, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			speed := tt.speed
			if speed <= 0 {
				speed = 1.0
			}
			assert.Equal(t, tt.want, estimateDuration(tt.script, speed))
		})
	}
}
