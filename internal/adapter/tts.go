package adapter

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/coach-courier/internal/config"
	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/internal/utils"
	"github.com/MKhiriev/coach-courier/models"
)

// baseWordsPerSecond is the speaking rate at speed 1.0 used to estimate
// the spoken duration of a script. The estimate replaces decoding the
// returned audio; it only feeds the UI's duration label.
const baseWordsPerSecond = 2.5

type ttsAdapter struct {
	client *utils.HTTPClient
	cfg    config.TTS

	logger *logger.Logger
}

// NewTTSAdapter constructs an HTTP implementation of [VoiceSynthesizer]
// against the configured text-to-speech service. An empty API key is not
// an error here: the adapter is built in a disabled state and every
// Synthesize call reports [ErrSynthesisUnavailable].
func NewTTSAdapter(cfg config.TTS, logger *logger.Logger) (VoiceSynthesizer, error) {
	client := utils.NewHTTPClient()

	if cfg.BaseURL != "" {
		baseURL, err := normalizeBaseURL(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid tts base url: %w", err)
		}
		client.SetBaseURL(baseURL)
	}

	return &ttsAdapter{client: client, cfg: cfg, logger: logger}, nil
}

type synthesizeRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id,omitempty"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	Speed           float64 `json:"speed"`
}

// Synthesize implements [VoiceSynthesizer]. It POSTs the script to the
// voice endpoint with the configured prosody settings and returns the raw
// audio bytes. The duration is estimated from word count and speed, never
// measured from the audio.
func (t *ttsAdapter) Synthesize(ctx context.Context, script string) (models.Synthesis, error) {
	log := logger.FromContext(ctx)

	if t.cfg.APIKey == "" || t.cfg.BaseURL == "" {
		log.Debug().Str("func", "*ttsAdapter.Synthesize").Msg("tts not configured, skipping synthesis")
		return models.Synthesis{}, ErrSynthesisUnavailable
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("xi-api-key", t.cfg.APIKey).
		SetBody(synthesizeRequest{
			Text:    script,
			ModelID: t.cfg.ModelID,
			VoiceSettings: voiceSettings{
				Stability:       t.cfg.Stability,
				SimilarityBoost: t.cfg.Similarity,
				Style:           t.cfg.Style,
				Speed:           t.speed(),
			},
		}).
		Post("/v1/text-to-speech/" + t.cfg.VoiceID)
	if err != nil {
		log.Err(err).Str("func", "*ttsAdapter.Synthesize").Msg("error: tts request failed")
		return models.Synthesis{}, fmt.Errorf("%w: %w", ErrSynthesisUnavailable, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "*ttsAdapter.Synthesize").Int("status", resp.StatusCode()).Msg("error: tts service returned failure")
		return models.Synthesis{}, fmt.Errorf("%w: status %d", ErrSynthesisUnavailable, resp.StatusCode())
	}

	audio := resp.Body()
	if len(audio) == 0 {
		return models.Synthesis{}, fmt.Errorf("%w: empty audio response", ErrSynthesisUnavailable)
	}

	return models.Synthesis{
		Audio:           audio,
		DurationSeconds: estimateDuration(script, t.speed()),
	}, nil
}

func (t *ttsAdapter) speed() float64 {
	if t.cfg.Speed <= 0 {
		return 1.0
	}
	return t.cfg.Speed
}

// estimateDuration approximates the spoken length of a script at the
// given speed, never below one second.
func estimateDuration(script string, speed float64) int {
	words := len(strings.Fields(script))
	seconds := int(math.Ceil(float64(words) / baseWordsPerSecond / speed))
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}
