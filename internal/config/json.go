package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	Coach struct {
		PersonaEmails        []string `json:"persona_emails"`
		WelcomeAudioURL      string   `json:"welcome_audio_url"`
		WelcomeAudioDuration int      `json:"welcome_audio_duration"`
	} `json:"coach,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		TTS struct {
			BaseURL    string  `json:"base_url"`
			APIKey     string  `json:"api_key"`
			VoiceID    string  `json:"voice_id"`
			ModelID    string  `json:"model_id"`
			Stability  float64 `json:"stability"`
			Similarity float64 `json:"similarity"`
			Style      float64 `json:"style"`
			Speed      float64 `json:"speed"`
		} `json:"tts,omitempty"`

		ObjectStorage struct {
			BaseURL    string `json:"base_url"`
			ServiceKey string `json:"service_key"`
			Bucket     string `json:"bucket"`
		} `json:"object_storage,omitempty"`

		Geo struct {
			BaseURL string   `json:"base_url"`
			Timeout Duration `json:"timeout"`
		} `json:"geo,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		PollInterval Duration `json:"poll_interval"`
		BatchSize    int      `json:"batch_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey: jsonCfg.App.TokenSignKey,
			TokenIssuer:  jsonCfg.App.TokenIssuer,
			Version:      jsonCfg.App.Version,
		},
		Coach: Coach{
			PersonaEmails:        jsonCfg.Coach.PersonaEmails,
			WelcomeAudioURL:      jsonCfg.Coach.WelcomeAudioURL,
			WelcomeAudioDuration: jsonCfg.Coach.WelcomeAudioDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			TTS: TTS{
				BaseURL:    jsonCfg.Adapter.TTS.BaseURL,
				APIKey:     jsonCfg.Adapter.TTS.APIKey,
				VoiceID:    jsonCfg.Adapter.TTS.VoiceID,
				ModelID:    jsonCfg.Adapter.TTS.ModelID,
				Stability:  jsonCfg.Adapter.TTS.Stability,
				Similarity: jsonCfg.Adapter.TTS.Similarity,
				Style:      jsonCfg.Adapter.TTS.Style,
				Speed:      jsonCfg.Adapter.TTS.Speed,
			},
			ObjectStorage: ObjectStorage{
				BaseURL:    jsonCfg.Adapter.ObjectStorage.BaseURL,
				ServiceKey: jsonCfg.Adapter.ObjectStorage.ServiceKey,
				Bucket:     jsonCfg.Adapter.ObjectStorage.Bucket,
			},
			Geo: Geo{
				BaseURL: jsonCfg.Adapter.Geo.BaseURL,
				Timeout: time.Duration(jsonCfg.Adapter.Geo.Timeout),
			},
		},
		Workers: Workers{
			PollInterval: time.Duration(jsonCfg.Workers.PollInterval),
			BatchSize:    jsonCfg.Workers.BatchSize,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
