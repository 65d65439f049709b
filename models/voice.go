package models

// Synthesis is the result of a text-to-speech call: raw audio bytes plus
// an estimated spoken duration. The duration is derived from word count
// and the configured speaking speed, not measured from the audio.
type Synthesis struct {
	// Audio holds the synthesized audio bytes (MPEG stream).
	Audio []byte `json:"-"`

	// DurationSeconds is the estimated spoken length, never below 1.
	DurationSeconds int `json:"duration_seconds"`
}

// StoredObject describes an uploaded blob: its public URL and the spoken
// duration carried through from synthesis.
type StoredObject struct {
	URL             string `json:"url"`
	DurationSeconds int    `json:"duration_seconds"`
}
