package models

import "time"

// MessageTypeDirect is the only message type produced by this workflow;
// the chat UI renders it as a direct message from the coach.
const MessageTypeDirect = "DIRECT"

// AttachmentTypeVoice marks a message whose attachment is a voice note.
const AttachmentTypeVoice = "voice"

// VoiceMessageContent is the placeholder body stored on voice-note
// messages; the real payload lives in the attachment fields.
const VoiceMessageContent = "🎤 Voice message"

// Message is a single direct message from a coach persona to a user.
// Rows are immutable once created.
type Message struct {
	// MessageID is the internal unique identifier of the message.
	MessageID int64 `json:"id"`

	// SenderID references the coach persona User sending the message.
	SenderID int64 `json:"sender_id"`

	// ReceiverID references the User the message is addressed to.
	ReceiverID int64 `json:"receiver_id"`

	// Content is the message body. For voice notes it holds
	// VoiceMessageContent and the attachment fields carry the payload.
	Content string `json:"content"`

	// Type is always MessageTypeDirect for messages written here.
	Type string `json:"type"`

	// AttachmentURL is the public URL of the uploaded voice note,
	// empty for plain text messages.
	AttachmentURL string `json:"attachment_url,omitempty"`

	// AttachmentType is AttachmentTypeVoice when AttachmentURL is set.
	AttachmentType string `json:"attachment_type,omitempty"`

	// AttachmentName is the display label shown by the chat UI.
	AttachmentName string `json:"attachment_name,omitempty"`

	// VoiceDuration is the spoken length of the voice note in seconds,
	// zero for plain text messages.
	VoiceDuration int `json:"voice_duration,omitempty"`

	// CreatedAt is the message creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}
