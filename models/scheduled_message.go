// SPDX-License-Identifier: Apache-2.0

package models

import (
	"database/sql"
	"strings"
	"time"
)

// ScheduledMessage statuses. A row moves PENDING → PROCESSING → SENT on
// success, or to FAILED with LastError recorded. FAILED rows are never
// retried automatically; an operator requeues them back to PENDING.
const (
	ScheduledStatusPending    = "PENDING"
	ScheduledStatusProcessing = "PROCESSING"
	ScheduledStatusSent       = "SENT"
	ScheduledStatusFailed     = "FAILED"
)

// ScheduledMessage kinds. LITERAL rows carry a pre-rendered welcome body
// and voice script; TRIGGER rows defer a dispatcher invocation.
const (
	ScheduledKindLiteral = "LITERAL"
	ScheduledKindTrigger = "TRIGGER"
)

// legacyTriggerPrefix is the control-string prefix the original system
// smuggled into the text column ("trigger:<name>:<value>"). Rows written
// before the kind column existed are still recognized through it.
const legacyTriggerPrefix = "trigger:"

// ScheduledMessage is a durable deferred send, polled and processed by the
// background worker. Rows are never deleted; they double as an audit trail.
type ScheduledMessage struct {
	ScheduledMessageID int64 `json:"id"`
	SenderID           int64 `json:"sender_id"`
	ReceiverID         int64 `json:"receiver_id"`

	// Kind discriminates the payload: ScheduledKindLiteral or
	// ScheduledKindTrigger.
	Kind string `json:"kind"`

	// TextContent is the pre-personalized message body for LITERAL rows.
	// Legacy rows may instead hold a "trigger:<name>:<value>" control
	// string; see ReplayTrigger.
	TextContent string `json:"text_content"`

	// VoiceScript is the pre-personalized script of the voice note,
	// empty when the send has no voice part.
	VoiceScript string `json:"voice_script,omitempty"`

	// TriggerName and TriggerValue describe the deferred dispatch for
	// TRIGGER rows; empty otherwise.
	TriggerName  string `json:"trigger_name,omitempty"`
	TriggerValue string `json:"trigger_value,omitempty"`

	// ScheduledFor is the earliest time the worker may deliver the row.
	ScheduledFor time.Time `json:"scheduled_for"`

	Status    string       `json:"status"`
	Attempts  int          `json:"attempts"`
	LastError string       `json:"last_error,omitempty"`
	SentAt    sql.NullTime `json:"sent_at"`
	CreatedAt time.Time    `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ScheduledMessage model.
func (s ScheduledMessage) TableName() string {
	return "scheduled_messages"
}

// ReplayTrigger returns the deferred trigger name/value for rows that
// should be replayed through the dispatcher. It understands both the
// explicit TRIGGER kind and the legacy control-string encoding.
func (s ScheduledMessage) ReplayTrigger() (name, value string, ok bool) {
	if s.Kind == ScheduledKindTrigger && s.TriggerName != "" {
		return s.TriggerName, s.TriggerValue, true
	}

	if strings.HasPrefix(s.TextContent, legacyTriggerPrefix) {
		parts := strings.SplitN(s.TextContent, ":", 3)
		if len(parts) >= 2 && parts[1] != "" {
			name = parts[1]
			if len(parts) == 3 {
				value = parts[2]
			}
			return name, value, true
		}
	}

	return "", "", false
}
