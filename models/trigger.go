// SPDX-License-Identifier: Apache-2.0

package models

// Trigger names accepted by the dispatcher. The set is closed: an unknown
// trigger is logged and dropped, never an error.
const (
	TriggerFirstLogin              = "first_login"
	TriggerModuleComplete          = "module_complete"
	TriggerMiniDiplomaModule       = "mini_diploma_module_complete"
	TriggerWHLessonComplete        = "wh_lesson_complete"
	TriggerWHAccessExpiring        = "wh_access_expiring"
	TriggerWHInactivity            = "wh_inactivity"
	TriggerCertificateReady        = "certificate_ready"
	TriggerPricingPageVisit        = "pricing_page_visit"
	TriggerTrainingVideoComplete   = "training_video_complete"
	TriggerInactivitySevenDays     = "inactivity_7"
	TriggerSequenceDayPrefix       = "sequence_day_" // sequence_day_2 ... sequence_day_7
)

// TriggerRequest is the dispatcher invocation contract. TriggerValue is a
// stringified module/lesson index or a short day-count enum ("1", "2"),
// depending on the trigger; empty when the trigger carries no value.
type TriggerRequest struct {
	UserID       int64  `json:"user_id"`
	Trigger      string `json:"trigger"`
	TriggerValue string `json:"trigger_value,omitempty"`
}
