// Package queue defines message payloads exchanged over the message broker.
package queue

// AttendanceRecordedEvent is published when a single row is added to
// the attendance ledger (manual add or member check-in).  Bulk CSV
// imports replace the whole ledger and do not emit per-row events.  The
// payload carries enough for downstream consumers to audit or notify
// without reading the primary store.
type AttendanceRecordedEvent struct {
	RecordID    string `json:"record_id"`
	ServiceDate string `json:"service_date"`
	ServiceName string `json:"service_name"`
	Attendee    string `json:"attendee"`
	Household   int    `json:"household"`
	Source      string `json:"source"` // "manual" | "checkin"
	RecordedAt  string `json:"recorded_at"`
}

// AbsenceRecordedEvent is published when an absence note is filed for a
// member who missed a service.
type AbsenceRecordedEvent struct {
	RecordID    string `json:"record_id"`
	ServiceDate string `json:"service_date"`
	ServiceName string `json:"service_name"`
	Attendee    string `json:"attendee"`
	Note        string `json:"note"`
	RecordedAt  string `json:"recorded_at"`
}
