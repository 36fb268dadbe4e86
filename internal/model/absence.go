package model

// AbsenceNote is one row of the absence ledger: a free-text reason why
// a member missed a given service.  One row per (service, member).
type AbsenceNote struct {
	ID          string `json:"id"`           // absences.id
	Timestamp   string `json:"timestamp"`    // absences.recorded_at
	ServiceDate string `json:"service_date"` // absences.service_date
	ServiceName string `json:"service_name"` // absences.service_name
	Attendee    string `json:"attendee"`     // absences.attendee
	Note        string `json:"note"`         // absences.note
}
