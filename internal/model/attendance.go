package model

// AttendanceRecord is one row of the attendance ledger.  Each entry
// represents a single check-in for a service and may stand for more
// than one person via the Household count.  ServiceDate together with
// ServiceName identifies the service instance the entry belongs to.
//
// Fields:
//  ID          – stable identifier assigned at creation (UUID string).
//  Timestamp   – creation instant, local wall clock, "2006-01-02 15:04:05".
//  ServiceDate – calendar date of the service, ISO "2006-01-02".
//  ServiceName – free-text service label (e.g. "Sunday 1st Service").
//  Attendee    – display name of the person checked in.
//  Household   – number of people the entry represents, always >= 1.
//  Notes       – optional free text.
type AttendanceRecord struct {
	ID          string `json:"id"`           // attendance.id
	Timestamp   string `json:"timestamp"`    // attendance.recorded_at
	ServiceDate string `json:"service_date"` // attendance.service_date
	ServiceName string `json:"service_name"` // attendance.service_name
	Attendee    string `json:"attendee"`     // attendance.attendee
	Household   int    `json:"household"`    // attendance.household
	Notes       string `json:"notes"`        // attendance.notes
}

// ServiceKey identifies a single service instance: a calendar date plus
// the free-text service name.
type ServiceKey struct {
	Date string `json:"service_date"`
	Name string `json:"service_name"`
}
