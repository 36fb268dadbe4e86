package model

import "strings"

// Member is one row of the member roster.  The Attendee display name is
// derived from the name parts and serves as the join key against
// attendance entries; there is no foreign key between the ledgers.
//
// Fields:
//  ID        – stable identifier assigned at creation (UUID string).
//  FirstName – given name.
//  LastName  – family name.
//  Attendee  – "FirstName LastName", trimmed.
//  Notes     – optional free text.
//  Active    – whether the member is offered for check-in and counted
//              when reconciling absentees.  Stored as 1/0.
type Member struct {
	ID        string `json:"id"`         // members.id
	FirstName string `json:"first_name"` // members.first_name
	LastName  string `json:"last_name"`  // members.last_name
	Attendee  string `json:"attendee"`   // members.attendee
	Notes     string `json:"notes"`      // members.notes
	Active    bool   `json:"active"`     // members.active
}

// DisplayName composes the attendee display name from name parts.
func DisplayName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
