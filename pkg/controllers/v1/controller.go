// Package v1 implements the v1 REST API.
package v1

import (
	"time"

	"github.com/duecal/backend/pkg/calendar"
	"github.com/duecal/backend/pkg/confirm"
)

// CleanupPhrase is the confirmation the default Confirmer expects
// for deleting all resources.
const CleanupPhrase = "yes-please-delete-everything"

// Controller serves the v1 API.
//
// Calendar builds the calendar views and is invalidated whenever
// transactions change. Confirmer approves the deletion of all resources.
type Controller struct {
	Calendar  *calendar.Service
	Confirmer confirm.Confirmer
}

// invalidate drops cached calendar data.
func (co Controller) invalidate() {
	if co.Calendar != nil {
		co.Calendar.Invalidate()
	}
}

// location returns the time zone calendar days are computed in.
func (co Controller) location() *time.Location {
	if co.Calendar != nil {
		return co.Calendar.Location()
	}
	return time.UTC
}
