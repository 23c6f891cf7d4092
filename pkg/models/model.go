package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel holds the ID and timestamps every resource has.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	Timestamps
}

// Timestamps only contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time       `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`                                             // Time the resource was created
	UpdatedAt time.Time       `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"`                                             // Last time the resource was updated
	DeletedAt *gorm.DeletedAt `json:"deletedAt" gorm:"index" example:"2022-04-22T21:01:05.058161Z" swaggertype:"primitive,string"` // Time the resource was marked as deleted
}

// utc returns a copy of t in UTC, nil for nil.
//
// SQLite returns stored times with a fixed +0000 zone, which is not equal
// to time.UTC when compared with ==.
func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	u := t.In(time.UTC)
	return &u
}

// AfterFind sets the location of all timestamps to UTC.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = *utc(&m.CreatedAt)
	m.UpdatedAt = *utc(&m.UpdatedAt)

	if m.DeletedAt != nil {
		m.DeletedAt.Time = *utc(&m.DeletedAt.Time)
	}

	return nil
}

// BeforeCreate is set to generate a UUID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
