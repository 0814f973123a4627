package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type TripStatus string

const (
	TripStatusDraft     TripStatus = "draft"
	TripStatusCompleted TripStatus = "completed"
)

// TripPlan is the persisted trip record. The full answer set rides along as
// jsonb; anchors are duplicated into a text[] column so they stay queryable
// without unpacking the blob.
type TripPlan struct {
	BaseModel
	UserID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	CityID    string     `gorm:"not null"`
	StartDate time.Time  `gorm:"not null"`
	EndDate   time.Time  `gorm:"not null"`
	Status    TripStatus `gorm:"index;not null"`

	Quiz    datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Anchors pq.StringArray `gorm:"type:text[]"`
}
