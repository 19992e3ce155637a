package entity

import "time"

// ArchiveBlob is one serialized record collection, keyed by collection name
// ("patients", "doctors" or "appointments"). The persistence layer snapshots
// and restores collections wholesale; it never inspects the payload.
type ArchiveBlob struct {
	Name    string    `gorm:"type:varchar(50);primaryKey" json:"name"`
	Data    []byte    `gorm:"type:bytea;not null" json:"data"`
	SavedAt time.Time `gorm:"autoUpdateTime" json:"saved_at"`
}

func (ArchiveBlob) TableName() string {
	return "archive_blobs"
}

// Collection names used as archive blob keys.
const (
	ArchivePatients     = "patients"
	ArchiveDoctors      = "doctors"
	ArchiveAppointments = "appointments"
)
