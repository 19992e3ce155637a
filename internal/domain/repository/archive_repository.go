package repository

import (
	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/entity"

	"gorm.io/gorm"
)

// ArchiveRepository persists serialized record collections as opaque blobs,
// one per collection name. SaveAll upserts a whole snapshot generation
// atomically so readers never see mixed-generation collections.
type ArchiveRepository interface {
	SaveAll(db *gorm.DB, blobs []*entity.ArchiveBlob) error
	FindByName(db *gorm.DB, name string) (*entity.ArchiveBlob, error)
}
