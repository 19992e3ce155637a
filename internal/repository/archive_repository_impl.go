package repository

import (
	"errors"

	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/entity"
	domainRepo "github.com/pauloaguiarc/smarthealthsystem/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type archiveRepository struct{}

func NewArchiveRepository() domainRepo.ArchiveRepository {
	return &archiveRepository{}
}

// SaveAll upserts every blob in a single transaction, so a crash mid-save
// never leaves collections from different snapshot generations behind.
func (r *archiveRepository) SaveAll(db *gorm.DB, blobs []*entity.ArchiveBlob) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, blob := range blobs {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"data", "saved_at"}),
			}).Create(blob).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *archiveRepository) FindByName(db *gorm.DB, name string) (*entity.ArchiveBlob, error) {
	var blob entity.ArchiveBlob
	err := db.Where("name = ?", name).First(&blob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blob, nil
}
