package repository

import (
	"errors"

	"go-inventory-kardex/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionRepository is a key-value blob store keyed by collection name.
// Load returns a nil payload when nothing has been stored under that name yet.
type CollectionRepository interface {
	Load(name string) ([]byte, error)
	Save(name string, payload []byte) error
	Names() ([]string, error)
}

type collectionRepo struct {
	db *gorm.DB
}

func NewCollectionRepo(db *gorm.DB) CollectionRepository {
	return &collectionRepo{db}
}

func (r *collectionRepo) Load(name string) ([]byte, error) {
	var rec model.Collection
	err := r.db.First(&rec, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.Payload, nil
}

// Save rewrites the whole collection (upsert on name)
func (r *collectionRepo) Save(name string, payload []byte) error {
	rec := model.Collection{Name: name, Payload: payload}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
}

func (r *collectionRepo) Names() ([]string, error) {
	var names []string
	err := r.db.Model(&model.Collection{}).Order("name ASC").Pluck("name", &names).Error
	return names, err
}
