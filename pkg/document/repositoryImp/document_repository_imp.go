package repositoryImp

import (
	"gorm.io/gorm"

	"propai/entities"
	"propai/pkg/document/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DocumentRepository { return &repo{db} }

func (r *repo) SaveDocument(d *entities.Document) error { return r.db.Create(d).Error }
func (r *repo) SaveReport(rep *entities.Report) error   { return r.db.Create(rep).Error }
func (r *repo) ListDocuments() ([]entities.Document, error) {
	var ds []entities.Document
	return ds, r.db.Order("created_at DESC").Find(&ds).Error
}
