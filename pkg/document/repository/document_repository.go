package repository

import "propai/entities"

type DocumentRepository interface {
	SaveDocument(*entities.Document) error
	ListDocuments() ([]entities.Document, error)
	SaveReport(*entities.Report) error
}
