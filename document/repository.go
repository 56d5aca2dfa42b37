package document

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewDocumentRepository(db *bun.DB) repository.Repository[*Document] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Document]{
		NewRecord: func() *Document { return &Document{} },
		GetID: func(d *Document) uuid.UUID {
			return d.ID
		},
		SetID: func(d *Document, id uuid.UUID) {
			d.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(d *Document) string {
			return d.Slug
		},
	})
}

func NewSectionRepository(db *bun.DB) repository.Repository[*Section] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Section]{
		NewRecord: func() *Section { return &Section{} },
		GetID: func(s *Section) uuid.UUID {
			return s.ID
		},
		SetID: func(s *Section, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(s *Section) string {
			if s == nil {
				return ""
			}
			return s.ID.String()
		},
	})
}

func NewModuleRepository(db *bun.DB) repository.Repository[*Module] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Module]{
		NewRecord: func() *Module { return &Module{} },
		GetID: func(m *Module) uuid.UUID {
			return m.ID
		},
		SetID: func(m *Module, id uuid.UUID) {
			m.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(m *Module) string {
			if m == nil {
				return ""
			}
			return m.ID.String()
		},
	})
}
