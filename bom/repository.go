package bom

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewBomRepository(db *bun.DB) repository.Repository[*Bom] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Bom]{
		NewRecord: func() *Bom { return &Bom{} },
		GetID: func(b *Bom) uuid.UUID {
			return b.ID
		},
		SetID: func(b *Bom, id uuid.UUID) {
			b.ID = id
		},
		GetIdentifier: func() string {
			return "name"
		},
		GetIdentifierValue: func(b *Bom) string {
			return b.Name
		},
	})
}

func NewItemRepository(db *bun.DB) repository.Repository[*Item] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Item]{
		NewRecord: func() *Item { return &Item{} },
		GetID: func(i *Item) uuid.UUID {
			return i.ID
		},
		SetID: func(i *Item, id uuid.UUID) {
			i.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(i *Item) string {
			if i == nil {
				return ""
			}
			return i.ID.String()
		},
	})
}
