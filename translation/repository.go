package translation

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewLanguageRepository(db *bun.DB) repository.Repository[*Language] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Language]{
		NewRecord: func() *Language { return &Language{} },
		GetID: func(l *Language) uuid.UUID {
			return l.ID
		},
		SetID: func(l *Language, id uuid.UUID) {
			l.ID = id
		},
		GetIdentifier: func() string {
			return "code"
		},
		GetIdentifierValue: func(l *Language) string {
			return l.Code
		},
	})
}

func NewSectionTranslationRepository(db *bun.DB) repository.Repository[*SectionTranslation] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*SectionTranslation]{
		NewRecord: func() *SectionTranslation { return &SectionTranslation{} },
		GetID: func(st *SectionTranslation) uuid.UUID {
			return st.ID
		},
		SetID: func(st *SectionTranslation, id uuid.UUID) {
			st.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(st *SectionTranslation) string {
			if st == nil {
				return ""
			}
			return st.ID.String()
		},
	})
}

func NewModuleTranslationRepository(db *bun.DB) repository.Repository[*ModuleTranslation] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*ModuleTranslation]{
		NewRecord: func() *ModuleTranslation { return &ModuleTranslation{} },
		GetID: func(mt *ModuleTranslation) uuid.UUID {
			return mt.ID
		},
		SetID: func(mt *ModuleTranslation, id uuid.UUID) {
			mt.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(mt *ModuleTranslation) string {
			if mt == nil {
				return ""
			}
			return mt.ID.String()
		},
	})
}
