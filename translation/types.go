package translation

import (
	"context"
	"time"

	"github.com/doclane/doclane/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Language represents a target language for translations.
type Language struct {
	bun.BaseModel `bun:"table:languages,alias:lg"`

	ID        uuid.UUID  `bun:",pk,type:uuid"        json:"id"`
	Code      string     `bun:"code,notnull"         json:"code"`
	Name      string     `bun:"name,notnull"         json:"name"`
	IsDefault bool       `bun:"is_default,notnull,default:false" json:"is_default"`
	DeletedAt *time.Time `bun:"deleted_at,nullzero"  json:"deleted_at,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// SectionTranslation stores the localized title/description of a section,
// keyed by (section, language).
type SectionTranslation struct {
	bun.BaseModel `bun:"table:section_translations,alias:st"`

	ID          uuid.UUID     `bun:",pk,type:uuid"                json:"id"`
	SectionID   uuid.UUID     `bun:"section_id,notnull,type:uuid" json:"section_id"`
	LanguageID  uuid.UUID     `bun:"language_id,notnull,type:uuid" json:"language_id"`
	Title       string        `bun:"title,notnull"                json:"title"`
	Description *string       `bun:"description"                  json:"description,omitempty"`
	Status      domain.Status `bun:"status,notnull,default:'draft'" json:"status"`
	CreatedAt   time.Time     `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time     `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// ModuleTranslation stores the localized content payload of a module, keyed
// by (module, language). Content mirrors the module's original JSON shape
// with translated leaf values.
type ModuleTranslation struct {
	bun.BaseModel `bun:"table:module_translations,alias:mt"`

	ID         uuid.UUID      `bun:",pk,type:uuid"               json:"id"`
	ModuleID   uuid.UUID      `bun:"module_id,notnull,type:uuid" json:"module_id"`
	LanguageID uuid.UUID      `bun:"language_id,notnull,type:uuid" json:"language_id"`
	Content    map[string]any `bun:"content,type:jsonb"          json:"content"`
	Status     domain.Status  `bun:"status,notnull,default:'draft'" json:"status"`
	CreatedAt  time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt  time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Reader is the translation lookup surface used during export walks.
type Reader interface {
	GetSectionTranslation(ctx context.Context, sectionID, languageID uuid.UUID) (*SectionTranslation, error)
	GetModuleTranslation(ctx context.Context, moduleID, languageID uuid.UUID) (*ModuleTranslation, error)
}

// Store is the upsert target of the synchronization applier. The engine never
// assumes more than "does one exist for this key, and if so what is its id".
type Store interface {
	Reader
	CreateSectionTranslation(ctx context.Context, record *SectionTranslation) (*SectionTranslation, error)
	UpdateSectionTranslation(ctx context.Context, record *SectionTranslation) (*SectionTranslation, error)
	CreateModuleTranslation(ctx context.Context, record *ModuleTranslation) (*ModuleTranslation, error)
	UpdateModuleTranslation(ctx context.Context, record *ModuleTranslation) (*ModuleTranslation, error)
}

// LanguageRepository provides persistence for the language catalog.
type LanguageRepository interface {
	Create(ctx context.Context, record *Language) (*Language, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Language, error)
	GetByCode(ctx context.Context, code string) (*Language, error)
	List(ctx context.Context) ([]*Language, error)
}
