package document

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Document is the root of a technical-documentation tree.
type Document struct {
	bun.BaseModel `bun:"table:documents,alias:d"`

	ID          uuid.UUID  `bun:",pk,type:uuid"        json:"id"`
	Title       string     `bun:"title,notnull"        json:"title"`
	Slug        string     `bun:"slug,notnull"         json:"slug"`
	Description *string    `bun:"description"          json:"description,omitempty"`
	CreatedBy   uuid.UUID  `bun:"created_by,type:uuid" json:"created_by"`
	DeletedAt   *time.Time `bun:"deleted_at,nullzero"  json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Sections []*Section `bun:"rel:has-many,join:id=document_id" json:"sections,omitempty"`
}

// Section is a node in a document's hierarchical outline. Sections may carry
// content modules and child sections.
type Section struct {
	bun.BaseModel `bun:"table:sections,alias:s"`

	ID          uuid.UUID  `bun:",pk,type:uuid"            json:"id"`
	DocumentID  uuid.UUID  `bun:"document_id,notnull,type:uuid" json:"document_id"`
	ParentID    *uuid.UUID `bun:"parent_id,type:uuid,nullzero"  json:"parent_id,omitempty"`
	Title       string     `bun:"title,notnull"            json:"title"`
	Description *string    `bun:"description"              json:"description,omitempty"`
	Position    int        `bun:"position,notnull,default:0" json:"position"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Modules []*Module `bun:"rel:has-many,join:id=section_id" json:"modules,omitempty"`
}

// Module is a typed unit of section content (text, image, table, BOM
// reference, …). Content is the type-specific JSON payload; some host stores
// persist it as a JSON string, so readers must tolerate both shapes.
type Module struct {
	bun.BaseModel `bun:"table:content_modules,alias:cm"`

	ID        uuid.UUID      `bun:",pk,type:uuid"             json:"id"`
	SectionID uuid.UUID      `bun:"section_id,notnull,type:uuid" json:"section_id"`
	Type      string         `bun:"type,notnull"              json:"type"`
	Content   map[string]any `bun:"content,type:jsonb"        json:"content"`
	Position  int            `bun:"position,notnull,default:0" json:"position"`
	CreatedAt time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Reader is the read surface the translation engine consumes. Section and
// module ordering must be deterministic across calls.
type Reader interface {
	GetSections(ctx context.Context, documentID uuid.UUID) ([]*Section, error)
	GetModules(ctx context.Context, sectionID uuid.UUID) ([]*Module, error)
}

// DocumentRepository provides persistence for documents.
type DocumentRepository interface {
	Create(ctx context.Context, record *Document) (*Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Document, error)
	GetBySlug(ctx context.Context, slug string) (*Document, error)
	List(ctx context.Context) ([]*Document, error)
}

// SectionRepository provides persistence for sections.
type SectionRepository interface {
	Create(ctx context.Context, record *Section) (*Section, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Section, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*Section, error)
}

// ModuleRepository provides persistence for content modules.
type ModuleRepository interface {
	Create(ctx context.Context, record *Module) (*Module, error)
	Update(ctx context.Context, record *Module) (*Module, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Module, error)
	ListBySection(ctx context.Context, sectionID uuid.UUID) ([]*Module, error)
}
