package bom

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Bom is a named bill of materials referenced by bom-type content modules.
type Bom struct {
	bun.BaseModel `bun:"table:boms,alias:b"`

	ID          uuid.UUID  `bun:",pk,type:uuid"       json:"id"`
	Name        string     `bun:"name,notnull"        json:"name"`
	Description *string    `bun:"description"         json:"description,omitempty"`
	DeletedAt   *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Items []*Item `bun:"rel:has-many,join:id=bom_id" json:"items,omitempty"`
}

// Component is a reusable part with a source-language description. Component
// descriptions live here, not inside module JSON content, which is why the
// translation engine resolves them through this package.
type Component struct {
	bun.BaseModel `bun:"table:components,alias:cp"`

	ID          uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Code        string    `bun:"code,notnull"  json:"code"`
	Description string    `bun:"description,notnull" json:"description"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// Item is one line of a bill of materials: a component with a quantity.
type Item struct {
	bun.BaseModel `bun:"table:bom_items,alias:bi"`

	ID          uuid.UUID `bun:",pk,type:uuid"            json:"id"`
	BomID       uuid.UUID `bun:"bom_id,notnull,type:uuid" json:"bom_id"`
	ComponentID uuid.UUID `bun:"component_id,notnull,type:uuid" json:"component_id"`
	Quantity    int       `bun:"quantity,notnull,default:1" json:"quantity"`
	Position    int       `bun:"position,notnull,default:0" json:"position"`

	Component *Component `bun:"rel:belongs-to,join:component_id=id" json:"component,omitempty"`
}

// ComponentDescription is the resolver's output: one distinct component code
// with its source-language description.
type ComponentDescription struct {
	Code        string
	Description string
}

// ItemRepository provides read access to BOM items with their components.
type ItemRepository interface {
	ListByBom(ctx context.Context, bomID uuid.UUID) ([]*Item, error)
}

// DescriptionResolver fetches the distinct component codes/descriptions of a
// BOM so they can be exposed for translation.
type DescriptionResolver interface {
	ComponentDescriptions(ctx context.Context, bomID uuid.UUID) ([]ComponentDescription, error)
}
