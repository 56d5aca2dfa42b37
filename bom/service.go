package bom

import (
	"context"

	"github.com/doclane/doclane/internal/logging"
	"github.com/doclane/doclane/pkg/interfaces"
	"github.com/google/uuid"
)

// ResolverOption mutates the resolver configuration.
type ResolverOption func(*Resolver)

// WithLogger injects the logger used by the resolver.
func WithLogger(logger interfaces.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Resolver exposes the distinct component descriptions of a BOM. It is the
// satellite lookup used by bom-type modules during translation extraction.
type Resolver struct {
	items  ItemRepository
	logger interfaces.Logger
}

// NewResolver constructs a BOM description resolver.
func NewResolver(items ItemRepository, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		items:  items,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ComponentDescriptions returns one entry per distinct component code in the
// BOM, preserving item order. The first occurrence of a code wins.
func (r *Resolver) ComponentDescriptions(ctx context.Context, bomID uuid.UUID) ([]ComponentDescription, error) {
	if bomID == uuid.Nil {
		return nil, ErrBomIDRequired
	}

	items, err := r.items.ListByBom(ctx, bomID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(items))
	out := make([]ComponentDescription, 0, len(items))
	for _, item := range items {
		if item == nil || item.Component == nil {
			continue
		}
		code := item.Component.Code
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, ComponentDescription{
			Code:        code,
			Description: item.Component.Description,
		})
	}

	r.logger.Debug("bom.descriptions.resolved", "bom_id", bomID, "components", len(out))
	return out, nil
}
