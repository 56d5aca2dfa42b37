package document

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunDocumentRepository implements DocumentRepository on top of bun.
type BunDocumentRepository struct {
	repo repository.Repository[*Document]
}

// NewBunDocumentRepository creates a document repository without caching.
func NewBunDocumentRepository(db *bun.DB) *BunDocumentRepository {
	return NewBunDocumentRepositoryWithCache(db, nil, nil)
}

// NewBunDocumentRepositoryWithCache creates a document repository with optional caching.
func NewBunDocumentRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunDocumentRepository {
	return &BunDocumentRepository{repo: wrapWithCache(NewDocumentRepository(db), cacheService, serializer)}
}

func (r *BunDocumentRepository) Create(ctx context.Context, record *Document) (*Document, error) {
	return r.repo.Create(ctx, record)
}

func (r *BunDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "document", id.String())
	}
	return record, nil
}

func (r *BunDocumentRepository) GetBySlug(ctx context.Context, slug string) (*Document, error) {
	record, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "document", slug)
	}
	return record, nil
}

func (r *BunDocumentRepository) List(ctx context.Context) ([]*Document, error) {
	records, _, err := r.repo.List(ctx)
	return records, err
}

// BunSectionRepository implements SectionRepository on top of bun.
type BunSectionRepository struct {
	repo repository.Repository[*Section]
}

// NewBunSectionRepository creates a section repository without caching.
func NewBunSectionRepository(db *bun.DB) *BunSectionRepository {
	return NewBunSectionRepositoryWithCache(db, nil, nil)
}

// NewBunSectionRepositoryWithCache creates a section repository with optional caching.
func NewBunSectionRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunSectionRepository {
	return &BunSectionRepository{repo: wrapWithCache(NewSectionRepository(db), cacheService, serializer)}
}

func (r *BunSectionRepository) Create(ctx context.Context, record *Section) (*Section, error) {
	return r.repo.Create(ctx, record)
}

func (r *BunSectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*Section, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "section", id.String())
	}
	return record, nil
}

func (r *BunSectionRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*Section, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.document_id = ?", documentID).
				OrderExpr("?TableAlias.position ASC, ?TableAlias.id ASC")
		}),
	)
	return records, err
}

// BunModuleRepository implements ModuleRepository on top of bun.
type BunModuleRepository struct {
	repo repository.Repository[*Module]
}

// NewBunModuleRepository creates a module repository without caching.
func NewBunModuleRepository(db *bun.DB) *BunModuleRepository {
	return NewBunModuleRepositoryWithCache(db, nil, nil)
}

// NewBunModuleRepositoryWithCache creates a module repository with optional caching.
func NewBunModuleRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunModuleRepository {
	return &BunModuleRepository{repo: wrapWithCache(NewModuleRepository(db), cacheService, serializer)}
}

func (r *BunModuleRepository) Create(ctx context.Context, record *Module) (*Module, error) {
	return r.repo.Create(ctx, record)
}

func (r *BunModuleRepository) Update(ctx context.Context, record *Module) (*Module, error) {
	return r.repo.Update(ctx, record)
}

func (r *BunModuleRepository) GetByID(ctx context.Context, id uuid.UUID) (*Module, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "module", id.String())
	}
	return record, nil
}

func (r *BunModuleRepository) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]*Module, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.section_id = ?", sectionID).
				OrderExpr("?TableAlias.position ASC, ?TableAlias.id ASC")
		}),
	)
	return records, err
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, serializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || serializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, serializer)
}
