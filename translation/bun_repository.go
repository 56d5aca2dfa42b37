package translation

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

// BunStore implements Store on top of bun. Each translation row is addressed
// by its (entity, language) pair; the primary-key upsert performed here is
// the only consistency mechanism the engine relies on.
type BunStore struct {
	sections repository.Repository[*SectionTranslation]
	modules  repository.Repository[*ModuleTranslation]
}

// NewBunStore creates a translation store without caching.
func NewBunStore(db *bun.DB) *BunStore {
	return NewBunStoreWithCache(db, nil, nil)
}

// NewBunStoreWithCache creates a translation store with optional read caching.
func NewBunStoreWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunStore {
	return &BunStore{
		sections: wrapWithCache(NewSectionTranslationRepository(db), cacheService, serializer),
		modules:  wrapWithCache(NewModuleTranslationRepository(db), cacheService, serializer),
	}
}

func (s *BunStore) GetSectionTranslation(ctx context.Context, sectionID, languageID uuid.UUID) (*SectionTranslation, error) {
	records, _, err := s.sections.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.section_id = ?", sectionID).
				Where("?TableAlias.language_id = ?", languageID)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "section_translation", translationKey(sectionID, languageID))
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "section_translation", Key: translationKey(sectionID, languageID)}
	}
	return records[0], nil
}

func (s *BunStore) GetModuleTranslation(ctx context.Context, moduleID, languageID uuid.UUID) (*ModuleTranslation, error) {
	records, _, err := s.modules.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.module_id = ?", moduleID).
				Where("?TableAlias.language_id = ?", languageID)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "module_translation", translationKey(moduleID, languageID))
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "module_translation", Key: translationKey(moduleID, languageID)}
	}
	return records[0], nil
}

func (s *BunStore) CreateSectionTranslation(ctx context.Context, record *SectionTranslation) (*SectionTranslation, error) {
	return s.sections.Create(ctx, record)
}

func (s *BunStore) UpdateSectionTranslation(ctx context.Context, record *SectionTranslation) (*SectionTranslation, error) {
	return s.sections.Update(ctx, record)
}

func (s *BunStore) CreateModuleTranslation(ctx context.Context, record *ModuleTranslation) (*ModuleTranslation, error) {
	return s.modules.Create(ctx, record)
}

func (s *BunStore) UpdateModuleTranslation(ctx context.Context, record *ModuleTranslation) (*ModuleTranslation, error) {
	return s.modules.Update(ctx, record)
}

// BunLanguageRepository implements LanguageRepository on top of bun.
type BunLanguageRepository struct {
	repo repository.Repository[*Language]
}

// NewBunLanguageRepository creates a language repository without caching.
func NewBunLanguageRepository(db *bun.DB) *BunLanguageRepository {
	return NewBunLanguageRepositoryWithCache(db, nil, nil)
}

// NewBunLanguageRepositoryWithCache creates a language repository with optional caching.
func NewBunLanguageRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunLanguageRepository {
	return &BunLanguageRepository{repo: wrapWithCache(NewLanguageRepository(db), cacheService, serializer)}
}

func (r *BunLanguageRepository) Create(ctx context.Context, record *Language) (*Language, error) {
	return r.repo.Create(ctx, record)
}

func (r *BunLanguageRepository) GetByID(ctx context.Context, id uuid.UUID) (*Language, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "language", id.String())
	}
	return record, nil
}

func (r *BunLanguageRepository) GetByCode(ctx context.Context, code string) (*Language, error) {
	record, err := r.repo.GetByIdentifier(ctx, code)
	if err != nil {
		return nil, mapRepositoryError(err, "language", code)
	}
	return record, nil
}

func (r *BunLanguageRepository) List(ctx context.Context) ([]*Language, error) {
	records, _, err := r.repo.List(ctx)
	return records, err
}

func translationKey(entityID, languageID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", entityID, languageID)
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
