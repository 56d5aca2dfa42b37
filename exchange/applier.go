package exchange

import (
	"context"
	"fmt"
	"time"

	"github.com/doclane/doclane/domain"
	"github.com/doclane/doclane/internal/logging"
	"github.com/doclane/doclane/pkg/interfaces"
	"github.com/doclane/doclane/translation"
	"github.com/google/uuid"
)

// ItemError reports one grouped item the applier could not persist.
type ItemError struct {
	Kind Kind
	ID   string
	Err  error
}

func (e ItemError) String() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.ID, e.Err)
}

// ApplyResult summarizes one import batch. Success is a post-hoc aggregate:
// partial application is a reported outcome, not an error state.
type ApplyResult struct {
	Success  bool
	Inserted int
	Updated  int
	Errors   []ItemError
}

// ApplierOption mutates the applier configuration.
type ApplierOption func(*Applier)

// ApplierWithLogger injects the logger used by the applier.
func ApplierWithLogger(logger interfaces.Logger) ApplierOption {
	return func(a *Applier) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// ApplierWithClock overrides the clock used for update timestamps.
func ApplierWithClock(clock func() time.Time) ApplierOption {
	return func(a *Applier) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// ApplierWithStatus overrides the status stamped on upserted translations.
// Human imports default to translated; the AI suggestion path uses
// ai_suggested so reviewers can tell the two apart.
func ApplierWithStatus(status domain.Status) ApplierOption {
	return func(a *Applier) {
		if status.Valid() {
			a.status = status
		}
	}
}

// Applier upserts reconstituted items against the translation store. Each
// item targets a distinct (entity, language) key, so writes never contend
// and the store's find-then-update-or-create is the only consistency
// mechanism needed.
type Applier struct {
	store  translation.Store
	logger interfaces.Logger
	clock  func() time.Time
	status domain.Status
}

// NewApplier constructs a synchronization applier.
func NewApplier(store translation.Store, opts ...ApplierOption) *Applier {
	a := &Applier{
		store:  store,
		logger: logging.NoOp(),
		clock:  time.Now,
		status: domain.StatusTranslated,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Apply upserts every item for the given language. Per-item failures are
// collected and never stop the batch; the caller receives the full
// inserted/updated/error accounting.
func (a *Applier) Apply(ctx context.Context, languageID uuid.UUID, items []*Item) ApplyResult {
	result := ApplyResult{}

	for _, item := range items {
		if item == nil {
			continue
		}
		inserted, err := a.applyItem(ctx, languageID, item)
		if err != nil {
			result.Errors = append(result.Errors, ItemError{Kind: item.Kind, ID: item.ID, Err: err})
			a.logger.Warn("exchange.apply.item_failed", "kind", item.Kind, "id", item.ID, "error", err)
			continue
		}
		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}

	result.Success = len(result.Errors) == 0
	return result
}

func (a *Applier) applyItem(ctx context.Context, languageID uuid.UUID, item *Item) (bool, error) {
	entityID, err := uuid.Parse(item.ID)
	if err != nil {
		return false, fmt.Errorf("exchange: invalid %s id %q: %w", item.Kind, item.ID, err)
	}

	switch item.Kind {
	case KindSection:
		return a.applySection(ctx, entityID, languageID, item)
	case KindModule:
		return a.applyModule(ctx, entityID, languageID, item)
	default:
		return false, fmt.Errorf("exchange: unknown item kind %q", item.Kind)
	}
}

func (a *Applier) applySection(ctx context.Context, sectionID, languageID uuid.UUID, item *Item) (bool, error) {
	title, _ := stringAt(item.Content, "title")
	description, hasDescription := stringAt(item.Content, "description")

	existing, err := a.store.GetSectionTranslation(ctx, sectionID, languageID)
	if err != nil && !translation.IsNotFound(err) {
		return false, err
	}

	now := a.clock()
	if existing != nil {
		existing.Title = title
		if hasDescription {
			existing.Description = &description
		}
		existing.Status = a.status
		existing.UpdatedAt = now
		if _, err := a.store.UpdateSectionTranslation(ctx, existing); err != nil {
			return false, err
		}
		return false, nil
	}

	record := &translation.SectionTranslation{
		ID:         uuid.New(),
		SectionID:  sectionID,
		LanguageID: languageID,
		Title:      title,
		Status:     a.status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if hasDescription {
		record.Description = &description
	}
	if _, err := a.store.CreateSectionTranslation(ctx, record); err != nil {
		return false, err
	}
	return true, nil
}

func (a *Applier) applyModule(ctx context.Context, moduleID, languageID uuid.UUID, item *Item) (bool, error) {
	existing, err := a.store.GetModuleTranslation(ctx, moduleID, languageID)
	if err != nil && !translation.IsNotFound(err) {
		return false, err
	}

	now := a.clock()
	if existing != nil {
		existing.Content = item.Content
		existing.Status = a.status
		existing.UpdatedAt = now
		if _, err := a.store.UpdateModuleTranslation(ctx, existing); err != nil {
			return false, err
		}
		return false, nil
	}

	record := &translation.ModuleTranslation{
		ID:         uuid.New(),
		ModuleID:   moduleID,
		LanguageID: languageID,
		Content:    item.Content,
		Status:     a.status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := a.store.CreateModuleTranslation(ctx, record); err != nil {
		return false, err
	}
	return true, nil
}
