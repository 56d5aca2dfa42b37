package translation

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type translationKeyPair struct {
	entityID   uuid.UUID
	languageID uuid.UUID
}

// MemoryStore is an in-memory Store implementation for scaffolding and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sections map[translationKeyPair]*SectionTranslation
	modules  map[translationKeyPair]*ModuleTranslation

	failSectionIDs map[uuid.UUID]error
	failModuleIDs  map[uuid.UUID]error
}

// NewMemoryStore creates an empty in-memory translation store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sections:       make(map[translationKeyPair]*SectionTranslation),
		modules:        make(map[translationKeyPair]*ModuleTranslation),
		failSectionIDs: make(map[uuid.UUID]error),
		failModuleIDs:  make(map[uuid.UUID]error),
	}
}

// FailSectionWrites makes subsequent writes for the given section fail with err.
func (m *MemoryStore) FailSectionWrites(sectionID uuid.UUID, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failSectionIDs[sectionID] = err
}

// FailModuleWrites makes subsequent writes for the given module fail with err.
func (m *MemoryStore) FailModuleWrites(moduleID uuid.UUID, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failModuleIDs[moduleID] = err
}

// GetSectionTranslation retrieves a section translation by (section, language).
func (m *MemoryStore) GetSectionTranslation(_ context.Context, sectionID, languageID uuid.UUID) (*SectionTranslation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.sections[translationKeyPair{sectionID, languageID}]
	if !ok {
		return nil, &NotFoundError{Resource: "section_translation", Key: translationKey(sectionID, languageID)}
	}
	return cloneSectionTranslation(rec), nil
}

// GetModuleTranslation retrieves a module translation by (module, language).
func (m *MemoryStore) GetModuleTranslation(_ context.Context, moduleID, languageID uuid.UUID) (*ModuleTranslation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.modules[translationKeyPair{moduleID, languageID}]
	if !ok {
		return nil, &NotFoundError{Resource: "module_translation", Key: translationKey(moduleID, languageID)}
	}
	return cloneModuleTranslation(rec), nil
}

// CreateSectionTranslation inserts a section translation.
func (m *MemoryStore) CreateSectionTranslation(_ context.Context, record *SectionTranslation) (*SectionTranslation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failSectionIDs[record.SectionID]; ok {
		return nil, err
	}
	copied := cloneSectionTranslation(record)
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	m.sections[translationKeyPair{copied.SectionID, copied.LanguageID}] = copied
	return cloneSectionTranslation(copied), nil
}

// UpdateSectionTranslation replaces a stored section translation.
func (m *MemoryStore) UpdateSectionTranslation(_ context.Context, record *SectionTranslation) (*SectionTranslation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failSectionIDs[record.SectionID]; ok {
		return nil, err
	}
	key := translationKeyPair{record.SectionID, record.LanguageID}
	if _, ok := m.sections[key]; !ok {
		return nil, &NotFoundError{Resource: "section_translation", Key: translationKey(record.SectionID, record.LanguageID)}
	}
	copied := cloneSectionTranslation(record)
	m.sections[key] = copied
	return cloneSectionTranslation(copied), nil
}

// CreateModuleTranslation inserts a module translation.
func (m *MemoryStore) CreateModuleTranslation(_ context.Context, record *ModuleTranslation) (*ModuleTranslation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failModuleIDs[record.ModuleID]; ok {
		return nil, err
	}
	copied := cloneModuleTranslation(record)
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	m.modules[translationKeyPair{copied.ModuleID, copied.LanguageID}] = copied
	return cloneModuleTranslation(copied), nil
}

// UpdateModuleTranslation replaces a stored module translation.
func (m *MemoryStore) UpdateModuleTranslation(_ context.Context, record *ModuleTranslation) (*ModuleTranslation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failModuleIDs[record.ModuleID]; ok {
		return nil, err
	}
	key := translationKeyPair{record.ModuleID, record.LanguageID}
	if _, ok := m.modules[key]; !ok {
		return nil, &NotFoundError{Resource: "module_translation", Key: translationKey(record.ModuleID, record.LanguageID)}
	}
	copied := cloneModuleTranslation(record)
	m.modules[key] = copied
	return cloneModuleTranslation(copied), nil
}

// MemoryLanguageRepository stores languages in-memory.
type MemoryLanguageRepository struct {
	mu        sync.RWMutex
	languages map[uuid.UUID]*Language
	codeIndex map[string]uuid.UUID
}

// NewMemoryLanguageRepository constructs the repository.
func NewMemoryLanguageRepository() *MemoryLanguageRepository {
	return &MemoryLanguageRepository{
		languages: make(map[uuid.UUID]*Language),
		codeIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied language.
func (m *MemoryLanguageRepository) Create(_ context.Context, record *Language) (*Language, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *record
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	m.languages[copied.ID] = &copied
	m.codeIndex[copied.Code] = copied.ID
	out := copied
	return &out, nil
}

// GetByID fetches a language.
func (m *MemoryLanguageRepository) GetByID(_ context.Context, id uuid.UUID) (*Language, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.languages[id]
	if !ok {
		return nil, &NotFoundError{Resource: "language", Key: id.String()}
	}
	out := *rec
	return &out, nil
}

// GetByCode fetches a language by its code.
func (m *MemoryLanguageRepository) GetByCode(_ context.Context, code string) (*Language, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.codeIndex[code]
	if !ok {
		return nil, &NotFoundError{Resource: "language", Key: code}
	}
	out := *m.languages[id]
	return &out, nil
}

// List returns all languages.
func (m *MemoryLanguageRepository) List(_ context.Context) ([]*Language, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Language, 0, len(m.languages))
	for _, rec := range m.languages {
		copied := *rec
		out = append(out, &copied)
	}
	return out, nil
}

func cloneSectionTranslation(src *SectionTranslation) *SectionTranslation {
	if src == nil {
		return nil
	}
	copied := *src
	if src.Description != nil {
		desc := *src.Description
		copied.Description = &desc
	}
	return &copied
}

func cloneModuleTranslation(src *ModuleTranslation) *ModuleTranslation {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Content = cloneMap(src.Content)
	return &copied
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		switch typed := value.(type) {
		case map[string]any:
			out[key] = cloneMap(typed)
		case []any:
			out[key] = cloneSlice(typed)
		default:
			out[key] = value
		}
	}
	return out
}

func cloneSlice(input []any) []any {
	if input == nil {
		return nil
	}
	out := make([]any, len(input))
	for i, value := range input {
		switch typed := value.(type) {
		case map[string]any:
			out[i] = cloneMap(typed)
		case []any:
			out[i] = cloneSlice(typed)
		default:
			out[i] = value
		}
	}
	return out
}
