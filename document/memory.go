package document

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryDocumentRepository is an in-memory implementation for scaffolding and tests.
type MemoryDocumentRepository struct {
	mu        sync.RWMutex
	documents map[uuid.UUID]*Document
	slugIndex map[string]uuid.UUID
}

// NewMemoryDocumentRepository creates an empty in-memory document repository.
func NewMemoryDocumentRepository() *MemoryDocumentRepository {
	return &MemoryDocumentRepository{
		documents: make(map[uuid.UUID]*Document),
		slugIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied document.
func (m *MemoryDocumentRepository) Create(_ context.Context, record *Document) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneDocument(record)
	m.documents[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneDocument(copied), nil
}

// GetByID retrieves a document by identifier.
func (m *MemoryDocumentRepository) GetByID(_ context.Context, id uuid.UUID) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.documents[id]
	if !ok {
		return nil, &NotFoundError{Resource: "document", Key: id.String()}
	}
	return cloneDocument(rec), nil
}

// GetBySlug retrieves a document by slug, returning NotFoundError when absent.
func (m *MemoryDocumentRepository) GetBySlug(_ context.Context, slug string) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "document", Key: slug}
	}
	return cloneDocument(m.documents[id]), nil
}

// List returns all documents.
func (m *MemoryDocumentRepository) List(_ context.Context) ([]*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Document, 0, len(m.documents))
	for _, rec := range m.documents {
		out = append(out, cloneDocument(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

// MemorySectionRepository stores sections in-memory.
type MemorySectionRepository struct {
	mu       sync.RWMutex
	sections map[uuid.UUID]*Section
}

// NewMemorySectionRepository constructs the repository.
func NewMemorySectionRepository() *MemorySectionRepository {
	return &MemorySectionRepository{sections: make(map[uuid.UUID]*Section)}
}

// Create inserts the supplied section.
func (m *MemorySectionRepository) Create(_ context.Context, record *Section) (*Section, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneSection(record)
	m.sections[copied.ID] = copied
	return cloneSection(copied), nil
}

// GetByID fetches a section.
func (m *MemorySectionRepository) GetByID(_ context.Context, id uuid.UUID) (*Section, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.sections[id]
	if !ok {
		return nil, &NotFoundError{Resource: "section", Key: id.String()}
	}
	return cloneSection(rec), nil
}

// ListByDocument returns the document's sections ordered by position.
func (m *MemorySectionRepository) ListByDocument(_ context.Context, documentID uuid.UUID) ([]*Section, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Section, 0)
	for _, rec := range m.sections {
		if rec.DocumentID == documentID {
			out = append(out, cloneSection(rec))
		}
	}
	sortSections(out)
	return out, nil
}

// MemoryModuleRepository stores content modules in-memory.
type MemoryModuleRepository struct {
	mu      sync.RWMutex
	modules map[uuid.UUID]*Module
}

// NewMemoryModuleRepository constructs the repository.
func NewMemoryModuleRepository() *MemoryModuleRepository {
	return &MemoryModuleRepository{modules: make(map[uuid.UUID]*Module)}
}

// Create inserts the supplied module.
func (m *MemoryModuleRepository) Create(_ context.Context, record *Module) (*Module, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneModule(record)
	m.modules[copied.ID] = copied
	return cloneModule(copied), nil
}

// Update replaces a stored module.
func (m *MemoryModuleRepository) Update(_ context.Context, record *Module) (*Module, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.modules[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "module", Key: record.ID.String()}
	}
	copied := cloneModule(record)
	m.modules[copied.ID] = copied
	return cloneModule(copied), nil
}

// GetByID fetches a module.
func (m *MemoryModuleRepository) GetByID(_ context.Context, id uuid.UUID) (*Module, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.modules[id]
	if !ok {
		return nil, &NotFoundError{Resource: "module", Key: id.String()}
	}
	return cloneModule(rec), nil
}

// ListBySection returns the section's modules ordered by position.
func (m *MemoryModuleRepository) ListBySection(_ context.Context, sectionID uuid.UUID) ([]*Module, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Module, 0)
	for _, rec := range m.modules {
		if rec.SectionID == sectionID {
			out = append(out, cloneModule(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func sortSections(sections []*Section) {
	sort.Slice(sections, func(i, j int) bool {
		if sections[i].Position != sections[j].Position {
			return sections[i].Position < sections[j].Position
		}
		return sections[i].ID.String() < sections[j].ID.String()
	})
}

func cloneDocument(src *Document) *Document {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Sections = nil
	return &copied
}

func cloneSection(src *Section) *Section {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Modules = nil
	return &copied
}

func cloneModule(src *Module) *Module {
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
