package document

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doclane/doclane/internal/logging"
	"github.com/doclane/doclane/internal/validation"
	"github.com/doclane/doclane/pkg/interfaces"
	"github.com/google/uuid"
)

// Service exposes document authoring and read use cases. The translation
// engine only depends on the embedded Reader surface.
type Service interface {
	Reader
	CreateDocument(ctx context.Context, req CreateDocumentRequest) (*Document, error)
	CreateSection(ctx context.Context, req CreateSectionRequest) (*Section, error)
	CreateModule(ctx context.Context, req CreateModuleRequest) (*Module, error)
	UpdateModuleContent(ctx context.Context, req UpdateModuleContentRequest) (*Module, error)
}

// CreateDocumentRequest captures the information required to create a document.
type CreateDocumentRequest struct {
	Title       string
	Slug        string
	Description *string
	CreatedBy   uuid.UUID
}

// CreateSectionRequest captures the information required to create a section.
type CreateSectionRequest struct {
	DocumentID  uuid.UUID
	ParentID    *uuid.UUID
	Title       string
	Description *string
	Position    int
}

// CreateModuleRequest captures the information required to create a content module.
type CreateModuleRequest struct {
	SectionID uuid.UUID
	Type      string
	Content   map[string]any
	Position  int
}

// UpdateModuleContentRequest captures a content payload replacement.
type UpdateModuleContentRequest struct {
	ModuleID uuid.UUID
	Content  map[string]any
}

// ServiceOption mutates the service configuration.
type ServiceOption func(*service)

// WithLogger injects the logger used by the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the clock used for audit timestamps.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

type service struct {
	documents DocumentRepository
	sections  SectionRepository
	modules   ModuleRepository
	logger    interfaces.Logger
	clock     func() time.Time
}

// NewService constructs the document service.
func NewService(documents DocumentRepository, sections SectionRepository, modules ModuleRepository, opts ...ServiceOption) Service {
	svc := &service{
		documents: documents,
		sections:  sections,
		modules:   modules,
		logger:    logging.NoOp(),
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *service) GetSections(ctx context.Context, documentID uuid.UUID) ([]*Section, error) {
	return s.sections.ListByDocument(ctx, documentID)
}

func (s *service) GetModules(ctx context.Context, sectionID uuid.UUID) ([]*Module, error) {
	return s.modules.ListBySection(ctx, sectionID)
}

func (s *service) CreateDocument(ctx context.Context, req CreateDocumentRequest) (*Document, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrDocumentTitleRequired
	}

	slugValue := strings.TrimSpace(req.Slug)
	if slugValue == "" {
		normalized, err := NormalizeSlug(title)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSlugInvalid, err)
		}
		slugValue = normalized
	} else if !IsValidSlug(slugValue) {
		return nil, ErrSlugInvalid
	}

	now := s.clock()
	record := &Document{
		ID:          uuid.New(),
		Title:       title,
		Slug:        slugValue,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.documents.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("document.created", "document_id", created.ID, "slug", created.Slug)
	return created, nil
}

func (s *service) CreateSection(ctx context.Context, req CreateSectionRequest) (*Section, error) {
	if req.DocumentID == uuid.Nil {
		return nil, ErrDocumentIDRequired
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrSectionTitleRequired
	}

	now := s.clock()
	record := &Section{
		ID:          uuid.New(),
		DocumentID:  req.DocumentID,
		ParentID:    req.ParentID,
		Title:       title,
		Description: req.Description,
		Position:    req.Position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.sections.Create(ctx, record)
}

func (s *service) CreateModule(ctx context.Context, req CreateModuleRequest) (*Module, error) {
	if req.SectionID == uuid.Nil {
		return nil, ErrSectionIDRequired
	}
	moduleType := strings.TrimSpace(req.Type)
	if moduleType == "" {
		return nil, ErrModuleTypeRequired
	}
	if err := validateModuleContent(moduleType, req.Content); err != nil {
		return nil, err
	}

	now := s.clock()
	record := &Module{
		ID:        uuid.New(),
		SectionID: req.SectionID,
		Type:      moduleType,
		Content:   req.Content,
		Position:  req.Position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.modules.Create(ctx, record)
}

func (s *service) UpdateModuleContent(ctx context.Context, req UpdateModuleContentRequest) (*Module, error) {
	if req.ModuleID == uuid.Nil {
		return nil, ErrModuleIDRequired
	}

	record, err := s.modules.GetByID(ctx, req.ModuleID)
	if err != nil {
		return nil, err
	}
	if err := validateModuleContent(record.Type, req.Content); err != nil {
		return nil, err
	}

	record.Content = req.Content
	record.UpdatedAt = s.clock()
	return s.modules.Update(ctx, record)
}

func validateModuleContent(moduleType string, content map[string]any) error {
	schema, ok := moduleContentSchemas[moduleType]
	if !ok {
		// Unknown module types carry free-form payloads.
		return nil
	}
	if err := validation.ValidatePayload(schema, content); err != nil {
		var payloadErr *validation.PayloadValidationError
		if errors.As(err, &payloadErr) {
			return fmt.Errorf("%w: %s", ErrModuleContentInvalid, payloadErr.Error())
		}
		return fmt.Errorf("%w: %v", ErrModuleContentInvalid, err)
	}
	return nil
}

// moduleContentSchemas declares authoring-time payload shapes for the built-in
// module types. Validation is permissive on purpose: translatable fields are
// typed, everything else is allowed through.
var moduleContentSchemas = map[string]map[string]any{
	"text": {
		"type":     "object",
		"required": []any{"text"},
		"properties": map[string]any{
			"text": map[string]any{"type": "string"},
		},
		"additionalProperties": true,
	},
	"table": {
		"type": "object",
		"properties": map[string]any{
			"caption": map[string]any{"type": "string"},
			"headers": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"rows": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
		},
		"additionalProperties": true,
	},
	"checklist": {
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text":    map[string]any{"type": "string"},
						"checked": map[string]any{"type": "boolean"},
					},
					"additionalProperties": true,
				},
			},
		},
		"additionalProperties": true,
	},
	"bom": {
		"type": "object",
		"properties": map[string]any{
			"title":    map[string]any{"type": "string"},
			"bomId":    map[string]any{"type": []any{"string", "number"}},
			"headers":  map[string]any{"type": "object"},
			"messages": map[string]any{"type": "object"},
		},
		"additionalProperties": true,
	},
	"link": {
		"type":     "object",
		"required": []any{"text"},
		"properties": map[string]any{
			"text":        map[string]any{"type": "string"},
			"url":         map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
		},
		"additionalProperties": true,
	},
}
