package doclane

import (
	"github.com/doclane/doclane/bom"
	"github.com/doclane/doclane/document"
	"github.com/doclane/doclane/exchange"
	"github.com/doclane/doclane/internal/ai"
	"github.com/doclane/doclane/internal/di"
	"github.com/doclane/doclane/internal/jobs"
	"github.com/doclane/doclane/translation"
)

// DocumentService exports the document service contract for consumers of the
// doclane package.
type DocumentService = document.Service

// ExchangeService exports the translation exchange service.
type ExchangeService = *exchange.Service

// TranslationStore exports the translation store contract.
type TranslationStore = translation.Store

// BomResolver exports the BOM description resolver.
type BomResolver = *bom.Resolver

// Suggester exports the AI translation suggester.
type Suggester = *ai.Suggester

// AuditRecorder exports the audit trail contract.
type AuditRecorder = jobs.AuditRecorder

// Module represents the top level Doclane runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a Doclane module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Documents returns the configured document service.
func (m *Module) Documents() DocumentService {
	return m.container.DocumentService()
}

// Exchange returns the configured translation exchange service.
func (m *Module) Exchange() ExchangeService {
	return m.container.ExchangeService()
}

// Translations returns the configured translation store.
func (m *Module) Translations() TranslationStore {
	return m.container.TranslationStore()
}

// Languages returns the configured language repository.
func (m *Module) Languages() translation.LanguageRepository {
	return m.container.Languages()
}

// Boms returns the BOM description resolver.
func (m *Module) Boms() BomResolver {
	return m.container.BomResolver()
}

// Suggester returns the AI suggester when the feature is enabled.
func (m *Module) Suggester() Suggester {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Suggester()
}

// Audit returns the audit trail when auditing is enabled.
func (m *Module) Audit() AuditRecorder {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.AuditRecorder()
}
