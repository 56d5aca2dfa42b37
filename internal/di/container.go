package di

import (
	"time"

	"github.com/doclane/doclane/bom"
	"github.com/doclane/doclane/document"
	"github.com/doclane/doclane/exchange"
	"github.com/doclane/doclane/internal/ai"
	"github.com/doclane/doclane/internal/jobs"
	"github.com/doclane/doclane/internal/logging"
	"github.com/doclane/doclane/internal/runtimeconfig"
	"github.com/doclane/doclane/pkg/interfaces"
	"github.com/doclane/doclane/translation"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

// Container wires module dependencies. Repositories default to in-memory
// implementations so embedding hosts can boot without a database; supplying a
// bun.DB switches every store to the persistent implementations.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider interfaces.LoggerProvider
	clock          func() time.Time

	documentRepo document.DocumentRepository
	sectionRepo  document.SectionRepository
	moduleRepo   document.ModuleRepository
	languageRepo translation.LanguageRepository
	store        translation.Store
	bomItemRepo  bom.ItemRepository

	audit      jobs.AuditRecorder
	aiProvider ai.Provider

	documentSvc document.Service
	resolver    *bom.Resolver
	walker      *exchange.Walker
	applier     *exchange.Applier
	exchangeSvc *exchange.Service
	suggester   *ai.Suggester
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB switches storage to the bun-backed repositories.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default repository cache bindings.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider supplies the provider used to mint module loggers.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithClock overrides the clock used by time-stamping services.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithTranslationStore overrides the default translation store binding.
func WithTranslationStore(store translation.Store) Option {
	return func(c *Container) {
		c.store = store
	}
}

// WithDocumentService overrides the default document service binding.
func WithDocumentService(svc document.Service) Option {
	return func(c *Container) {
		c.documentSvc = svc
	}
}

// WithBomItemRepository overrides the default BOM item repository binding.
func WithBomItemRepository(repo bom.ItemRepository) Option {
	return func(c *Container) {
		c.bomItemRepo = repo
	}
}

// WithAuditRecorder overrides the default audit recorder binding.
func WithAuditRecorder(recorder jobs.AuditRecorder) Option {
	return func(c *Container) {
		c.audit = recorder
	}
}

// WithAIProvider overrides the translation suggestion provider.
func WithAIProvider(provider ai.Provider) Option {
	return func(c *Container) {
		c.aiProvider = provider
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cfg.Cache.DefaultTTL,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.configureCacheDefaults()
	c.configureRepositories()
	c.configureServices()

	return c, nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.bunDB != nil {
		c.documentRepo = document.NewBunDocumentRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		c.sectionRepo = document.NewBunSectionRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		c.moduleRepo = document.NewBunModuleRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		c.languageRepo = translation.NewBunLanguageRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		if c.store == nil {
			c.store = translation.NewBunStoreWithCache(c.bunDB, c.cacheService, c.keySerializer)
		}
		if c.bomItemRepo == nil {
			c.bomItemRepo = bom.NewBunItemRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		}
		return
	}

	c.documentRepo = document.NewMemoryDocumentRepository()
	c.sectionRepo = document.NewMemorySectionRepository()
	c.moduleRepo = document.NewMemoryModuleRepository()
	c.languageRepo = translation.NewMemoryLanguageRepository()
	if c.store == nil {
		c.store = translation.NewMemoryStore()
	}
	if c.bomItemRepo == nil {
		c.bomItemRepo = bom.NewMemoryItemRepository()
	}
}

func (c *Container) configureServices() {
	if c.audit == nil && c.Config.Features.Audit {
		c.audit = jobs.NewInMemoryAuditRecorder()
	}

	if c.documentSvc == nil {
		c.documentSvc = document.NewService(
			c.documentRepo,
			c.sectionRepo,
			c.moduleRepo,
			document.WithLogger(logging.DocumentLogger(c.loggerProvider)),
			document.WithClock(c.clock),
		)
	}

	c.resolver = bom.NewResolver(
		c.bomItemRepo,
		bom.WithLogger(logging.ModuleLogger(c.loggerProvider, "doclane.bom")),
	)

	extractor := exchange.NewExtractor(
		c.resolver,
		exchange.ExtractorWithLogger(logging.ExchangeLogger(c.loggerProvider)),
	)

	walkerOpts := []exchange.WalkerOption{
		exchange.WalkerWithLogger(logging.WalkerLogger(c.loggerProvider)),
	}
	if c.Config.Walker.FailFast {
		walkerOpts = append(walkerOpts, exchange.WithPolicy(exchange.PolicyFailFast))
	}
	if c.Config.Walker.Concurrency > 0 {
		walkerOpts = append(walkerOpts, exchange.WithConcurrency(c.Config.Walker.Concurrency))
	}
	c.walker = exchange.NewWalker(c.documentSvc, c.store, extractor, walkerOpts...)

	c.applier = exchange.NewApplier(
		c.store,
		exchange.ApplierWithLogger(logging.ApplierLogger(c.loggerProvider)),
		exchange.ApplierWithClock(c.clock),
	)

	serviceOpts := []exchange.ServiceOption{
		exchange.ServiceWithLogger(logging.ExchangeLogger(c.loggerProvider)),
		exchange.ServiceWithClock(c.clock),
	}
	if c.audit != nil {
		serviceOpts = append(serviceOpts, exchange.ServiceWithAuditRecorder(c.audit))
	}
	c.exchangeSvc = exchange.NewService(c.walker, c.applier, serviceOpts...)

	if c.Config.Features.AISuggestions {
		provider := c.aiProvider
		if provider == nil {
			provider = ai.MockProvider{}
		}
		suggesterOpts := []ai.SuggesterOption{
			ai.WithLogger(logging.AILogger(c.loggerProvider)),
		}
		if c.audit != nil {
			suggesterOpts = append(suggesterOpts, ai.WithAuditRecorder(c.audit))
		}
		c.suggester = ai.NewSuggester(c.walker, c.store, provider, suggesterOpts...)
	}
}

// DocumentService returns the configured document service.
func (c *Container) DocumentService() document.Service {
	return c.documentSvc
}

// ExchangeService returns the configured translation exchange service.
func (c *Container) ExchangeService() *exchange.Service {
	return c.exchangeSvc
}

// Walker returns the configured document walker.
func (c *Container) Walker() *exchange.Walker {
	return c.walker
}

// Applier returns the configured synchronization applier.
func (c *Container) Applier() *exchange.Applier {
	return c.applier
}

// Suggester returns the AI suggester, or nil when the feature is disabled.
func (c *Container) Suggester() *ai.Suggester {
	return c.suggester
}

// BomResolver returns the configured BOM description resolver.
func (c *Container) BomResolver() *bom.Resolver {
	return c.resolver
}

// TranslationStore returns the configured translation store.
func (c *Container) TranslationStore() translation.Store {
	return c.store
}

// Languages returns the configured language repository.
func (c *Container) Languages() translation.LanguageRepository {
	return c.languageRepo
}

// AuditRecorder returns the audit trail, or nil when auditing is disabled.
func (c *Container) AuditRecorder() jobs.AuditRecorder {
	return c.audit
}

// LoggerProvider exposes the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}
