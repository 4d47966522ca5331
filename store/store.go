package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"techstore-admin/models"
)

// PageSize is the fixed number of products per list page.
const PageSize = 10

// DefaultKey is the slot key the collection is stored under.
const DefaultKey = "allProducts"

// firstIDNumber is the numeric floor for generated ids; the first id is prod-1001.
const firstIDNumber = 1000

// ErrNotFound is returned for operations on an unknown product id.
var ErrNotFound = errors.New("product not found")

var errNoData = errors.New("no persisted catalog")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var tracer = otel.Tracer("techstore-admin/store")

// snapshot is the persisted form of the collection.
type snapshot struct {
	LastID   int              `json:"lastId"`
	Products []models.Product `json:"products"`
}

// envelope tells a missing or null products field apart from an empty one.
type envelope struct {
	LastID   int               `json:"lastId"`
	Products *[]models.Product `json:"products"`
}

// Option configures a Store.
type Option func(*Store)

// WithKey sets the slot key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.log = logger }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRand sets the random source used for the synthetic sales series.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) { s.rnd = r }
}

// WithSeed makes the default collection include generated products after the
// curated ones.
func WithSeed(seed int64, generated int) Option {
	return func(s *Store) {
		s.seed = seed
		s.generated = generated
	}
}

// Store owns the product collection. All access goes through its methods.
type Store struct {
	mu        sync.RWMutex
	slot      Slot
	key       string
	log       *zap.Logger
	now       func() time.Time
	rnd       *rand.Rand
	seed      int64
	generated int

	products []models.Product
	lastID   int
}

// New returns an empty store. Call Initialize before use.
func New(slot Slot, opts ...Option) *Store {
	s := &Store{
		slot: slot,
		key:  DefaultKey,
		log:  zap.NewNop(),
		now:  time.Now,
		seed: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewPCG(uint64(s.now().UnixNano()), 0))
	}
	return s
}

// Initialize loads the persisted collection, or seeds and persists the default
// one when nothing usable is stored. Unreadable data is logged and replaced.
func (s *Store) Initialize(ctx context.Context) ([]models.Product, error) {
	ctx, span := tracer.Start(ctx, "store.initialize")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	products, lastID, err := s.load(ctx)
	if err == nil {
		today := s.now().UTC().Format(time.DateOnly)
		for i := range products {
			if products[i].ReleaseDate == "" {
				products[i].ReleaseDate = today
			}
		}
		s.products, s.lastID = products, lastID
		s.log.Info("catalog loaded", zap.Int("products", len(products)), zap.String("key", s.key))
		span.SetAttributes(attribute.Int("catalog.size", len(products)))
		return cloneAll(products), nil
	}
	if !errors.Is(err, errNoData) {
		span.RecordError(err)
		s.log.Warn("persisted catalog unreadable, falling back to defaults", zap.String("key", s.key), zap.Error(err))
	}

	products = s.defaults()
	lastID = maxIDNumber(products, firstIDNumber)
	if err := s.persist(ctx, products, lastID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "seed not persisted")
		return nil, fmt.Errorf("persist default catalog: %w", err)
	}
	s.products, s.lastID = products, lastID
	s.log.Info("catalog seeded", zap.Int("products", len(products)))
	span.SetAttributes(attribute.Int("catalog.size", len(products)))
	return cloneAll(products), nil
}

// Close releases the underlying slot.
func (s *Store) Close(ctx context.Context) error {
	return s.slot.Close(ctx)
}

// Count returns the number of stored products.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// List returns one page of the products matching query together with the
// pagination summary. A page past the end falls back to page 1.
func (s *Store) List(ctx context.Context, page int, query string) ([]models.Product, models.Summary) {
	_, span := tracer.Start(ctx, "store.list", trace.WithAttributes(
		attribute.Int("list.page", page),
		attribute.String("list.query", query),
	))
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := filter(s.products, query)
	items, summary := paginate(filtered, page, PageSize)
	span.SetAttributes(attribute.Int("list.total", summary.Total))
	return cloneAll(items), summary
}

// Get returns the product with the given id.
func (s *Store) Get(ctx context.Context, id string) (models.Product, error) {
	_, span := tracer.Start(ctx, "store.get", trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Product{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	return s.products[i].Clone(), nil
}

// Create assigns a new id, applies defaults for absent fields, puts the product
// at the front of the collection and persists.
func (s *Store) Create(ctx context.Context, in models.ProductInput) (models.Product, error) {
	ctx, span := tracer.Start(ctx, "store.create")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	n := maxIDNumber(s.products, max(s.lastID, firstIDNumber)) + 1
	now := s.now().UTC()
	p := models.Product{
		ID:             fmt.Sprintf("prod-%d", n),
		Category:       models.DefaultCategory,
		Price:          decimal.Zero,
		ReleaseDate:    now.Format(time.DateOnly),
		Specifications: models.Specifications{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	applyInput(&p, in)
	span.SetAttributes(attribute.String("product.id", p.ID))

	next := make([]models.Product, 0, len(s.products)+1)
	next = append(next, p)
	next = append(next, s.products...)
	if err := s.persist(ctx, next, n); err != nil {
		span.RecordError(err)
		return models.Product{}, fmt.Errorf("create %s: %w", p.ID, err)
	}
	s.products, s.lastID = next, n

	s.log.Debug("product created", zap.String("id", p.ID))
	return p.Clone(), nil
}

// Update applies the non-nil fields of patch. An invalid category is ignored.
func (s *Store) Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	ctx, span := tracer.Start(ctx, "store.update", trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Product{}, fmt.Errorf("update %s: %w", id, ErrNotFound)
	}

	p := s.products[i].Clone()
	if applyPatch(&p, patch) {
		p.UpdatedAt = s.now().UTC()
	}

	next := append([]models.Product(nil), s.products...)
	next[i] = p
	if err := s.persist(ctx, next, s.lastID); err != nil {
		span.RecordError(err)
		return models.Product{}, fmt.Errorf("update %s: %w", id, err)
	}
	s.products = next

	return p.Clone(), nil
}

// Delete removes the product and persists.
func (s *Store) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "store.delete", trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}

	next := make([]models.Product, 0, len(s.products)-1)
	next = append(next, s.products[:i]...)
	next = append(next, s.products[i+1:]...)
	if err := s.persist(ctx, next, s.lastID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete %s: %w", id, err)
	}
	s.products = next

	s.log.Debug("product deleted", zap.String("id", id))
	return nil
}

// BestSelling returns the curated dashboard products. It does not depend on
// the stored collection.
func (s *Store) BestSelling(ctx context.Context) []models.Product {
	_, span := tracer.Start(ctx, "store.best_selling")
	defer span.End()

	return DefaultCatalog()
}

func (s *Store) indexOf(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) defaults() []models.Product {
	products := DefaultCatalog()
	if s.generated > 0 {
		products = append(products, Generate(s.seed, s.generated, maxIDNumber(products, firstIDNumber)+1)...)
	}
	return products
}

func (s *Store) load(ctx context.Context) ([]models.Product, int, error) {
	data, ok, err := s.slot.Read(ctx, s.key)
	if err != nil {
		return nil, 0, fmt.Errorf("read slot %s: %w", s.key, err)
	}
	if !ok || len(bytes.TrimSpace(data)) == 0 {
		return nil, 0, errNoData
	}
	return decode(data)
}

func (s *Store) persist(ctx context.Context, products []models.Product, lastID int) error {
	data, err := json.Marshal(snapshot{LastID: lastID, Products: products})
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := s.slot.Write(ctx, s.key, data); err != nil {
		return fmt.Errorf("write slot %s: %w", s.key, err)
	}
	return nil
}

// decode accepts the snapshot envelope or a bare product array. An envelope
// without a products array is malformed.
func decode(data []byte) ([]models.Product, int, error) {
	var snap snapshot
	data = bytes.TrimSpace(data)
	if data[0] == '[' {
		if err := json.Unmarshal(data, &snap.Products); err != nil {
			return nil, 0, fmt.Errorf("decode catalog: %w", err)
		}
	} else {
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, 0, fmt.Errorf("decode catalog: %w", err)
		}
		if env.Products == nil {
			return nil, 0, errors.New("decode catalog: no products array")
		}
		snap = snapshot{LastID: env.LastID, Products: *env.Products}
	}

	seen := make(map[string]struct{}, len(snap.Products))
	for i := range snap.Products {
		p := &snap.Products[i]
		if p.ID == "" {
			return nil, 0, fmt.Errorf("product at index %d has no id", i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, 0, fmt.Errorf("duplicate product id %s", p.ID)
		}
		seen[p.ID] = struct{}{}
		if !p.Category.Valid() {
			return nil, 0, fmt.Errorf("product %s has invalid category %q", p.ID, p.Category)
		}
		if p.Stock < 0 {
			p.Stock = 0
		}
	}
	if snap.Products == nil {
		snap.Products = []models.Product{}
	}
	return snap.Products, snap.LastID, nil
}

// idNumber parses the numeric part of prod-<n>.
func idNumber(id string) (int, bool) {
	_, suffix, found := strings.Cut(id, "-")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	return n, err == nil
}

func maxIDNumber(products []models.Product, floor int) int {
	highest := floor
	for _, p := range products {
		if n, ok := idNumber(p.ID); ok && n > highest {
			highest = n
		}
	}
	return highest
}

func cloneAll(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
