package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/akramov/telepos/internal/core/domain"
	"github.com/akramov/telepos/internal/core/dto"
	"github.com/akramov/telepos/internal/core/logger"
	"github.com/akramov/telepos/internal/core/port"
	"github.com/akramov/telepos/internal/core/serviceerrors"
	"github.com/akramov/telepos/internal/core/utils"
)

// Import column headers: localized names first, English fallbacks second.
var (
	importNameColumns  = []string{"Название", "name"}
	importPriceColumns = []string{"Цена", "price"}
)

// CatalogService owns the product catalog. All access goes through one
// instance; the mutex maps the source's single-threaded event model
// onto the concurrent HTTP surface.
type CatalogService struct {
	mu         sync.Mutex
	catalog    *domain.Catalog
	store      port.StorePort
	importer   port.ImporterPort
	storageKey string
	lastHash   string
}

func NewCatalogService(store port.StorePort, importer port.ImporterPort, storageKey string) *CatalogService {
	return &CatalogService{
		catalog:    domain.NewCatalog(nil),
		store:      store,
		importer:   importer,
		storageKey: storageKey,
	}
}

// Load seeds the catalog from the persisted snapshot. An absent or
// corrupt snapshot falls back to the default catalog; corrupt data is
// also deleted from the store.
func (s *CatalogService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.store.Get(ctx, s.storageKey)
	if err != nil {
		logger.Error(ctx, "catalog: load snapshot failed", err, map[string]any{"key": s.storageKey})
		s.catalog.ReplaceAll(domain.DefaultProducts())
		return
	}
	if !ok {
		s.catalog.ReplaceAll(domain.DefaultProducts())
		logger.Info(ctx, "catalog: no snapshot, seeded defaults", map[string]any{"products": s.catalog.Len()})
		return
	}

	products, err := domain.UnmarshalSnapshot([]byte(raw))
	if err != nil {
		logger.Warn(ctx, "catalog: corrupt snapshot discarded", map[string]any{"key": s.storageKey})
		if delErr := s.store.Delete(ctx, s.storageKey); delErr != nil {
			logger.Error(ctx, "catalog: delete corrupt snapshot failed", delErr, map[string]any{"key": s.storageKey})
		}
		s.catalog.ReplaceAll(domain.DefaultProducts())
		return
	}

	s.catalog.ReplaceAll(products)
	logger.Info(ctx, "catalog: snapshot loaded", map[string]any{"products": s.catalog.Len()})
}

// Add appends a manually created product.
func (s *CatalogService) Add(ctx context.Context, request *dto.AddProductRequest) (*domain.Product, error) {
	name := strings.TrimSpace(request.Name)
	if !domain.ValidProduct(name, request.Price) {
		return nil, serviceerrors.NewValidationError("введите корректное название и цену")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := domain.NewProduct(domain.NewManualID(time.Now()), name, request.Price)
	s.catalog.Add(*product)
	s.persist(ctx)

	logger.Info(ctx, "catalog: product added", map[string]any{"product_id": product.ID, "name": product.Name})
	return product, nil
}

// Remove deletes a product by id. Absent ids are a no-op; existing
// cart lines are never touched.
func (s *CatalogService) Remove(ctx context.Context, id domain.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog.Remove(id) {
		s.persist(ctx)
		logger.Info(ctx, "catalog: product removed", map[string]any{"product_id": id})
	}
}

// ReplaceAll atomically swaps the catalog contents. Invalid entries
// are filtered first; if nothing valid remains the previous catalog is
// kept and an import error reported.
func (s *CatalogService) ReplaceAll(ctx context.Context, products []domain.Product) (int, error) {
	valid := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if domain.ValidProduct(p.Name, p.Price) {
			valid = append(valid, *domain.NewProduct(p.ID, p.Name, p.Price))
		}
	}
	if len(valid) == 0 {
		return 0, serviceerrors.NewImportError("не удалось найти товары в файле")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog.ReplaceAll(valid)
	s.persist(ctx)

	logger.Info(ctx, "catalog: replaced", map[string]any{"products": len(valid)})
	return len(valid), nil
}

// ImportFile parses spreadsheet bytes and bulk-replaces the catalog.
// Row mapping follows the import contract: localized name/price
// columns with English fallbacks, positional fallback name, zero
// fallback price, prices rounded to whole units.
func (s *CatalogService) ImportFile(ctx context.Context, data []byte) (int, error) {
	rows, err := s.importer.Parse(data)
	if err != nil {
		logger.Error(ctx, "catalog: import parse failed", err, nil)
		return 0, serviceerrors.NewImportError("ошибка чтения файла: " + err.Error())
	}

	now := time.Now()
	products := make([]domain.Product, 0, len(rows))
	for i, row := range rows {
		products = append(products, domain.Product{
			ID:    domain.NewImportID(now, i),
			Name:  importName(row, i),
			Price: importPrice(row),
		})
	}

	return s.ReplaceAll(ctx, products)
}

func importName(row port.Row, index int) string {
	for _, col := range importNameColumns {
		if v := strings.TrimSpace(row[col]); v != "" {
			return v
		}
	}
	return "Товар " + strconv.Itoa(index+1)
}

func importPrice(row port.Row) float64 {
	for _, col := range importPriceColumns {
		if v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64); err == nil {
			return math.Round(v)
		}
	}
	return 0
}

// Filter is non-destructive and re-derivable at any time.
func (s *CatalogService) Filter(query string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Filter(query)
}

func (s *CatalogService) All() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Products()
}

func (s *CatalogService) Get(id domain.ID) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Get(id)
}

// persist writes the full snapshot, fire-and-forget: failures are
// logged and swallowed, the in-memory catalog stays authoritative.
// Callers hold the mutex.
func (s *CatalogService) persist(ctx context.Context) {
	data, err := s.catalog.MarshalSnapshot()
	if err != nil {
		logger.Error(ctx, "catalog: marshal snapshot failed", err, nil)
		return
	}

	hash := utils.HashJSON(s.catalog.Products())
	if hash == s.lastHash {
		return
	}

	if err := s.store.Set(ctx, s.storageKey, string(data)); err != nil {
		logger.Error(ctx, "catalog: persist snapshot failed", err, map[string]any{
			"key":           s.storageKey,
			"snapshot_hash": hash,
		})
		return
	}
	s.lastHash = hash
}
