package repository

import (
	"errors"
	"os"

	"github.com/365take-collab/motefuku/internal/app/model"
	"github.com/365take-collab/motefuku/pkg/logger"
	"github.com/goccy/go-json"
)

// ErrNotFound is returned when a record is absent from the catalog.
var ErrNotFound = errors.New("record not found")

// ProductRepository reads the product catalog. The JSON file is re-read on
// every call: there is no caching and callers must tolerate empty results
// when the file is missing or corrupt.
type ProductRepository interface {
	FindAll() []model.Product
	FindByID(productID string) (*model.Product, error)
}

type productRepository struct {
	path string
}

func NewProductRepository(path string) ProductRepository {
	return &productRepository{path: path}
}

func (r *productRepository) FindAll() []model.Product {
	f, err := os.Open(r.path)
	if err != nil {
		logger.Warn("Products file not readable, serving empty catalog", map[string]interface{}{
			"path":  r.path,
			"error": err.Error(),
		})
		return []model.Product{}
	}
	defer f.Close()

	var doc struct {
		Products []model.Product `json:"products"`
	}
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		logger.Warn("Products file is malformed, serving empty catalog", map[string]interface{}{
			"path":  r.path,
			"error": err.Error(),
		})
		return []model.Product{}
	}
	if doc.Products == nil {
		return []model.Product{}
	}
	return doc.Products
}

func (r *productRepository) FindByID(productID string) (*model.Product, error) {
	for _, p := range r.FindAll() {
		if p.ProductID == productID {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}
