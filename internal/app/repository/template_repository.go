package repository

import (
	"os"

	"github.com/365take-collab/motefuku/internal/app/model"
	"github.com/365take-collab/motefuku/pkg/logger"
	"github.com/goccy/go-json"
)

// TemplateRepository reads the outfit template catalog. Same lifecycle as
// ProductRepository: re-read per call, fail open to an empty list.
type TemplateRepository interface {
	FindAll() []model.Template
	FindByID(templateID string) (*model.Template, error)
}

type templateRepository struct {
	path string
}

func NewTemplateRepository(path string) TemplateRepository {
	return &templateRepository{path: path}
}

func (r *templateRepository) FindAll() []model.Template {
	f, err := os.Open(r.path)
	if err != nil {
		logger.Warn("Templates file not readable, serving empty catalog", map[string]interface{}{
			"path":  r.path,
			"error": err.Error(),
		})
		return []model.Template{}
	}
	defer f.Close()

	// テンプレートファイルのトップレベルキーは日本語
	var doc struct {
		Templates []model.Template `json:"テンプレート"`
	}
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		logger.Warn("Templates file is malformed, serving empty catalog", map[string]interface{}{
			"path":  r.path,
			"error": err.Error(),
		})
		return []model.Template{}
	}
	if doc.Templates == nil {
		return []model.Template{}
	}
	return doc.Templates
}

func (r *templateRepository) FindByID(templateID string) (*model.Template, error) {
	for _, t := range r.FindAll() {
		if t.TemplateID == templateID {
			return &t, nil
		}
	}
	return nil, ErrNotFound
}
