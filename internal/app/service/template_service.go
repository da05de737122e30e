package service

import (
	"errors"

	"github.com/365take-collab/motefuku/internal/app/model"
	"github.com/365take-collab/motefuku/internal/app/repository"
	"github.com/365take-collab/motefuku/pkg/logger"
)

var ErrTemplateNotFound = errors.New("template not found")

// TemplateFilter narrows the template listing by exact attribute match.
type TemplateFilter struct {
	Scene  string
	Style  string
	Season string
}

type TemplateService interface {
	ListTemplates(filter TemplateFilter) []model.Template
	GetTemplateByID(templateID string) (*model.Template, error)
}

type templateService struct {
	templateRepo repository.TemplateRepository
}

func NewTemplateService(templateRepo repository.TemplateRepository) TemplateService {
	return &templateService{templateRepo: templateRepo}
}

func (s *templateService) ListTemplates(filter TemplateFilter) []model.Template {
	templates := s.templateRepo.FindAll()

	filtered := make([]model.Template, 0, len(templates))
	for _, t := range templates {
		if filter.Scene != "" && t.Scene != filter.Scene {
			continue
		}
		if filter.Style != "" && t.Style != filter.Style {
			continue
		}
		if filter.Season != "" && t.Season != filter.Season {
			continue
		}
		filtered = append(filtered, t)
	}

	logger.Info("Templates listed", map[string]interface{}{
		"count": len(filtered),
	})
	return filtered
}

func (s *templateService) GetTemplateByID(templateID string) (*model.Template, error) {
	template, err := s.templateRepo.FindByID(templateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Template not found", map[string]interface{}{
				"template_id": templateID,
			})
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}
