package service

import (
	"context"

	"github.com/365take-collab/motefuku/internal/app/model"
	"github.com/365take-collab/motefuku/internal/app/repository"
	"github.com/365take-collab/motefuku/pkg/marketing/utage"
)

// fakeProductRepository serves a fixed in-memory catalog.
type fakeProductRepository struct {
	products []model.Product
}

func (r *fakeProductRepository) FindAll() []model.Product {
	return r.products
}

func (r *fakeProductRepository) FindByID(productID string) (*model.Product, error) {
	for _, p := range r.products {
		if p.ProductID == productID {
			found := p
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

// fakeTemplateRepository serves a fixed in-memory template list.
type fakeTemplateRepository struct {
	templates []model.Template
}

func (r *fakeTemplateRepository) FindAll() []model.Template {
	return r.templates
}

func (r *fakeTemplateRepository) FindByID(templateID string) (*model.Template, error) {
	for _, t := range r.templates {
		if t.TemplateID == templateID {
			found := t
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

// fakeMarketingClient records calls and optionally fails them.
type fakeMarketingClient struct {
	registerErr   error
	registered    []utage.RegisterMemberRequest
	updatedFields map[string]interface{}
}

func (c *fakeMarketingClient) RegisterMember(_ context.Context, req utage.RegisterMemberRequest) error {
	c.registered = append(c.registered, req)
	return c.registerErr
}

func (c *fakeMarketingClient) UpdateCustomFields(_ context.Context, _ string, fields map[string]interface{}) error {
	if c.registerErr != nil {
		return c.registerErr
	}
	c.updatedFields = fields
	return nil
}

func testProduct(id, name, category string, price int, moteru float64) model.Product {
	return model.Product{
		ProductID: id,
		Name:      name,
		Category:  category,
		Brand:     "TESTBRAND",
		Price:     price,
		Colors:    []string{"黒"},
		Sizes:     []string{"M", "L"},
		InStock:   true,
		CreatedAt: "2025-01-01T00:00:00",
		Attributes: model.ProductAttributes{
			Scene:  []string{"デート"},
			Style:  []string{"きれいめ"},
			Season: []string{"春"},
			Fit:    model.FitRegular,
		},
		Evaluation: model.ProductEvaluation{
			MoteruScore: moteru,
		},
	}
}
