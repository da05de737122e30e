package scheduler

import (
	"github.com/365take-collab/motefuku/internal/app/repository"
	"github.com/365take-collab/motefuku/pkg/logger"
	"github.com/robfig/cron/v3"
)

// CatalogScheduler カタログの定期ヘルスチェックスケジューラー
type CatalogScheduler struct {
	cron         *cron.Cron
	productRepo  repository.ProductRepository
	templateRepo repository.TemplateRepository
}

// NewCatalogScheduler カタログスケジューラー生成
func NewCatalogScheduler(productRepo repository.ProductRepository, templateRepo repository.TemplateRepository) *CatalogScheduler {
	return &CatalogScheduler{
		cron:         cron.New(),
		productRepo:  productRepo,
		templateRepo: templateRepo,
	}
}

// Start スケジューラー開始
func (s *CatalogScheduler) Start() error {
	// 毎時0分にカタログの読み込み状態を確認する
	_, err := s.cron.AddFunc("0 * * * *", func() {
		products := s.productRepo.FindAll()
		templates := s.templateRepo.FindAll()

		if len(products) == 0 {
			logger.Warn("Catalog health check found no products", map[string]interface{}{
				"template_count": len(templates),
			})
			return
		}

		logger.Info("Catalog health check completed", map[string]interface{}{
			"product_count":  len(products),
			"template_count": len(templates),
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for catalog health check", err)
		return err
	}

	s.cron.Start()
	logger.Info("Catalog scheduler started successfully (hourly)", nil)

	return nil
}

// Stop スケジューラー停止
func (s *CatalogScheduler) Stop() {
	logger.Info("Stopping catalog scheduler...", nil)
	s.cron.Stop()
	logger.Info("Catalog scheduler stopped", nil)
}
