package controller

import (
	"errors"
	"net/http"

	"github.com/365take-collab/motefuku/internal/app/service"
	apierrors "github.com/365take-collab/motefuku/internal/errors"
	"github.com/365take-collab/motefuku/internal/middleware"
	"github.com/gin-gonic/gin"
)

type TemplateController struct {
	templateService service.TemplateService
}

func NewTemplateController(templateService service.TemplateService) *TemplateController {
	return &TemplateController{templateService: templateService}
}

// ListTemplates テンプレート一覧を取得
// GET /api/templates
func (ctrl *TemplateController) ListTemplates(c *gin.Context) {
	templates := ctrl.templateService.ListTemplates(service.TemplateFilter{
		Scene:  c.Query("scene"),
		Style:  c.Query("style"),
		Season: c.Query("season"),
	})

	c.JSON(http.StatusOK, gin.H{
		"count":     len(templates),
		"templates": templates,
	})
}

// GetTemplateByID 特定のテンプレートを取得
// GET /api/templates/:template_id
func (ctrl *TemplateController) GetTemplateByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	templateID := c.Param("template_id")

	template, err := ctrl.templateService.GetTemplateByID(templateID)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			apierrors.NotFound(c, apierrors.TemplateNotFound, "テンプレートが見つかりません")
			return
		}
		log.Error("Failed to fetch template", err, map[string]interface{}{
			"template_id": templateID,
		})
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, template)
}
