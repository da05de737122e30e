package controller

import (
	"errors"
	"net/http"

	"github.com/365take-collab/motefuku/internal/app/model"
	"github.com/365take-collab/motefuku/internal/app/service"
	apierrors "github.com/365take-collab/motefuku/internal/errors"
	"github.com/365take-collab/motefuku/internal/middleware"
	"github.com/gin-gonic/gin"
)

type BrandStyleController struct {
	brandStyleService service.BrandStyleService
}

func NewBrandStyleController(brandStyleService service.BrandStyleService) *BrandStyleController {
	return &BrandStyleController{brandStyleService: brandStyleService}
}

type brandStyleMatchQuery struct {
	BrandStyle string  `form:"brand_style" binding:"required"`
	MaxPrice   *int    `form:"max_price" binding:"omitempty,gte=0"`
	Category   string  `form:"category"`
	MinScore   float64 `form:"min_score,default=0.5" binding:"gte=0,lte=1"`
	Limit      int     `form:"limit,default=20" binding:"min=1,max=50"`
}

// MatchBrandStyle ブランドスタイルマッチングAPI
// GET /api/brand-style/match
func (ctrl *BrandStyleController) MatchBrandStyle(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var query brandStyleMatchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.Warn("Invalid brand style query", map[string]interface{}{
			"error": err.Error(),
		})
		apierrors.BadRequest(c, apierrors.ValidationInvalidInput, "マッチング条件が正しくありません")
		return
	}

	if !model.ValidBrandStyle(query.BrandStyle) {
		log.Warn("Unknown brand style", map[string]interface{}{
			"brand_style": query.BrandStyle,
		})
		apierrors.BadRequest(c, apierrors.StyleUnknown, "指定のブランドスタイルは存在しません")
		return
	}

	result, err := ctrl.brandStyleService.MatchProducts(service.MatchOptions{
		Style:    model.BrandStyle(query.BrandStyle),
		MaxPrice: query.MaxPrice,
		Category: query.Category,
		MinScore: query.MinScore,
		Limit:    query.Limit,
	})
	if err != nil {
		if errors.Is(err, service.ErrUnknownBrandStyle) {
			apierrors.BadRequest(c, apierrors.StyleUnknown, "指定のブランドスタイルは存在しません")
			return
		}
		log.Error("Failed to match brand style", err, map[string]interface{}{
			"brand_style": query.BrandStyle,
		})
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListBrandStyles 利用可能なブランドスタイルの一覧を取得
// GET /api/brand-style/styles
func (ctrl *BrandStyleController) ListBrandStyles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"styles": ctrl.brandStyleService.ListStyles(),
	})
}
