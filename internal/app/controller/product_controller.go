package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/365take-collab/motefuku/internal/app/service"
	apierrors "github.com/365take-collab/motefuku/internal/errors"
	"github.com/365take-collab/motefuku/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService   service.ProductService
	recommendService service.RecommendService
}

func NewProductController(productService service.ProductService, recommendService service.RecommendService) *ProductController {
	return &ProductController{
		productService:   productService,
		recommendService: recommendService,
	}
}

type searchQuery struct {
	Category       string   `form:"category"`
	MinPrice       *int     `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice       *int     `form:"max_price" binding:"omitempty,gte=0"`
	Color          string   `form:"color"`
	Size           string   `form:"size"`
	Brand          string   `form:"brand"`
	Returnable     *bool    `form:"returnable"`
	InStock        *bool    `form:"in_stock"`
	MinMoteruScore *float64 `form:"min_moteru_score" binding:"omitempty,gte=0"`
	Scene          string   `form:"scene"`
	Style          string   `form:"style"`
	Season         string   `form:"season"`
	Keyword        string   `form:"keyword"`
	Sort           string   `form:"sort"`
	Page           int      `form:"page,default=1" binding:"min=1"`
	Limit          int      `form:"limit,default=20" binding:"min=1,max=100"`
}

// SearchProducts 商品検索API
// GET /api/products/search
func (ctrl *ProductController) SearchProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var query searchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.Warn("Invalid search query", map[string]interface{}{
			"error": err.Error(),
		})
		apierrors.BadRequest(c, apierrors.ValidationInvalidInput, "検索条件が正しくありません")
		return
	}

	sortOrder, err := service.ParseSortOrder(query.Sort)
	if err != nil {
		log.Warn("Invalid sort order", map[string]interface{}{
			"sort": query.Sort,
		})
		apierrors.BadRequest(c, apierrors.ValidationInvalidEnum, "ソート順が正しくありません")
		return
	}

	result := ctrl.productService.SearchProducts(service.SearchOptions{
		Category:       query.Category,
		MinPrice:       query.MinPrice,
		MaxPrice:       query.MaxPrice,
		Color:          query.Color,
		Size:           query.Size,
		Brand:          query.Brand,
		Returnable:     query.Returnable,
		InStock:        query.InStock,
		MinMoteruScore: query.MinMoteruScore,
		Scene:          query.Scene,
		Style:          query.Style,
		Season:         query.Season,
		Keyword:        query.Keyword,
		Sort:           sortOrder,
		Page:           query.Page,
		Limit:          query.Limit,
	})

	c.JSON(http.StatusOK, result)
}

type recommendQuery struct {
	Purpose        string   `form:"purpose"`
	MaxPrice       *int     `form:"max_price" binding:"omitempty,gte=0"`
	Category       string   `form:"category"`
	Scene          string   `form:"scene"`
	Style          string   `form:"style"`
	Season         string   `form:"season"`
	MinMoteruScore *float64 `form:"min_moteru_score" binding:"omitempty,gte=0"`
	BodyType       string   `form:"body_type"`
	Height         int      `form:"height" binding:"gte=0"`
	Weight         int      `form:"weight" binding:"gte=0"`
	Size           string   `form:"size"`
	Fit            string   `form:"fit"`
	Limit          int      `form:"limit,default=10" binding:"min=1,max=20"`
}

// RecommendProducts 商品推薦API
// GET /api/products/recommend
func (ctrl *ProductController) RecommendProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var query recommendQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.Warn("Invalid recommend query", map[string]interface{}{
			"error": err.Error(),
		})
		apierrors.BadRequest(c, apierrors.ValidationInvalidInput, "推薦条件が正しくありません")
		return
	}

	minMoteru := service.DefaultMinMoteruScore
	if query.MinMoteruScore != nil {
		minMoteru = *query.MinMoteruScore
	}

	result := ctrl.recommendService.RecommendProducts(service.RecommendOptions{
		Purpose:        query.Purpose,
		MaxPrice:       query.MaxPrice,
		Category:       query.Category,
		Scene:          query.Scene,
		Style:          query.Style,
		Season:         query.Season,
		MinMoteruScore: minMoteru,
		BodyType:       query.BodyType,
		Height:         query.Height,
		Weight:         query.Weight,
		Size:           query.Size,
		Fit:            query.Fit,
		Limit:          query.Limit,
	})

	c.JSON(http.StatusOK, result)
}

// GetProductByID 商品を1件取得
// GET /api/products/:product_id
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID := c.Param("product_id")

	product, err := ctrl.productService.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apierrors.NotFound(c, apierrors.ProductNotFound, "商品が見つかりません")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": productID,
		})
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetRelatedProducts 関連商品を取得（購入選択時の追加商品提案用）
// GET /api/products/:product_id/related
func (ctrl *ProductController) GetRelatedProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID := c.Param("product_id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 || limit > 10 {
		log.Warn("Invalid related limit", map[string]interface{}{
			"limit": c.Query("limit"),
		})
		apierrors.BadRequest(c, apierrors.ValidationInvalidRange, "limitは1〜10で指定してください")
		return
	}

	result, err := ctrl.productService.GetRelatedProducts(productID, limit)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apierrors.NotFound(c, apierrors.ProductNotFound, "商品が見つかりません")
			return
		}
		log.Error("Failed to fetch related products", err, map[string]interface{}{
			"product_id": productID,
		})
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, result)
}
