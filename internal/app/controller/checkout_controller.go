package controller

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/365take-collab/motefuku/internal/app/service"
	apierrors "github.com/365take-collab/motefuku/internal/errors"
	"github.com/365take-collab/motefuku/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkoutService service.CheckoutService
}

func NewCheckoutController(checkoutService service.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: checkoutService}
}

type upsellPurchaseRequest struct {
	OfferID string `json:"offer_id" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=course consultation"`
	Email   string `json:"email" binding:"omitempty,email"`
	Name    string `json:"name"`
}

// PurchaseUpsell アップセル商品の購入処理
// POST /api/checkout/upsell
func (ctrl *CheckoutController) PurchaseUpsell(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req upsellPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid upsell request", map[string]interface{}{
			"error": err.Error(),
		})
		apierrors.BadRequest(c, apierrors.ValidationInvalidInput, "購入リクエストが正しくありません")
		return
	}

	result, err := ctrl.checkoutService.PurchaseUpsell(c.Request.Context(), service.UpsellPurchase{
		OfferID: req.OfferID,
		Type:    req.Type,
		Email:   req.Email,
		Name:    req.Name,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidOffer) {
			apierrors.BadRequest(c, apierrors.CheckoutInvalidOffer, "指定のオファーは存在しません")
			return
		}
		log.Error("Failed to process upsell purchase", err, map[string]interface{}{
			"offer_id": req.OfferID,
		})
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, result)
}

// DownloadUpsell アップセル商品（PDF）のダウンロード
// GET /api/checkout/downloads/:offer_id
func (ctrl *CheckoutController) DownloadUpsell(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	offerID := c.Param("offer_id")

	path, err := ctrl.checkoutService.ResolveDownload(offerID)
	if err != nil {
		if errors.Is(err, service.ErrOfferNotFound) {
			apierrors.NotFound(c, apierrors.CheckoutInvalidOffer, "指定のオファーは存在しません")
			return
		}
		if errors.Is(err, service.ErrBonusFileNotFound) {
			apierrors.NotFound(c, apierrors.CheckoutFileNotFound, "ファイルが見つかりません")
			return
		}
		log.Error("Failed to resolve download", err, map[string]interface{}{
			"offer_id": offerID,
		})
		apierrors.InternalError(c, "")
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(path, filepath.Base(path))
}
