package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/365take-collab/motefuku/pkg/logger"
	"github.com/365take-collab/motefuku/pkg/marketing/utage"
	"github.com/google/uuid"
)

var (
	ErrInvalidOffer      = errors.New("invalid offer")
	ErrOfferNotFound     = errors.New("offer not found")
	ErrBonusFileNotFound = errors.New("bonus file not found")
)

// Offer types
const (
	OfferTypeCourse       = "course"
	OfferTypeConsultation = "consultation"
)

// validOffers オファーIDと種別の対応
var validOffers = map[string]string{
	"course-complete-guide": OfferTypeCourse,
	"consultation-basic":    OfferTypeConsultation,
	"consultation-premium":  OfferTypeConsultation,
}

// downloadableOffers maps course offers onto their bonus PDF inside the
// static directory.
var downloadableOffers = map[string]string{
	"course-complete-guide": "bonuses/モテるコーディネート完全ガイド.pdf",
}

// UpsellPurchase is the validated purchase request.
type UpsellPurchase struct {
	OfferID string
	Type    string
	Email   string
	Name    string
}

// UpsellResult is the /checkout/upsell response body.
type UpsellResult struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	OfferID     string  `json:"offer_id"`
	PurchaseID  string  `json:"purchase_id"`
	DownloadURL *string `json:"download_url"`
}

type CheckoutService interface {
	PurchaseUpsell(ctx context.Context, purchase UpsellPurchase) (*UpsellResult, error)
	ResolveDownload(offerID string) (string, error)
}

type checkoutService struct {
	marketing          MarketingClient
	customerScenarioID string
	staticDir          string
}

func NewCheckoutService(marketing MarketingClient, customerScenarioID, staticDir string) CheckoutService {
	return &checkoutService{
		marketing:          marketing,
		customerScenarioID: customerScenarioID,
		staticDir:          staticDir,
	}
}

// PurchaseUpsell records an upsell purchase. When an email address is given
// the buyer is forwarded onto the UTAGE customer scenario; a forwarding
// failure never fails the purchase.
func (s *checkoutService) PurchaseUpsell(ctx context.Context, purchase UpsellPurchase) (*UpsellResult, error) {
	offerType, ok := validOffers[purchase.OfferID]
	if !ok {
		logger.Warn("Invalid upsell offer", map[string]interface{}{
			"offer_id": purchase.OfferID,
		})
		return nil, ErrInvalidOffer
	}

	purchaseID := uuid.NewString()

	logger.Info("Upsell purchase accepted", map[string]interface{}{
		"offer_id":    purchase.OfferID,
		"offer_type":  offerType,
		"purchase_id": purchaseID,
	})

	if purchase.Email != "" {
		err := s.marketing.RegisterMember(ctx, utage.RegisterMemberRequest{
			Email:      purchase.Email,
			Name:       purchase.Name,
			ScenarioID: s.customerScenarioID,
			Source:     "upsell",
		})
		if err != nil {
			logger.Warn("UTAGE customer registration failed, purchase continues", map[string]interface{}{
				"email":    purchase.Email,
				"offer_id": purchase.OfferID,
				"error":    err.Error(),
			})
		} else if err := s.marketing.UpdateCustomFields(ctx, purchase.Email, map[string]interface{}{
			"purchased_offer": purchase.OfferID,
			"purchase_id":     purchaseID,
		}); err != nil {
			logger.Warn("UTAGE custom field update failed, purchase continues", map[string]interface{}{
				"email":    purchase.Email,
				"offer_id": purchase.OfferID,
				"error":    err.Error(),
			})
		}
	}

	var downloadURL *string
	if offerType == OfferTypeCourse {
		url := "/api/checkout/downloads/" + purchase.OfferID
		downloadURL = &url
	}

	return &UpsellResult{
		Success:     true,
		Message:     "購入が完了しました",
		OfferID:     purchase.OfferID,
		PurchaseID:  purchaseID,
		DownloadURL: downloadURL,
	}, nil
}

// ResolveDownload maps an offer ID onto an existing bonus PDF path.
func (s *checkoutService) ResolveDownload(offerID string) (string, error) {
	relPath, ok := downloadableOffers[offerID]
	if !ok {
		return "", ErrOfferNotFound
	}

	path := filepath.Join(s.staticDir, relPath)
	if _, err := os.Stat(path); err != nil {
		logger.Error("Bonus file missing", err, map[string]interface{}{
			"offer_id": offerID,
			"path":     path,
		})
		return "", ErrBonusFileNotFound
	}
	return path, nil
}
