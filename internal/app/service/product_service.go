package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/365take-collab/motefuku/internal/app/model"
	"github.com/365take-collab/motefuku/internal/app/repository"
	"github.com/365take-collab/motefuku/pkg/logger"
	"github.com/365take-collab/motefuku/pkg/util"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidSort     = errors.New("invalid sort order")
)

// SortOrder ソート順
type SortOrder string

const (
	SortPriceAsc        SortOrder = "price_asc"
	SortPriceDesc       SortOrder = "price_desc"
	SortMoteruScoreDesc SortOrder = "moteru_score_desc"
	SortCreatedAtDesc   SortOrder = "created_at_desc"
)

// ParseSortOrder validates a sort query value. Empty selects the default.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case SortPriceAsc, SortPriceDesc, SortMoteruScoreDesc, SortCreatedAtDesc:
		return SortOrder(s), nil
	case "":
		return SortMoteruScoreDesc, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidSort, s)
	}
}

// SearchOptions are the conjunctive product filters. Nil pointers and empty
// strings mean "not filtered".
type SearchOptions struct {
	Category       string
	MinPrice       *int
	MaxPrice       *int
	Color          string
	Size           string
	Brand          string
	Returnable     *bool
	InStock        *bool
	MinMoteruScore *float64
	Scene          string
	Style          string
	Season         string
	Keyword        string
	Sort           SortOrder
	Page           int
	Limit          int
}

// SearchResult carries one page of matches plus pagination metadata.
type SearchResult struct {
	Count      int                    `json:"count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
	Products   []model.ProductSummary `json:"products"`
}

// ReviewSummary はモックのレビュー分布。実在庫・実レビュー連携までのプレースホルダ。
type ReviewSummary struct {
	Count              int            `json:"count"`
	AverageRating      float64        `json:"average_rating"`
	RatingDistribution map[string]int `json:"rating_distribution"`
}

// FrequentlyBoughtTogether はモックの同時購入統計。
type FrequentlyBoughtTogether struct {
	Percentage int `json:"percentage"`
	Count      int `json:"count"`
}

// RelatedProduct is a catalog entry decorated with the mock inventory and
// review fields the product page renders.
type RelatedProduct struct {
	model.Product
	StockQuantity            int                       `json:"stock_quantity"`
	Reviews                  ReviewSummary             `json:"reviews"`
	FrequentlyBoughtTogether *FrequentlyBoughtTogether `json:"frequently_bought_together,omitempty"`
}

// FrequentlyBoughtSummary names one of the top co-purchase entries.
type FrequentlyBoughtSummary struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Count      int    `json:"count"`
}

// BundleOffer is one of the fixed multi-item discount tiers.
type BundleOffer struct {
	Name         string `json:"name"`
	DiscountRate int    `json:"discount_rate"`
	Description  string `json:"description"`
}

// RelatedProductsResult is the /related response body.
type RelatedProductsResult struct {
	ProductID                string                    `json:"product_id"`
	RelatedProducts          []RelatedProduct          `json:"related_products"`
	Count                    int                       `json:"count"`
	FrequentlyBoughtTogether []FrequentlyBoughtSummary `json:"frequently_bought_together"`
	BundleOffers             []BundleOffer             `json:"bundle_offers"`
	FreeShippingThreshold    int                       `json:"free_shipping_threshold"`
}

// complementaryCategories 補完商品のカテゴリ（小物類）
var complementaryCategories = map[string]bool{
	"時計":  true,
	"ベルト": true,
	"バッグ": true,
	"小物":  true,
}

const (
	relatedTierCap        = 2   // 件数上限（各優先ティア）
	relatedMinMoteruScore = 4.0 // フォールバックティアの下限
	freeShippingThreshold = 5000
)

var bundleOffers = []BundleOffer{
	{Name: "2点セット", DiscountRate: 10, Description: "2点以上購入で10%オフ"},
	{Name: "3点セット", DiscountRate: 15, Description: "3点以上購入で15%オフ"},
	{Name: "コーディネート一式", DiscountRate: 20, Description: "コーディネート一式（トップス + パンツ + 靴）で20%オフ"},
}

type ProductService interface {
	SearchProducts(opts SearchOptions) SearchResult
	GetProductByID(productID string) (*model.Product, error)
	GetRelatedProducts(productID string, limit int) (*RelatedProductsResult, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) SearchProducts(opts SearchOptions) SearchResult {
	logger.Debug("Searching products", map[string]interface{}{
		"category": opts.Category,
		"keyword":  opts.Keyword,
		"sort":     opts.Sort,
		"page":     opts.Page,
		"limit":    opts.Limit,
	})

	products := s.productRepo.FindAll()

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matchesSearch(&p, &opts) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, opts.Sort)

	totalCount := len(filtered)
	totalPages := (totalCount + opts.Limit - 1) / opts.Limit

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	summaries := make([]model.ProductSummary, 0, end-start)
	for i := start; i < end; i++ {
		summaries = append(summaries, filtered[i].Summary())
	}

	logger.Info("Products searched", map[string]interface{}{
		"count":       totalCount,
		"page":        opts.Page,
		"total_pages": totalPages,
	})

	return SearchResult{
		Count:      totalCount,
		Page:       opts.Page,
		Limit:      opts.Limit,
		TotalPages: totalPages,
		Products:   summaries,
	}
}

func matchesSearch(p *model.Product, opts *SearchOptions) bool {
	if opts.Category != "" && p.Category != opts.Category {
		return false
	}
	if opts.MinPrice != nil && p.Price < *opts.MinPrice {
		return false
	}
	if opts.MaxPrice != nil && p.Price > *opts.MaxPrice {
		return false
	}
	if opts.Color != "" && !containsString(p.Colors, opts.Color) {
		return false
	}
	if opts.Size != "" && !containsString(p.Sizes, opts.Size) {
		return false
	}
	if opts.Brand != "" && !strings.Contains(p.Brand, opts.Brand) {
		return false
	}
	if opts.Returnable != nil && p.Returnable != *opts.Returnable {
		return false
	}
	if opts.InStock != nil && p.InStock != *opts.InStock {
		return false
	}
	if opts.MinMoteruScore != nil && p.Evaluation.MoteruScore < *opts.MinMoteruScore {
		return false
	}
	if opts.Scene != "" && !containsString(p.Attributes.Scene, opts.Scene) {
		return false
	}
	if opts.Style != "" && !containsString(p.Attributes.Style, opts.Style) {
		return false
	}
	if opts.Season != "" && !containsString(p.Attributes.Season, opts.Season) {
		return false
	}
	if opts.Keyword != "" {
		keyword := strings.ToLower(opts.Keyword)
		if !strings.Contains(strings.ToLower(p.Name), keyword) &&
			!strings.Contains(strings.ToLower(p.Description), keyword) &&
			!strings.Contains(strings.ToLower(p.Brand), keyword) {
			return false
		}
	}
	return true
}

// sortProducts sorts in place. Stable so the catalog file order breaks ties.
func sortProducts(products []model.Product, order SortOrder) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortCreatedAtDesc:
		// created_at is ISO-8601 so string order matches time order
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt > products[j].CreatedAt
		})
	default: // SortMoteruScoreDesc
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Evaluation.MoteruScore > products[j].Evaluation.MoteruScore
		})
	}
}

func (s *productService) GetProductByID(productID string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Product not found", map[string]interface{}{
				"product_id": productID,
			})
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// GetRelatedProducts layers four priority tiers around the focal product:
// same category, overlapping scenes, complementary accessory categories, then
// high-moteru fallback. Each tier adds at most two entries, deduplicated by
// product ID, and the focal product is never included.
func (s *productService) GetRelatedProducts(productID string, limit int) (*RelatedProductsResult, error) {
	products := s.productRepo.FindAll()

	var current *model.Product
	for i := range products {
		if products[i].ProductID == productID {
			current = &products[i]
			break
		}
	}
	if current == nil {
		logger.Warn("Product not found for related lookup", map[string]interface{}{
			"product_id": productID,
		})
		return nil, ErrProductNotFound
	}

	var related []model.Product
	seen := map[string]bool{productID: true}

	// appendTier considers only the first tierMax candidates of a tier,
	// skipping anything already picked by an earlier tier.
	appendTier := func(tier []model.Product, tierMax int) {
		if len(tier) > tierMax {
			tier = tier[:tierMax]
		}
		for _, p := range tier {
			if len(related) >= limit {
				return
			}
			if seen[p.ProductID] {
				continue
			}
			seen[p.ProductID] = true
			related = append(related, p)
		}
	}

	// 1. 同じカテゴリの商品
	var sameCategory []model.Product
	for _, p := range products {
		if p.ProductID != productID && p.Category == current.Category {
			sameCategory = append(sameCategory, p)
		}
	}
	appendTier(sameCategory, relatedTierCap)

	// 2. 同じシーンの商品
	var sameScene []model.Product
	for _, p := range products {
		if p.ProductID == productID {
			continue
		}
		for _, scene := range current.Attributes.Scene {
			if containsString(p.Attributes.Scene, scene) {
				sameScene = append(sameScene, p)
				break
			}
		}
	}
	appendTier(sameScene, relatedTierCap)

	// 3. 補完商品（小物など）
	var complementary []model.Product
	for _, p := range products {
		if p.ProductID != productID && p.Category != current.Category && complementaryCategories[p.Category] {
			complementary = append(complementary, p)
		}
	}
	appendTier(complementary, relatedTierCap)

	// 4. モテる度が高い商品で残りを埋める
	var highMoteru []model.Product
	for _, p := range products {
		if p.ProductID != productID && p.Evaluation.MoteruScore >= relatedMinMoteruScore {
			highMoteru = append(highMoteru, p)
		}
	}
	appendTier(highMoteru, len(highMoteru))

	decorated := make([]RelatedProduct, 0, len(related))
	for _, p := range related {
		decorated = append(decorated, decorateRelatedProduct(p))
	}

	// 上位2件を「よく一緒に購入される商品」として提示（モックの統計値）
	fbt := []FrequentlyBoughtSummary{}
	if len(decorated) >= 2 {
		for i := 0; i < 2; i++ {
			stats := &FrequentlyBoughtTogether{
				Percentage: util.RandomInt(60, 90),
				Count:      util.RandomInt(100, 500),
			}
			decorated[i].FrequentlyBoughtTogether = stats
			fbt = append(fbt, FrequentlyBoughtSummary{
				ProductID:  decorated[i].ProductID,
				Name:       decorated[i].Name,
				Percentage: stats.Percentage,
				Count:      stats.Count,
			})
		}
	}

	logger.Info("Related products selected", map[string]interface{}{
		"product_id": productID,
		"count":      len(decorated),
	})

	return &RelatedProductsResult{
		ProductID:                productID,
		RelatedProducts:          decorated,
		Count:                    len(decorated),
		FrequentlyBoughtTogether: fbt,
		BundleOffers:             bundleOffers,
		FreeShippingThreshold:    freeShippingThreshold,
	}, nil
}

// decorateRelatedProduct attaches the mock stock quantity and review
// distribution. The catalog tracks neither today; these stay synthetic until
// a real inventory/review service exists.
func decorateRelatedProduct(p model.Product) RelatedProduct {
	reviewCount := util.RandomInt(5, 50)
	avgRating := math.Round(util.RandomFloat(3.5, 5.0)*10) / 10

	distribution := map[string]int{
		"5": util.RandomInt(reviewCount/2, reviewCount),
		"4": util.RandomInt(0, reviewCount/4),
		"3": util.RandomInt(0, reviewCount/10),
		"2": util.RandomInt(0, reviewCount/20),
		"1": util.RandomInt(0, reviewCount/20),
	}

	return RelatedProduct{
		Product:       p,
		StockQuantity: util.RandomInt(1, 50),
		Reviews: ReviewSummary{
			Count:              reviewCount,
			AverageRating:      avgRating,
			RatingDistribution: distribution,
		},
	}
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
