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
)

var ErrUnknownBrandStyle = errors.New("unknown brand style")

// Scoring weights of CalculateBrandStyleScore.
const (
	styleKeywordWeight    = 0.30
	styleDesignWeight     = 0.25
	styleEvaluationWeight = 0.25
	stylePriceWeight      = 0.20
	styleOversizeBonus    = 0.10
	stylePriceCeiling     = 50000.0
)

// MatchOptions filter brand-style matching candidates.
type MatchOptions struct {
	Style    model.BrandStyle
	MaxPrice *int
	Category string
	MinScore float64
	Limit    int
}

// MatchedProduct is a summary plus the style score and a generated reason.
type MatchedProduct struct {
	model.ProductSummary
	StyleScore           float64 `json:"style_score"`
	RecommendationReason string  `json:"recommendation_reason"`
}

// MatchResult is the /brand-style/match response body.
type MatchResult struct {
	BrandStyle model.BrandStyle `json:"brand_style"`
	Count      int              `json:"count"`
	MaxPrice   *int             `json:"max_price"`
	MinScore   float64          `json:"min_score"`
	Products   []MatchedProduct `json:"products"`
}

// StyleInfo is one entry of the /brand-style/styles listing.
type StyleInfo struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	IsRecommended  bool     `json:"is_recommended"`
	Keywords       []string `json:"keywords"`
	DesignFeatures []string `json:"design_features"`
	SimilarBrands  []string `json:"similar_brands"`
}

type BrandStyleService interface {
	MatchProducts(opts MatchOptions) (*MatchResult, error)
	ListStyles() []StyleInfo
}

type brandStyleService struct {
	productRepo repository.ProductRepository
}

func NewBrandStyleService(productRepo repository.ProductRepository) BrandStyleService {
	return &brandStyleService{productRepo: productRepo}
}

// CalculateBrandStyleScore rates how close a product is to a brand style.
//
// 重み付け:
//   - キーワードマッチング 30%
//   - デザインフィーチャーマッチング 25%
//   - 評価スコアマッチング 25%
//   - 価格効率 20%
//   - オーバーサイズシルエット一致で +0.10 ボーナス
//
// The result is always in [0, 1]; an unknown style yields exactly 0.
func CalculateBrandStyleScore(p *model.Product, style model.BrandStyle) float64 {
	profile, ok := model.BrandStyleProfiles[style]
	if !ok {
		return 0.0
	}

	score := 0.0

	// 1. キーワードマッチング
	productText := strings.ToLower(p.Name) + " " + strings.ToLower(p.Description) + " " + strings.ToLower(p.Brand)
	matched := 0
	for _, keyword := range profile.Keywords {
		if strings.Contains(productText, strings.ToLower(keyword)) {
			matched++
		}
	}
	keywordScore := math.Min(float64(matched)/float64(len(profile.Keywords))*3, 1.0)
	score += keywordScore * styleKeywordWeight

	// 2. デザインフィーチャーマッチング
	designScore := 0.0
	if len(p.Attributes.Design) > 0 {
		matchedFeatures := 0
		for _, feature := range profile.DesignFeatures {
			for _, df := range p.Attributes.Design {
				if containsFold(df, feature) {
					matchedFeatures++
					break
				}
			}
		}
		designScore = math.Min(float64(matchedFeatures)/float64(len(profile.DesignFeatures)), 1.0)
	}
	score += designScore * styleDesignWeight

	// 3. 評価スコアマッチング（各基準値に対する充足率の平均）
	eval := p.Evaluation
	luxuryMatch := thresholdRatio(eval.LuxuryAtmosphere, profile.LuxuryAtmosphereMin)
	uniquenessMatch := thresholdRatio(eval.Uniqueness, profile.UniquenessMin)
	fusionMatch := thresholdRatio(eval.StreetLuxuryFusion, profile.StreetLuxuryFusionMin)
	score += (luxuryMatch + uniquenessMatch + fusionMatch) / 3 * styleEvaluationWeight

	// 4. シルエットマッチング（ボーナス）
	if profile.Silhouette == model.SilhouetteOversize && eval.OversizeLowerBody {
		score += styleOversizeBonus
	}

	// 5. 価格効率（安いほど高スコア、50,000円で半減）
	priceEfficiency := math.Max(0, 1.0-(float64(p.Price)/stylePriceCeiling)*0.5)
	score += priceEfficiency * stylePriceWeight

	return math.Min(score, 1.0)
}

func thresholdRatio(value, threshold float64) float64 {
	if threshold <= 0 {
		return 1.0
	}
	return math.Min(value/threshold, 1.0)
}

func (s *brandStyleService) MatchProducts(opts MatchOptions) (*MatchResult, error) {
	profile, ok := model.BrandStyleProfiles[opts.Style]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBrandStyle, opts.Style)
	}

	logger.Debug("Matching brand style", map[string]interface{}{
		"brand_style": opts.Style,
		"max_price":   opts.MaxPrice,
		"category":    opts.Category,
		"min_score":   opts.MinScore,
		"limit":       opts.Limit,
	})

	type scoredProduct struct {
		product model.Product
		score   float64
	}

	products := s.productRepo.FindAll()
	scored := make([]scoredProduct, 0, len(products))

	for _, p := range products {
		if !p.InStock {
			continue
		}
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		if opts.MaxPrice != nil && p.Price > *opts.MaxPrice {
			continue
		}

		styleScore := CalculateBrandStyleScore(&p, opts.Style)
		if styleScore < opts.MinScore {
			continue
		}
		scored = append(scored, scoredProduct{product: p, score: styleScore})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > opts.Limit {
		scored = scored[:opts.Limit]
	}

	matched := make([]MatchedProduct, 0, len(scored))
	for _, sp := range scored {
		matched = append(matched, MatchedProduct{
			ProductSummary:       sp.product.Summary(),
			StyleScore:           math.Round(sp.score*1000) / 1000,
			RecommendationReason: styleReason(&sp.product, profile.Name, sp.score),
		})
	}

	logger.Info("Brand style matched", map[string]interface{}{
		"brand_style": opts.Style,
		"count":       len(matched),
	})

	return &MatchResult{
		BrandStyle: opts.Style,
		Count:      len(matched),
		MaxPrice:   opts.MaxPrice,
		MinScore:   opts.MinScore,
		Products:   matched,
	}, nil
}

// styleReason スタイルマッチの推薦理由（日本語）を生成する
func styleReason(p *model.Product, styleName string, score float64) string {
	var reasons []string

	if score >= 0.8 {
		reasons = append(reasons, fmt.Sprintf("%sスタイルに非常に近い", styleName))
	} else if score >= 0.6 {
		reasons = append(reasons, fmt.Sprintf("%sスタイルに近い", styleName))
	} else {
		reasons = append(reasons, fmt.Sprintf("%sスタイル", styleName))
	}

	switch {
	case p.Price <= 5000:
		reasons = append(reasons, "5,000円以下でお手頃")
	case p.Price <= 10000:
		reasons = append(reasons, "10,000円以下でコスパが良い")
	case p.Price <= 20000:
		reasons = append(reasons, "20,000円以下で高級ブランド風")
	}

	if p.Evaluation.LuxuryAtmosphere >= 4.0 {
		reasons = append(reasons, "高級感のあるデザイン")
	}
	if p.Evaluation.StreetLuxuryFusion >= 4.0 {
		reasons = append(reasons, "ストリート×ラグジュアリー融合")
	}

	return strings.Join(reasons, "・")
}

func (s *brandStyleService) ListStyles() []StyleInfo {
	styles := make([]StyleInfo, 0, len(model.BrandStyleOrder))
	for _, key := range model.BrandStyleOrder {
		profile := model.BrandStyleProfiles[key]
		styles = append(styles, StyleInfo{
			Key:            string(key),
			Name:           profile.Name,
			Description:    profile.Description,
			IsRecommended:  profile.IsRecommended,
			Keywords:       profile.Keywords,
			DesignFeatures: profile.DesignFeatures,
			SimilarBrands:  profile.SimilarBrands,
		})
	}
	return styles
}
