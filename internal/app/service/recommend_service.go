package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/365take-collab/motefuku/internal/app/model"
	"github.com/365take-collab/motefuku/internal/app/repository"
	"github.com/365take-collab/motefuku/pkg/logger"
)

// DefaultMinMoteruScore is the recommendation eligibility floor.
const DefaultMinMoteruScore = 3.5

// bodyTypeFitPreferences 体型別の推奨フィット感
var bodyTypeFitPreferences = map[string][]string{
	model.BodyTypeSlim:    {model.FitSlim, model.FitRegular},
	model.BodyTypeAverage: {model.FitRegular, model.FitSlim},
	model.BodyTypeSolid:   {model.FitRegular, model.FitLoose, model.FitOversize},
	model.BodyTypePetite:  {model.FitSlim, model.FitRegular},
}

// RecommendOptions carries the user's wishes and measurements. Height and
// weight of 0 mean "not supplied".
type RecommendOptions struct {
	Purpose        string
	MaxPrice       *int
	Category       string
	Scene          string
	Style          string
	Season         string
	MinMoteruScore float64
	BodyType       string
	Height         int
	Weight         int
	Size           string
	Fit            string
	Limit          int
}

// RecommendedProduct is a summary plus the composite ranking score and a
// generated Japanese justification.
type RecommendedProduct struct {
	model.ProductSummary
	RecommendationScore  float64 `json:"recommendation_score"`
	RecommendationReason string  `json:"recommendation_reason"`
}

// RecommendResult is the /recommend response body.
type RecommendResult struct {
	Count    int                  `json:"count"`
	Purpose  string               `json:"purpose,omitempty"`
	MaxPrice *int                 `json:"max_price"`
	Products []RecommendedProduct `json:"products"`
}

type RecommendService interface {
	RecommendProducts(opts RecommendOptions) RecommendResult
}

type recommendService struct {
	productRepo repository.ProductRepository
}

func NewRecommendService(productRepo repository.ProductRepository) RecommendService {
	return &recommendService{productRepo: productRepo}
}

type recommendCandidate struct {
	product        model.Product
	bodyMatchScore float64
	finalScore     float64
}

// RecommendProducts runs the two-stage selection: eligibility filtering with
// graded fit tolerance, then a weighted composite of moteru score, price
// efficiency and body compatibility.
func (s *recommendService) RecommendProducts(opts RecommendOptions) RecommendResult {
	logger.Debug("Recommending products", map[string]interface{}{
		"purpose":          opts.Purpose,
		"max_price":        opts.MaxPrice,
		"category":         opts.Category,
		"min_moteru_score": opts.MinMoteruScore,
		"body_type":        opts.BodyType,
		"fit":              opts.Fit,
		"limit":            opts.Limit,
	})

	products := s.productRepo.FindAll()

	candidates := make([]recommendCandidate, 0, len(products))
	for _, p := range products {
		bodyMatch, ok := eligible(&p, &opts)
		if !ok {
			continue
		}
		candidates = append(candidates, recommendCandidate{product: p, bodyMatchScore: bodyMatch})
	}

	// モテる度でまずソートし、同点時の順序を安定させる
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].product.Evaluation.MoteruScore > candidates[j].product.Evaluation.MoteruScore
	})

	for i := range candidates {
		c := &candidates[i]
		bodyScore := c.bodyMatchScore * bodyTypeScore(&c.product, opts.BodyType, opts.Height, opts.Weight)
		priceEff := priceEfficiency(c.product.Price, opts.MaxPrice)

		// スコア計算: モテる度70%、価格効率15%、体型マッチ15%
		moteru := c.product.Evaluation.MoteruScore
		c.finalScore = moteru * (0.70 + priceEff*0.15 + bodyScore*0.15)
		c.bodyMatchScore = bodyScore
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].finalScore > candidates[j].finalScore
	})

	if len(candidates) > opts.Limit {
		candidates = candidates[:opts.Limit]
	}

	recommended := make([]RecommendedProduct, 0, len(candidates))
	for _, c := range candidates {
		recommended = append(recommended, RecommendedProduct{
			ProductSummary:       c.product.Summary(),
			RecommendationScore:  math.Round(c.finalScore*100) / 100,
			RecommendationReason: recommendationReason(&c.product, &opts),
		})
	}

	logger.Info("Products recommended", map[string]interface{}{
		"count": len(recommended),
	})

	return RecommendResult{
		Count:    len(recommended),
		Purpose:  opts.Purpose,
		MaxPrice: opts.MaxPrice,
		Products: recommended,
	}
}

// eligible applies the stage-1 filters and returns the fit-derived body match
// multiplier. A スリム request tolerates レギュラー products (and オーバーサイズ
// tolerates ルーズ) at 0.8 instead of exclusion.
func eligible(p *model.Product, opts *RecommendOptions) (float64, bool) {
	if !p.InStock {
		return 0, false
	}
	if opts.MaxPrice != nil && p.Price > *opts.MaxPrice {
		return 0, false
	}
	if p.Evaluation.MoteruScore < opts.MinMoteruScore {
		return 0, false
	}
	if opts.Category != "" && p.Category != opts.Category {
		return 0, false
	}
	if opts.Scene != "" && !containsString(p.Attributes.Scene, opts.Scene) {
		return 0, false
	}
	if opts.Style != "" && !containsString(p.Attributes.Style, opts.Style) {
		return 0, false
	}
	if opts.Season != "" && !containsString(p.Attributes.Season, opts.Season) {
		return 0, false
	}
	if opts.Purpose != "" && !matchesPurpose(p, opts.Purpose) {
		return 0, false
	}
	if opts.Size != "" && len(p.Sizes) > 0 && !containsString(p.Sizes, opts.Size) {
		return 0, false
	}

	bodyMatch := 1.0
	if opts.Fit != "" {
		productFit := p.Attributes.Fit
		if productFit != "" && !containsFold(productFit, opts.Fit) {
			switch {
			case opts.Fit == model.FitSlim && strings.Contains(productFit, model.FitRegular):
				bodyMatch *= 0.8
			case opts.Fit == model.FitOversize && strings.Contains(productFit, model.FitLoose):
				bodyMatch *= 0.8
			default:
				return 0, false
			}
		}
	}

	return bodyMatch, true
}

func matchesPurpose(p *model.Product, purpose string) bool {
	purpose = strings.ToLower(purpose)
	if strings.Contains(strings.ToLower(p.Name), purpose) ||
		strings.Contains(strings.ToLower(p.Description), purpose) ||
		strings.Contains(strings.ToLower(p.Brand), purpose) {
		return true
	}
	for _, scene := range p.Attributes.Scene {
		if strings.Contains(strings.ToLower(scene), purpose) {
			return true
		}
	}
	for _, style := range p.Attributes.Style {
		if strings.Contains(strings.ToLower(style), purpose) {
			return true
		}
	}
	return false
}

// bodyTypeScore rates fit compatibility in [0,1]: 1.0 when the product fit
// matches the body type's preferred fits, 0.7 otherwise, further adjusted by
// a BMI heuristic when both height and weight are supplied.
func bodyTypeScore(p *model.Product, bodyType string, height, weight int) float64 {
	if bodyType == "" && height == 0 && weight == 0 {
		return 1.0
	}

	score := 1.0
	productFit := p.Attributes.Fit

	if preferred, ok := bodyTypeFitPreferences[bodyType]; ok && productFit != "" {
		matched := false
		for _, fit := range preferred {
			if containsFold(productFit, fit) {
				matched = true
				break
			}
		}
		if matched {
			score = 1.0
		} else {
			score = 0.7
		}
	}

	if height > 0 && weight > 0 {
		heightM := float64(height) / 100
		bmi := float64(weight) / (heightM * heightM)
		switch {
		case bmi < 18.5: // やせ型
			if !strings.Contains(productFit, model.FitSlim) && !strings.Contains(productFit, model.FitRegular) {
				score *= 0.8
			}
		case bmi > 25: // 肥満型
			if !strings.Contains(productFit, model.FitLoose) && !strings.Contains(productFit, model.FitOversize) {
				score *= 0.8
			}
		}
	}

	return score
}

// priceEfficiency is monotonically non-increasing in price under both the
// bounded and unbounded formulas.
func priceEfficiency(price int, maxPrice *int) float64 {
	if maxPrice != nil && *maxPrice > 0 {
		return 1.0 - (float64(price)/float64(*maxPrice))*0.3
	}
	return 1.0 / (1.0 + float64(price)/50000)
}

// recommendationReason 推薦理由（日本語）を生成する
func recommendationReason(p *model.Product, opts *RecommendOptions) string {
	var reasons []string

	moteru := p.Evaluation.MoteruScore
	if moteru >= 4.5 {
		reasons = append(reasons, "モテる度が非常に高い")
	} else if moteru >= 4.0 {
		reasons = append(reasons, "モテる度が高い")
	}

	if opts.Scene != "" {
		reasons = append(reasons, fmt.Sprintf("%sシーンに最適", opts.Scene))
	}
	if opts.Style != "" {
		reasons = append(reasons, fmt.Sprintf("%sスタイルに合う", opts.Style))
	}
	if opts.Purpose != "" {
		reasons = append(reasons, fmt.Sprintf("%sに適している", opts.Purpose))
	}

	if opts.BodyType != "" && p.Attributes.Fit != "" {
		reasons = append(reasons, fmt.Sprintf("%s体型に適したフィット感", opts.BodyType))
	}
	if opts.Fit != "" && p.Attributes.Fit != "" && containsFold(p.Attributes.Fit, opts.Fit) {
		reasons = append(reasons, fmt.Sprintf("希望の%sフィット", opts.Fit))
	}

	if p.Price <= 5000 {
		reasons = append(reasons, "お手頃価格")
	} else if p.Price <= 10000 {
		reasons = append(reasons, "コスパが良い")
	}

	if p.Evaluation.OversizeLowerBody {
		reasons = append(reasons, "オーバーサイズシルエットでモテる")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "条件に合致した商品")
	}

	return strings.Join(reasons, "・")
}

// containsFold reports whether s contains substr, ASCII case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
