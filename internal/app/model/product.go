package model

// ProductFit 商品のフィット感（attributes.fit に部分一致で現れる）
const (
	FitSlim     = "スリム"
	FitRegular  = "レギュラー"
	FitOversize = "オーバーサイズ"
	FitLoose    = "ルーズ"
)

// BodyType ユーザーの体型区分
const (
	BodyTypeSlim    = "細身"
	BodyTypeAverage = "標準"
	BodyTypeSolid   = "がっちり"
	BodyTypePetite  = "小柄"
)

// ProductAttributes holds the curator-assigned tags of a product.
type ProductAttributes struct {
	Scene  []string `json:"scene"`
	Style  []string `json:"style"`
	Season []string `json:"season"`
	Fit    string   `json:"fit"`
	Design []string `json:"design"`
}

// ProductEvaluation holds the curator scores (0-5 scales).
type ProductEvaluation struct {
	MoteruScore        float64 `json:"moteru_score"`
	LuxuryAtmosphere   float64 `json:"luxury_atmosphere"`
	Uniqueness         float64 `json:"uniqueness"`
	StreetLuxuryFusion float64 `json:"street_luxury_fusion"`
	OversizeLowerBody  bool    `json:"oversize_lower_body"`
}

// Product is one catalog entry. Records are read-only within a request;
// the canonical list lives in the products JSON file.
type Product struct {
	ProductID    string            `json:"product_id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
	Brand        string            `json:"brand"`
	Price        int               `json:"price"`
	Colors       []string          `json:"colors"`
	Sizes        []string          `json:"sizes"`
	ImageURL     string            `json:"image_url"`
	URL          string            `json:"url"`
	AffiliateURL string            `json:"affiliate_url"`
	Returnable   bool              `json:"returnable"`
	InStock      bool              `json:"in_stock"`
	CreatedAt    string            `json:"created_at"`
	Attributes   ProductAttributes `json:"attributes"`
	Evaluation   ProductEvaluation `json:"evaluation"`
}

// ProductSummary is the trimmed shape returned by list endpoints.
type ProductSummary struct {
	ProductID    string  `json:"product_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Brand        string  `json:"brand"`
	Price        int     `json:"price"`
	ImageURL     string  `json:"image_url"`
	MoteruScore  float64 `json:"moteru_score"`
	Returnable   bool    `json:"returnable"`
	InStock      bool    `json:"in_stock"`
	URL          string  `json:"url"`
	AffiliateURL string  `json:"affiliate_url"`
}

// Summary projects a product into its list shape.
func (p *Product) Summary() ProductSummary {
	return ProductSummary{
		ProductID:    p.ProductID,
		Name:         p.Name,
		Category:     p.Category,
		Brand:        p.Brand,
		Price:        p.Price,
		ImageURL:     p.ImageURL,
		MoteruScore:  p.Evaluation.MoteruScore,
		Returnable:   p.Returnable,
		InStock:      p.InStock,
		URL:          p.URL,
		AffiliateURL: p.AffiliateURL,
	}
}
