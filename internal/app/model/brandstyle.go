package model

// BrandStyle ブランドスタイル（5つの大枠カテゴリ）
type BrandStyle string

const (
	StyleOversizeLuxury    BrandStyle = "oversize-luxury"    // オーバーサイズ×ラグジュアリー
	StyleMinimalMonochrome BrandStyle = "minimal-monochrome" // ミニマル×モノクロ
	StyleStreetGraphic     BrandStyle = "street-graphic"     // ストリート×グラフィック
	StyleAthleisureStreet  BrandStyle = "athleisure-street"  // アスレジャー×ストリート
	StyleAvantGarde        BrandStyle = "avant-garde"        // アヴァンギャルド×デコンストラクション
)

// Silhouette values referenced by the style profiles.
const (
	SilhouetteOversize = "oversize"
	SilhouetteRegular  = "regular"
)

// BrandStyleProfile is the hand-authored descriptor of one style category.
// The table below is process-wide static configuration and is never mutated.
type BrandStyleProfile struct {
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	IsRecommended         bool     `json:"is_recommended"`
	Keywords              []string `json:"keywords"`
	DesignFeatures        []string `json:"design_features"`
	ColorPreferences      []string `json:"color_preferences"`
	Silhouette            string   `json:"silhouette"`
	LuxuryAtmosphereMin   float64  `json:"luxury_atmosphere_min"`
	UniquenessMin         float64  `json:"uniqueness_min"`
	StreetLuxuryFusionMin float64  `json:"street_luxury_fusion_min"`
	SimilarBrands         []string `json:"similar_brands"`
}

// BrandStyleOrder fixes the listing order of /api/brand-style/styles.
var BrandStyleOrder = []BrandStyle{
	StyleOversizeLuxury,
	StyleMinimalMonochrome,
	StyleStreetGraphic,
	StyleAthleisureStreet,
	StyleAvantGarde,
}

// BrandStyleProfiles ブランドスタイルの特徴定義
var BrandStyleProfiles = map[BrandStyle]BrandStyleProfile{
	StyleOversizeLuxury: {
		Name:          "オーバーサイズ×ラグジュアリー",
		Description:   "オーバーサイズ×ラグジュアリー融合スタイル",
		IsRecommended: true, // 迷ったらこれがおすすめ
		Keywords: []string{
			"オーバーサイズ", "oversize", "デコンストラクション", "deconstruction",
			"ラグジュアリー", "luxury", "高級感", "premium",
			"ストリート", "street", "ロゴ", "logo", "グラフィック", "graphic",
		},
		DesignFeatures:        []string{"oversize", "deconstruction", "luxury", "street", "premium", "logo", "graphic"},
		ColorPreferences:      []string{"black", "white", "gray", "beige", "navy", "red"},
		Silhouette:            SilhouetteOversize,
		LuxuryAtmosphereMin:   4.0,
		UniquenessMin:         4.0,
		StreetLuxuryFusionMin: 4.5,
		SimilarBrands:         []string{},
	},
	StyleMinimalMonochrome: {
		Name:          "ミニマル×モノクロ",
		Description:   "シンプルで洗練されたミニマル×モノクロスタイル",
		IsRecommended: false,
		Keywords: []string{
			"ミニマル", "minimal", "モノクロ", "monochrome",
			"シンプル", "simple", "洗練", "sophisticated", "クリーン", "clean",
		},
		DesignFeatures:        []string{"minimal", "monochrome", "simple", "clean", "sophisticated"},
		ColorPreferences:      []string{"black", "white", "gray", "beige", "navy"},
		Silhouette:            SilhouetteRegular,
		LuxuryAtmosphereMin:   3.5,
		UniquenessMin:         3.5,
		StreetLuxuryFusionMin: 3.5,
		SimilarBrands:         []string{},
	},
	StyleStreetGraphic: {
		Name:          "ストリート×グラフィック",
		Description:   "ストリート×グラフィックが特徴的なスタイル",
		IsRecommended: false,
		Keywords: []string{
			"ストリート", "street", "グラフィック", "graphic", "ロゴ", "logo",
			"アローロゴ", "arrow", "ジッパー", "zipper", "インダストリアル", "industrial",
		},
		DesignFeatures:        []string{"graphic", "logo", "street", "industrial", "arrow"},
		ColorPreferences:      []string{"black", "white", "yellow", "orange", "red"},
		Silhouette:            SilhouetteRegular,
		LuxuryAtmosphereMin:   3.5,
		UniquenessMin:         4.0,
		StreetLuxuryFusionMin: 4.0,
		SimilarBrands:         []string{},
	},
	StyleAthleisureStreet: {
		Name:          "アスレジャー×ストリート",
		Description:   "スポーツウェアの要素を取り入れたストリートスタイル",
		IsRecommended: false,
		Keywords: []string{
			"アスレジャー", "athleisure", "ストリート", "street",
			"ミニマル", "minimal", "モノクロ", "monochrome", "スポーツ", "sport",
		},
		DesignFeatures:        []string{"athleisure", "street", "minimal", "monochrome", "sport"},
		ColorPreferences:      []string{"beige", "gray", "black", "white", "brown"},
		Silhouette:            SilhouetteOversize,
		LuxuryAtmosphereMin:   3.5,
		UniquenessMin:         3.5,
		StreetLuxuryFusionMin: 4.0,
		SimilarBrands:         []string{},
	},
	StyleAvantGarde: {
		Name:          "アヴァンギャルド×デコンストラクション",
		Description:   "前衛的で実験的なデコンストラクションスタイル",
		IsRecommended: false,
		Keywords: []string{
			"アヴァンギャルド", "avant-garde", "デコンストラクション", "deconstruction",
			"アシンメトリー", "asymmetry", "前衛", "experimental", "独創", "unique",
		},
		DesignFeatures:        []string{"avant-garde", "deconstruction", "asymmetry", "experimental", "unique"},
		ColorPreferences:      []string{"black", "white", "gray", "beige"},
		Silhouette:            SilhouetteOversize,
		LuxuryAtmosphereMin:   4.0,
		UniquenessMin:         4.5,
		StreetLuxuryFusionMin: 4.0,
		SimilarBrands:         []string{},
	},
}

// ValidBrandStyle reports whether key names one of the five styles.
func ValidBrandStyle(key string) bool {
	_, ok := BrandStyleProfiles[BrandStyle(key)]
	return ok
}
