package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/365take-collab/motefuku/internal/app/controller"
	"github.com/365take-collab/motefuku/internal/app/repository"
	"github.com/365take-collab/motefuku/internal/app/service"
	"github.com/365take-collab/motefuku/internal/middleware"
	"github.com/365take-collab/motefuku/pkg/marketing/utage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsJSON = `{
  "products": [
    {
      "product_id": "prod-001",
      "name": "デート用オーバーサイズシャツ",
      "description": "ラグジュアリーな雰囲気のオーバーサイズシャツ",
      "category": "トップス",
      "brand": "MOTEBRAND",
      "price": 3000,
      "colors": ["黒", "白"],
      "sizes": ["M", "L"],
      "returnable": true,
      "in_stock": true,
      "created_at": "2025-01-15T00:00:00",
      "attributes": {
        "scene": ["デート"],
        "style": ["きれいめ"],
        "season": ["春", "夏"],
        "fit": "オーバーサイズ",
        "design": ["oversize", "luxury"]
      },
      "evaluation": {
        "moteru_score": 4.6,
        "luxury_atmosphere": 4.2,
        "uniqueness": 4.0,
        "street_luxury_fusion": 4.5,
        "oversize_lower_body": true
      }
    },
    {
      "product_id": "prod-002",
      "name": "スリムパンツ",
      "category": "パンツ",
      "brand": "OTHER",
      "price": 8000,
      "in_stock": true,
      "created_at": "2025-02-01T00:00:00",
      "attributes": {"scene": ["仕事"], "style": ["カジュアル"], "season": ["秋"], "fit": "スリム", "design": []},
      "evaluation": {"moteru_score": 3.8}
    },
    {
      "product_id": "prod-003",
      "name": "高級レザーベルト",
      "category": "ベルト",
      "brand": "MOTEBRAND",
      "price": 6000,
      "in_stock": true,
      "created_at": "2025-03-01T00:00:00",
      "attributes": {"scene": ["デート"], "style": ["きれいめ"], "season": [], "fit": "", "design": []},
      "evaluation": {"moteru_score": 4.1}
    }
  ]
}`

const templatesJSON = `{
  "テンプレート": [
    {
      "template_id": "tpl-001",
      "name": "初デートの定番",
      "scene": "デート",
      "style": "きれいめ",
      "season": "春",
      "items": [{"category": "トップス", "name": "白シャツ"}]
    },
    {
      "template_id": "tpl-002",
      "name": "オフィスカジュアル",
      "scene": "仕事",
      "style": "カジュアル",
      "season": "秋"
    }
  ]
}`

type TestServer struct {
	Router      *gin.Engine
	StaticDir   string
	UtageServer *httptest.Server
	UtageCalls  *int
}

func setupIntegrationTest(t *testing.T) *TestServer {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	productsFile := filepath.Join(dir, "products.json")
	templatesFile := filepath.Join(dir, "templates.json")
	require.NoError(t, os.WriteFile(productsFile, []byte(productsJSON), 0644))
	require.NoError(t, os.WriteFile(templatesFile, []byte(templatesJSON), 0644))

	staticDir := filepath.Join(dir, "static")
	require.NoError(t, os.MkdirAll(filepath.Join(staticDir, "bonuses"), 0755))

	utageCalls := 0
	utageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utageCalls++
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(utageServer.Close)

	utageClient, err := utage.NewClient(utage.Config{
		APIKey:             "test-key",
		BaseURL:            utageServer.URL,
		ScenarioIDProspect: "scenario-prospect",
		ScenarioIDCustomer: "scenario-customer",
	})
	require.NoError(t, err)

	// Setup repositories
	productRepo := repository.NewProductRepository(productsFile)
	templateRepo := repository.NewTemplateRepository(templatesFile)

	// Setup services
	templateService := service.NewTemplateService(templateRepo)
	productService := service.NewProductService(productRepo)
	recommendService := service.NewRecommendService(productRepo)
	brandStyleService := service.NewBrandStyleService(productRepo)
	emailService := service.NewEmailService(utageClient, "https://motefuku.example.com")
	checkoutService := service.NewCheckoutService(utageClient, "scenario-customer", staticDir)

	// Setup controllers
	templateController := controller.NewTemplateController(templateService)
	productController := controller.NewProductController(productService, recommendService)
	brandStyleController := controller.NewBrandStyleController(brandStyleService)
	emailController := controller.NewEmailController(emailService)
	checkoutController := controller.NewCheckoutController(checkoutService)

	// Setup router
	router := gin.New()
	router.Use(middleware.LoggingMiddleware())

	api := router.Group("/api")
	{
		templates := api.Group("/templates")
		{
			templates.GET("", templateController.ListTemplates)
			templates.GET("/:template_id", templateController.GetTemplateByID)
		}

		products := api.Group("/products")
		{
			products.GET("/search", productController.SearchProducts)
			products.GET("/recommend", productController.RecommendProducts)
			products.GET("/:product_id", productController.GetProductByID)
			products.GET("/:product_id/related", productController.GetRelatedProducts)
		}

		brandStyle := api.Group("/brand-style")
		{
			brandStyle.GET("/match", brandStyleController.MatchBrandStyle)
			brandStyle.GET("/styles", brandStyleController.ListBrandStyles)
		}

		email := api.Group("/email")
		{
			email.POST("/register", emailController.RegisterEmail)
		}

		checkout := api.Group("/checkout")
		{
			checkout.POST("/upsell", checkoutController.PurchaseUpsell)
			checkout.GET("/downloads/:offer_id", checkoutController.DownloadUpsell)
		}
	}

	return &TestServer{
		Router:      router,
		StaticDir:   staticDir,
		UtageServer: utageServer,
		UtageCalls:  &utageCalls,
	}
}

func (ts *TestServer) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func (ts *TestServer) postJSON(t *testing.T, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSearchProductsEndpoint(t *testing.T) {
	ts := setupIntegrationTest(t)

	w := ts.get(t, "/api/products/search?category=トップス")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(20), body["limit"])
	assert.Equal(t, float64(1), body["total_pages"])

	products := body["products"].([]interface{})
	require.Len(t, products, 1)
	first := products[0].(map[string]interface{})
	assert.Equal(t, "prod-001", first["product_id"])
}

func TestSearchProductsEndpoint_Validation(t *testing.T) {
	ts := setupIntegrationTest(t)

	tests := []struct {
		name     string
		path     string
		wantCode string
	}{
		{name: "Unknown sort order", path: "/api/products/search?sort=rating", wantCode: "VALIDATION_INVALID_ENUM"},
		{name: "Limit over maximum", path: "/api/products/search?limit=500", wantCode: "VALIDATION_INVALID_INPUT"},
		{name: "Page below minimum", path: "/api/products/search?page=0", wantCode: "VALIDATION_INVALID_INPUT"},
		{name: "Negative min price", path: "/api/products/search?min_price=-100", wantCode: "VALIDATION_INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.get(t, tt.path)

			require.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, tt.wantCode, body["error"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestRecommendProductsEndpoint(t *testing.T) {
	ts := setupIntegrationTest(t)

	w := ts.get(t, "/api/products/recommend?max_price=5000&min_moteru_score=4.0")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, float64(1), body["count"])

	products := body["products"].([]interface{})
	first := products[0].(map[string]interface{})
	assert.Equal(t, "prod-001", first["product_id"])

	reason := first["recommendation_reason"].(string)
	assert.Contains(t, reason, "モテる度が非常に高い")
	assert.Contains(t, reason, "お手頃価格")
	assert.Greater(t, first["recommendation_score"].(float64), 0.0)
}

func TestGetProductByIDEndpoint(t *testing.T) {
	ts := setupIntegrationTest(t)

	w := ts.get(t, "/api/products/prod-002")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "スリムパンツ", body["name"])

	w = ts.get(t, "/api/products/prod-999")
	require.Equal(t, http.StatusNotFound, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "PRODUCT_NOT_FOUND", body["error"])
}

func TestRelatedProductsEndpoint(t *testing.T) {
	ts := setupIntegrationTest(t)

	w := ts.get(t, "/api/products/prod-001/related")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "prod-001", body["product_id"])
	assert.Equal(t, float64(5000), body["free_shipping_threshold"])
	assert.Len(t, body["bundle_offers"].([]interface{}), 3)

	related := body["related_products"].([]interface{})
	for _, entry := range related {
		assert.NotEqual(t, "prod-001", entry.(map[string]interface{})["product_id"])
	}

	// limit は 1〜10
	w = ts.get(t, "/api/products/prod-001/related?limit=50")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_INVALID_RANGE", decodeBody(t, w)["error"])
}

func TestTemplateEndpoints(t *testing.T) {
	ts := setupIntegrationTest(t)

	w := ts.get(t, "/api/templates")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["count"])

	w = ts.get(t, "/api/templates?scene=デート")
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])

	w = ts.get(t, "/api/templates/tpl-001")
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "初デートの定番", body["name"])
	assert.NotEmpty(t, body["items"])

	w = ts.get(t, "/api/templates/tpl-999")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "TEMPLATE_NOT_FOUND", decodeBody(t, w)["error"])
}

func TestBrandStyleEndpoints(t *testing.T) {
	ts := setupIntegrationTest(t)

	w := ts.get(t, "/api/brand-style/match?brand_style=oversize-luxury&min_score=0")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "oversize-luxury", body["brand_style"])
	assert.Greater(t, body["count"].(float64), float64(0))

	// 高い min_score では空リストが返る
	w = ts.get(t, "/api/brand-style/match?brand_style=oversize-luxury&min_score=0.99")
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, float64(0), body["count"])
	assert.Len(t, body["products"].([]interface{}), 0)

	w = ts.get(t, "/api/brand-style/match?brand_style=normcore")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "STYLE_UNKNOWN", decodeBody(t, w)["error"])

	w = ts.get(t, "/api/brand-style/match")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.get(t, "/api/brand-style/styles")
	require.Equal(t, http.StatusOK, w.Code)
	styles := decodeBody(t, w)["styles"].([]interface{})
	assert.Len(t, styles, 5)
}

func TestEmailRegisterEndpoint(t *testing.T) {
	ts := setupIntegrationTest(t)

	w := ts.postJSON(t, "/api/email/register", map[string]string{
		"name":  "山田太郎",
		"email": "taro@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	links := body["download_links"].(map[string]interface{})
	assert.Contains(t, links["guide"], "モテるコーディネート完全ガイド.pdf")
	assert.Contains(t, links["rules"], "失敗しない服選び7つのルール.pdf")
	assert.Contains(t, links["templates"], "シーン別コーディネートテンプレート集.pdf")
	assert.Equal(t, 1, *ts.UtageCalls)
}

func TestEmailRegisterEndpoint_Validation(t *testing.T) {
	ts := setupIntegrationTest(t)

	w := ts.postJSON(t, "/api/email/register", map[string]string{
		"name":  "山田太郎",
		"email": "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EMAIL_INVALID_ADDRESS", decodeBody(t, w)["error"])

	w = ts.postJSON(t, "/api/email/register", map[string]string{
		"email": "taro@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmailRegisterEndpoint_UtageDown(t *testing.T) {
	ts := setupIntegrationTest(t)
	ts.UtageServer.Close()

	w := ts.postJSON(t, "/api/email/register", map[string]string{
		"name":  "山田太郎",
		"email": "taro@example.com",
	})

	// UTAGE 停止中でも登録レスポンスは成功する
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])
}

func TestCheckoutEndpoints(t *testing.T) {
	ts := setupIntegrationTest(t)

	w := ts.postJSON(t, "/api/checkout/upsell", map[string]string{
		"offer_id": "course-complete-guide",
		"type":     "course",
		"email":    "buyer@example.com",
		"name":     "山田太郎",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["purchase_id"])
	assert.Equal(t, "/api/checkout/downloads/course-complete-guide", body["download_url"])
	// 顧客シナリオ登録とカスタムフィールド更新の2コール
	assert.Equal(t, 2, *ts.UtageCalls)

	// 相談系オファーにダウンロードはない
	w = ts.postJSON(t, "/api/checkout/upsell", map[string]string{
		"offer_id": "consultation-basic",
		"type":     "consultation",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeBody(t, w)["download_url"])
}

func TestCheckoutEndpoints_Validation(t *testing.T) {
	ts := setupIntegrationTest(t)

	// 不正な type
	w := ts.postJSON(t, "/api/checkout/upsell", map[string]string{
		"offer_id": "course-complete-guide",
		"type":     "subscription",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_INVALID_INPUT", decodeBody(t, w)["error"])

	// 存在しないオファー
	w = ts.postJSON(t, "/api/checkout/upsell", map[string]string{
		"offer_id": "course-unknown",
		"type":     "course",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CHECKOUT_INVALID_OFFER", decodeBody(t, w)["error"])
}

func TestDownloadEndpoint(t *testing.T) {
	ts := setupIntegrationTest(t)

	// ファイル未配置では 404
	w := ts.get(t, "/api/checkout/downloads/course-complete-guide")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CHECKOUT_FILE_NOT_FOUND", decodeBody(t, w)["error"])

	// ダウンロード対象外のオファー
	w = ts.get(t, "/api/checkout/downloads/consultation-basic")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CHECKOUT_INVALID_OFFER", decodeBody(t, w)["error"])

	// PDF を配置すると配信される
	bonusPath := filepath.Join(ts.StaticDir, "bonuses", "モテるコーディネート完全ガイド.pdf")
	require.NoError(t, os.WriteFile(bonusPath, []byte("%PDF-1.4 test"), 0644))

	w = ts.get(t, "/api/checkout/downloads/course-complete-guide")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "%PDF-1.4 test", w.Body.String())
}
