package errors

// エラーコード定数定義
// 形式: CATEGORY_SPECIFIC_DETAIL
// フロントエンドはこのコードを基にメッセージをマッピングする

const (
	// ==================== 検証 (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // 不正な入力
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // 不正なID
	ValidationInvalidRange = "VALIDATION_INVALID_RANGE" // 範囲外の値
	ValidationInvalidEnum  = "VALIDATION_INVALID_ENUM"  // 不正な列挙値
	ValidationRequired     = "VALIDATION_REQUIRED"      // 必須項目

	// ==================== 商品 (PRODUCT_) ====================
	ProductNotFound = "PRODUCT_NOT_FOUND" // 商品なし

	// ==================== テンプレート (TEMPLATE_) ====================
	TemplateNotFound = "TEMPLATE_NOT_FOUND" // テンプレートなし

	// ==================== ブランドスタイル (STYLE_) ====================
	StyleUnknown = "STYLE_UNKNOWN" // 不明なブランドスタイル

	// ==================== チェックアウト (CHECKOUT_) ====================
	CheckoutInvalidOffer = "CHECKOUT_INVALID_OFFER"  // 不正なオファーID
	CheckoutFileNotFound = "CHECKOUT_FILE_NOT_FOUND" // 特典ファイルなし

	// ==================== メール登録 (EMAIL_) ====================
	EmailInvalidAddress = "EMAIL_INVALID_ADDRESS" // 不正なメールアドレス

	// ==================== 内部エラー (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR" // サーバーエラー
	InternalExternalAPI = "INTERNAL_EXTERNAL_API" // 外部APIエラー
)
