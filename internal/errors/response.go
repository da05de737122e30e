package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 標準エラーレスポンス構造
type ErrorResponse struct {
	Error   string `json:"error"`   // エラーコード（フロントエンドのマッピング用）
	Message string `json:"message"` // ユーザー向けメッセージ（日本語）
}

// RespondWithError エラーレスポンスヘルパー
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// よく使うエラーレスポンスの短縮関数

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "サーバーエラーが発生しました。しばらくしてから再度お試しください"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}
