package controller

import (
	"net/http"

	"github.com/365take-collab/motefuku/internal/app/service"
	apierrors "github.com/365take-collab/motefuku/internal/errors"
	"github.com/365take-collab/motefuku/internal/middleware"
	"github.com/gin-gonic/gin"
)

type EmailController struct {
	emailService service.EmailService
}

func NewEmailController(emailService service.EmailService) *EmailController {
	return &EmailController{emailService: emailService}
}

type emailRegisterRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Source string `json:"source"`
}

// RegisterEmail メールアドレスを登録し、特典PDFのダウンロードリンクを返す
// POST /api/email/register
func (ctrl *EmailController) RegisterEmail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req emailRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid email registration request", map[string]interface{}{
			"error": err.Error(),
		})
		apierrors.BadRequest(c, apierrors.EmailInvalidAddress, "お名前とメールアドレスを正しく入力してください")
		return
	}

	if req.Source == "" {
		req.Source = "top_page"
	}

	result := ctrl.emailService.RegisterEmail(c.Request.Context(), req.Name, req.Email, req.Source)

	c.JSON(http.StatusOK, result)
}
