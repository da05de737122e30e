package service

import (
	"context"

	"github.com/365take-collab/motefuku/pkg/logger"
	"github.com/365take-collab/motefuku/pkg/marketing/utage"
)

// MarketingClient is the outbound surface of the UTAGE client. Failures are
// logged and absorbed: content delivery never blocks on a marketing outage.
type MarketingClient interface {
	RegisterMember(ctx context.Context, req utage.RegisterMemberRequest) error
	UpdateCustomFields(ctx context.Context, email string, fields map[string]interface{}) error
}

// DownloadLinks 特典PDFのダウンロードリンク
type DownloadLinks struct {
	Guide     string `json:"guide"`
	Rules     string `json:"rules"`
	Templates string `json:"templates"`
}

// EmailRegisterResult is the /email/register response body. Success is
// always true; UTAGE forwarding failures do not surface here.
type EmailRegisterResult struct {
	Success       bool          `json:"success"`
	Message       string        `json:"message"`
	DownloadLinks DownloadLinks `json:"download_links"`
}

type EmailService interface {
	RegisterEmail(ctx context.Context, name, email, source string) EmailRegisterResult
}

type emailService struct {
	marketing MarketingClient
	baseURL   string
}

func NewEmailService(marketing MarketingClient, baseURL string) EmailService {
	return &emailService{
		marketing: marketing,
		baseURL:   baseURL,
	}
}

// RegisterEmail forwards the signup to UTAGE (prospect scenario) and returns
// the bonus download links. Any forwarding failure (missing credentials,
// network error, non-2xx) is logged and swallowed.
func (s *emailService) RegisterEmail(ctx context.Context, name, email, source string) EmailRegisterResult {
	err := s.marketing.RegisterMember(ctx, utage.RegisterMemberRequest{
		Email:  email,
		Name:   name,
		Source: source,
	})
	if err != nil {
		logger.Warn("UTAGE registration failed, download links are still provided", map[string]interface{}{
			"email":  email,
			"source": source,
			"error":  err.Error(),
		})
	}

	return EmailRegisterResult{
		Success: true,
		Message: "メールアドレスを登録しました。特典PDFのダウンロードリンクをメールでお送りします。",
		DownloadLinks: DownloadLinks{
			Guide:     s.baseURL + "/static/bonuses/モテるコーディネート完全ガイド.pdf",
			Rules:     s.baseURL + "/static/bonuses/失敗しない服選び7つのルール.pdf",
			Templates: s.baseURL + "/static/bonuses/シーン別コーディネートテンプレート集.pdf",
		},
	}
}
