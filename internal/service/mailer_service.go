package service

import (
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"

	"github.com/campusrecruit/backend/internal/apperror"
	"github.com/campusrecruit/backend/internal/config"
	"github.com/campusrecruit/backend/internal/model"
)

type MailerServiceInterface interface {
	SendOutcome(candidate *model.Candidate, accepted bool) error
}

// MailerService posts final-round outcome notifications to the mail API.
// Only the final round dispatches emails; earlier rounds never call this.
type MailerService struct {
	client  *resty.Client
	baseURL string
	from    string
}

func NewMailerService() *MailerService {
	cfg := config.LoadMailerConfig()
	client := resty.New().
		SetHeader("Authorization", "Bearer "+cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	return &MailerService{
		client:  client,
		baseURL: cfg.BaseURL,
		from:    cfg.From,
	}
}

func (s *MailerService) SendOutcome(candidate *model.Candidate, accepted bool) error {
	if candidate == nil || candidate.Email == "" {
		return apperror.NewValidationError("candidate", "no email address on file")
	}

	template := "final_round_rejected"
	if accepted {
		template = "final_round_accepted"
	}

	resp, err := s.client.R().
		SetBody(map[string]any{
			"from":     s.from,
			"to":       candidate.Email,
			"template": template,
			"vars": map[string]string{
				"name": candidate.Name,
			},
		}).
		Post(s.baseURL + "/v1/send")
	if err != nil {
		return &apperror.NetworkError{Op: "mailer send", Err: err}
	}
	if resp.IsError() {
		log.Printf("mailer responded %d for %s", resp.StatusCode(), candidate.Email)
		return &apperror.NetworkError{Op: "mailer send", Err: fmt.Errorf("status %d", resp.StatusCode())}
	}
	return nil
}
