package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"founders-server/internal/clients/mail"
	"founders-server/internal/observability"
	"text/template"
)

var (
	ErrSendingEmail  = errors.New("error sending email")
	ErrEmptyTemplate = errors.New("email template is empty")
)

// EmailService handles sending founder program notifications
type EmailService struct {
	mailClient    *mail.ResendClient
	logger        *observability.Logger
	defaultSender string
	webAppURI     string
	templates     map[string]string
}

// TemplateData represents the data that can be used in templates
type TemplateData struct {
	Name          string
	Email         string
	ReferralCode  string
	ReferralLink  string
	ReferredEmail string
	TierName      string
	Amount        string
	PayoutPeriod  string
	PayoutMethod  string
}

// New creates a new EmailService
func New(mailClient *mail.ResendClient, defaultSender, webAppURI string, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		webAppURI:     webAppURI,
		templates: map[string]string{
			"founder_welcome": `
			<html>
				<body>
					<h1>Welcome to the Founders Program, {{.Name}}!</h1>
					<p>Your referral code is <strong>{{.ReferralCode}}</strong>.</p>
					<p>Share your unique link to start earning commissions:</p>
					<p><a href="{{.ReferralLink}}">{{.ReferralLink}}</a></p>
					<p>If you have any questions, please reach out to our support team.</p>
				</body>
			</html>
			`,
			"referral_activated": `
			<html>
				<body>
					<h1>Your Referral Is Active!</h1>
					<p>Hi {{.Name}},</p>
					<p>Great news! <strong>{{.ReferredEmail}}</strong> just became an active member through your referral.</p>
					<p>You are now on the <strong>{{.TierName}}</strong> tier. Keep referring to climb the ladder!</p>
				</body>
			</html>
			`,
			"payout_completed": `
			<html>
				<body>
					<h1>Your Payout Is On Its Way</h1>
					<p>Hi {{.Name}},</p>
					<p>Your payout of <strong>${{.Amount}}</strong> for {{.PayoutPeriod}} has been sent via {{.PayoutMethod}}.</p>
					<p>Thank you for being part of the Founders Program!</p>
				</body>
			</html>
			`,
		},
	}
}

// renderTemplate renders a template with the provided data
func (s *EmailService) renderTemplate(templateName string, data TemplateData) (string, error) {
	tmplStr, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	tmpl, err := template.New(templateName).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// SendFounderWelcomeEmail sends the enrollment email with the founder's referral code
func (s *EmailService) SendFounderWelcomeEmail(ctx context.Context, to, name, referralCode string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "founder_welcome"},
		observability.Field{Key: "recipient", Value: to},
	)

	subject := "Welcome to the Founders Program"

	data := TemplateData{
		Name:         name,
		Email:        to,
		ReferralCode: referralCode,
		ReferralLink: fmt.Sprintf("%s/join?ref=%s", s.webAppURI, referralCode),
	}

	htmlContent, err := s.renderTemplate("founder_welcome", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render founder welcome email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send founder welcome email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// SendReferralActivatedEmail notifies a founder that one of their referrals became active
func (s *EmailService) SendReferralActivatedEmail(ctx context.Context, to, name, referredEmail, tierName string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "referral_activated"},
		observability.Field{Key: "recipient", Value: to},
	)

	subject := "One of your referrals just activated!"

	data := TemplateData{
		Name:          name,
		Email:         to,
		ReferredEmail: referredEmail,
		TierName:      tierName,
	}

	htmlContent, err := s.renderTemplate("referral_activated", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render referral activated email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send referral activated email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// SendPayoutCompletedEmail notifies a founder that their payout was sent
func (s *EmailService) SendPayoutCompletedEmail(ctx context.Context, to, name, amount, payoutPeriod, payoutMethod string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "payout_completed"},
		observability.Field{Key: "recipient", Value: to},
		observability.Field{Key: "payout_period", Value: payoutPeriod},
	)

	subject := fmt.Sprintf("Your payout of $%s has been sent", amount)

	data := TemplateData{
		Name:         name,
		Email:        to,
		Amount:       amount,
		PayoutPeriod: payoutPeriod,
		PayoutMethod: payoutMethod,
	}

	htmlContent, err := s.renderTemplate("payout_completed", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render payout completed email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send payout completed email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}
