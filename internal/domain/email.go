package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WelcomeEmailData holds data for the welcome email sent on account registration.
type WelcomeEmailData struct {
	Email string
	Name  string
}

// RegistrationConfirmationEmailData holds data for the ticket confirmation email.
type RegistrationConfirmationEmailData struct {
	Email          string
	Name           string
	EventTitle     string
	EventDate      string
	EventLocation  string
	TicketQuantity int
	TotalPrice     float64
}

// EmailService defines the contract for sending domain-level emails.
// Sends are best-effort: callers log failures and carry on.
type EmailService interface {
	SendWelcomeMessage(ctx context.Context, data *WelcomeEmailData) error
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationConfirmationEmailData) error
}
