package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
)

// ContactUseCase forwards storefront contact-form submissions to the shop
// inbox. Fire and forget: no retry, no persistence.
type ContactUseCase struct {
	mailer   Mailer
	receiver string
	logger   *logger.Logger
}

func NewContactUseCase(mailer Mailer, receiver string, logger *logger.Logger) *ContactUseCase {
	return &ContactUseCase{
		mailer:   mailer,
		receiver: receiver,
		logger:   logger,
	}
}

func (uc *ContactUseCase) SendContactMessage(ctx context.Context, name, email, phone, message string) error {
	if name == "" || email == "" || message == "" {
		return ErrMissingContactFields
	}

	if phone == "" {
		phone = "N/A"
	}

	body := fmt.Sprintf(
		`<h3>Contact Details</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Message:</strong><br/> %s</p>`,
		html.EscapeString(name),
		html.EscapeString(email),
		html.EscapeString(phone),
		html.EscapeString(message),
	)

	subject := "Contact Form Submission from " + name

	if err := uc.mailer.Send(ctx, uc.receiver, subject, body); err != nil {
		return fmt.Errorf("failed to send contact mail: %w", err)
	}
	return nil
}

var ErrMissingContactFields = errors.New("please fill all required fields")
