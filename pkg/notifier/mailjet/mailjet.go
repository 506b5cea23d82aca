// Package mailjet provides a notifier.Notifier implementation backed by the
// Mailjet Send API v3.1 and its stored templates.
package mailjet

import (
	"context"
	"errors"

	"yokeair/pkg/notifier"
	"yokeair/pkg/serrors"

	"github.com/mailjet/mailjet-apiv3-go"
)

// Options configure credentials, the sender identity and the mapping from
// application templates to Mailjet template ids.
type Options struct {
	PublicKey   string
	PrivateKey  string
	BaseURL     string
	SenderEmail string
	SenderName  string
	Templates   map[notifier.Template]int64
}

// Notifier sends templated messages through Mailjet.
type Notifier struct {
	client    *mailjet.Client
	sender    mailjet.RecipientV31
	templates map[notifier.Template]int64
}

var _ notifier.Notifier = (*Notifier)(nil)

// New creates a Notifier. An empty BaseURL selects the public Mailjet API.
func New(opts Options) *Notifier {
	var client *mailjet.Client
	if opts.BaseURL != "" {
		client = mailjet.NewMailjetClient(opts.PublicKey, opts.PrivateKey, opts.BaseURL)
	} else {
		client = mailjet.NewMailjetClient(opts.PublicKey, opts.PrivateKey)
	}

	return &Notifier{
		client:    client,
		sender:    mailjet.RecipientV31{Email: opts.SenderEmail, Name: opts.SenderName},
		templates: opts.Templates,
	}
}

// Send delivers one message. Mailjet validation failures are permanent and
// reported as BAD_REQUEST; everything else is a DEPENDENCY_FAILURE.
func (n *Notifier) Send(ctx context.Context, tmpl notifier.Template, to notifier.Recipient, payload notifier.Payload) error {
	templateID, ok := n.templates[tmpl]
	if !ok {
		return serrors.With(serrors.ErrBadRequest, "no mailjet template configured for %q", tmpl)
	}
	if to.Email == "" {
		return serrors.With(serrors.ErrBadRequest, "recipient has no email")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	sender := n.sender
	msg := mailjet.InfoMessagesV31{
		From:             &sender,
		To:               &mailjet.RecipientsV31{{Email: to.Email, Name: to.Name}},
		TemplateID:       templateID,
		TemplateLanguage: true,
		Variables:        payload,
		CustomID:         string(tmpl),
	}
	if _, err := n.client.SendMailV31(&mailjet.MessagesV31{Info: []mailjet.InfoMessagesV31{msg}}); err != nil {
		var feedback *mailjet.APIFeedbackErrorsV31
		if errors.As(err, &feedback) {
			return serrors.Wrap(serrors.ErrBadRequest, err, "mailjet rejected %q", tmpl)
		}

		return serrors.Wrap(serrors.ErrDependency, err, "could not send %q", tmpl)
	}

	return nil
}
