// Package mail renders and sends the transactional emails: the replies to
// contact form messages and the account emails of the auth flows.
package mail

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Email is one of the reply variants. The set is closed: only this package
// can implement it.
type Email interface {
	Type() entity.EmailType
	Send(ctx context.Context) error

	sealed()
}

// Options carries the contact form submission an email replies to.
type Options struct {
	ID           uuid.UUID
	Name         string
	Email        string
	TimeZone     string
	Message      string
	ArticleTitle string
	ArticleLink  string
	ArticleImage string
}

// OptionsFromInbox maps a stored submission onto Options.
func OptionsFromInbox(email *entity.InboxEmail) Options {
	return Options{
		ID:           email.ID,
		Name:         email.SenderName,
		Email:        email.SenderEmail,
		TimeZone:     email.TimeZone,
		Message:      email.Message,
		ArticleTitle: email.ArticleTitle,
		ArticleLink:  email.ArticleLink,
		ArticleImage: email.ArticleImage,
	}
}

// Deps are the collaborators and addresses shared by every variant.
type Deps struct {
	Sender       service.MailSender
	Alert        service.AlertChannel
	Logger       *slog.Logger
	WebURL       string
	AdminEmail   string
	WorkEmail    string
	AlertAddress string

	// Now and Intn default to the wall clock and math/rand.
	Now  func() time.Time
	Intn func(n int) int
}

// NewEmail returns the variant for tag. Unknown tags yield ok=false.
func NewEmail(tag entity.EmailType, opts Options, deps Deps) (Email, bool) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.WorkEmail == "" {
		deps.WorkEmail = deps.AdminEmail
	}

	base := envelope{opts: opts, deps: deps}

	switch tag {
	case entity.EmailTypeGreetings:
		return &GreetingEmail{base}, true
	case entity.EmailTypeOpinion:
		return &OpinionEmail{base}, true
	case entity.EmailTypeWork:
		return &WorkEmail{base}, true
	case entity.EmailTypeErrorReport:
		return &ErrorReportEmail{base}, true
	case entity.EmailTypeProposal:
		return &ProposalEmail{base}, true
	case entity.EmailTypeReview:
		return &ReviewEmail{base}, true
	default:
		return nil, false
	}
}

type outgoing struct {
	to      string
	subject string
	body    string
}

// envelope holds what every variant needs to address and send its mails.
type envelope struct {
	opts Options
	deps Deps
}

func (e *envelope) sealed() {}

func (e *envelope) inboxLink() string {
	return strings.TrimRight(e.deps.WebURL, "/") + "/inbox/" + e.opts.ID.String()
}

func (e *envelope) year() int {
	return e.deps.Now().Year()
}

func (e *envelope) deliver(ctx context.Context, msg outgoing) error {
	if msg.to == "" {
		return errors.Errorf("no recipient for %q", msg.subject)
	}

	info, err := e.deps.Sender.Send(ctx, msg.to, msg.subject, msg.body)
	if err != nil {
		return errors.Wrapf(err, "failed to send %q", msg.subject)
	}

	e.deps.Logger.InfoContext(ctx, "Email sent",
		slog.String("subject", msg.subject),
		slog.String("messageId", info.MessageID),
		slog.Any("accepted", info.Accepted),
		slog.Any("rejected", info.Rejected),
	)

	return nil
}

// deliverPair sends the customer reply and the admin notification concurrently.
func (e *envelope) deliverPair(ctx context.Context, customer, admin outgoing) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return e.deliver(gctx, customer) })
	g.Go(func() error { return e.deliver(gctx, admin) })

	return g.Wait()
}

// alert pages the administrator. Failures are logged, never returned.
func (e *envelope) alert(ctx context.Context, text string) {
	if e.deps.Alert == nil || e.deps.AlertAddress == "" {
		e.deps.Logger.WarnContext(ctx, "Admin alert skipped, no alert channel configured")

		return
	}

	if err := e.deps.Alert.Notify(ctx, e.deps.AlertAddress, text); err != nil {
		e.deps.Logger.ErrorContext(ctx, "Failed to send admin alert", slog.Any("error", err))
	}
}

// customerCard renders a reply in the portfolio layout.
func (e *envelope) customerCard(title, message string) (string, error) {
	return render(layoutPortfolio, cardData{
		Title:   title,
		Message: message,
		Reason:  "You are receiving this email because you wrote to me through my portfolio.",
		Year:    e.year(),
	})
}
