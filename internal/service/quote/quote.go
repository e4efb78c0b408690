package quote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/astraclean/offerte_backend/pkg/email"
	"github.com/astraclean/offerte_backend/pkg/observability"
	"github.com/astraclean/offerte_backend/pkg/reqctx"
	"github.com/astraclean/offerte_backend/pkg/s3"
	"github.com/astraclean/offerte_backend/pkg/sanitize"
	"github.com/astraclean/offerte_backend/pkg/validate"
)

const (
	instrumentationName = "github.com/astraclean/offerte_backend/internal/service/quote"

	DefaultSubject = "Nieuwe offerte aanvraag"
	phoneRegion    = "NL"
)

// Field order of the relayed mail body.
var mailFields = []validate.Field{
	validate.FieldName,
	validate.FieldPhone,
	validate.FieldEmail,
	validate.FieldService,
	validate.FieldDescription,
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Request struct {
	Values       validate.Values
	CaptchaToken string
	RemoteIP     string
}

type Receipt struct {
	ID         string
	Recipient  string
	ArchiveKey string
	SentAt     time.Time
}

// ---------------------------------------------------------------------------
// Collaborators
// ---------------------------------------------------------------------------

type Mailer interface {
	Send(ctx context.Context, m email.Message) error
}

type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

type Archiver interface {
	PutText(ctx context.Context, key, text string) error
}

type Options struct {
	Recipient     string
	Subject       string
	ArchivePrefix string
	Table         *validate.Table
	Logger        *slog.Logger
	// Telemetry supplies the tracer and meter. Nil disables both.
	Telemetry *observability.Provider
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Submit(ctx context.Context, req Request) (*Receipt, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type quoteService struct {
	mailer   Mailer
	verifier Verifier
	archiver Archiver
	opts     Options

	tracer    trace.Tracer
	submitted metric.Int64Counter
	duration  metric.Float64Histogram
}

// New builds the relay. verifier and archiver may be nil.
func New(mailer Mailer, verifier Verifier, archiver Archiver, opts Options) Service {
	if opts.Table == nil {
		opts.Table = validate.DefaultTable()
	}
	if strings.TrimSpace(opts.Subject) == "" {
		opts.Subject = DefaultSubject
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	meter := opts.Telemetry.Meter(instrumentationName)
	counter, _ := meter.Int64Counter("quote_submissions_total",
		metric.WithDescription("Quote requests handled, by outcome"),
		metric.WithUnit("{request}"),
	)
	duration, _ := meter.Float64Histogram("quote_submission_duration_seconds",
		metric.WithDescription("Time from receipt to relay or rejection"),
		metric.WithUnit("s"),
	)

	return &quoteService{
		mailer:    mailer,
		verifier:  verifier,
		archiver:  archiver,
		opts:      opts,
		tracer:    opts.Telemetry.Tracer(instrumentationName),
		submitted: counter,
		duration:  duration,
	}
}

func (s *quoteService) Submit(ctx context.Context, req Request) (*Receipt, error) {
	ctx, span := s.tracer.Start(ctx, "quote.Submit")
	defer span.End()

	start := time.Now()
	receipt, outcome, err := s.submit(ctx, req)

	span.SetAttributes(attribute.String("quote.outcome", outcome))
	byOutcome := metric.WithAttributes(attribute.String("outcome", outcome))
	s.submitted.Add(ctx, 1, byOutcome)
	s.duration.Record(ctx, time.Since(start).Seconds(), byOutcome)

	log := s.opts.Logger.With(reqctx.LogAttrs(ctx)...)
	switch {
	case err == nil:
		log.Info("quote request relayed",
			slog.String("quote_id", receipt.ID),
			slog.String("service_type", req.Values[validate.FieldService]),
		)
	case errors.Is(err, ErrDelivery):
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		log.Error("quote request delivery failed",
			slog.String("reason", outcome),
			slog.String("error", err.Error()),
		)
	default:
		log.Info("quote request rejected", slog.String("reason", outcome))
	}

	return receipt, err
}

// submit strips markup before validating, so a field that only held markup
// counts as empty and the mail carries exactly what was validated.
func (s *quoteService) submit(ctx context.Context, req Request) (*Receipt, string, error) {
	clean := Sanitize(req.Values)

	v := validate.New(s.opts.Table)
	v.ValidateAll(clean)
	s.rejectRewrittenEmail(v, clean[validate.FieldEmail])
	if !v.Valid() {
		return nil, "invalid", &ValidationError{Fields: v.FieldErrors()}
	}

	if s.verifier != nil {
		if err := s.verifier.Verify(ctx, req.CaptchaToken, req.RemoteIP); err != nil {
			return nil, "captcha_failed", fmt.Errorf("%w: %w", ErrCaptchaFailed, err)
		}
	}

	msg := s.buildMessage(clean)
	if err := s.mailer.Send(ctx, msg); err != nil {
		return nil, "mail_" + email.Classify(err).String(), fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	receipt := &Receipt{
		ID:        uuid.NewString(),
		Recipient: s.opts.Recipient,
		SentAt:    time.Now().UTC(),
	}
	receipt.ArchiveKey = s.archive(ctx, receipt, msg)

	return receipt, "sent", nil
}

// rejectRewrittenEmail fails an address that would change when reduced to
// the characters allowed in a Reply-To header.
func (s *quoteService) rejectRewrittenEmail(v *validate.Validator, addr string) {
	if _, bad := v.Error(validate.FieldEmail); bad || sanitize.Email(addr) == addr {
		return
	}
	if msg, ok := v.Table().Message(validate.FieldEmail, validate.KindEmail); ok {
		v.Reject(validate.FieldEmail, msg)
	}
}

func (s *quoteService) buildMessage(values validate.Values) email.Message {
	fields := make([]email.QuoteField, 0, len(mailFields))
	for _, f := range mailFields {
		value := values[f]
		if f == validate.FieldPhone {
			value = FormatPhone(value)
		}
		fields = append(fields, email.QuoteField{Label: f.Label(), Value: value})
	}
	return email.BuildQuoteRequestEmail(email.QuoteEmailData{
		Recipient: s.opts.Recipient,
		Subject:   s.opts.Subject,
		ReplyTo:   values[validate.FieldEmail],
		Fields:    fields,
	})
}

// archive stores a copy of the relayed mail. Failures are logged only; the
// mail has already been sent.
func (s *quoteService) archive(ctx context.Context, receipt *Receipt, msg email.Message) string {
	if s.archiver == nil {
		return ""
	}
	key := s3.ObjectKey(s.opts.ArchivePrefix, receipt.SentAt, "txt")
	if err := s.archiver.PutText(ctx, key, RenderArchive(receipt, msg)); err != nil {
		s.opts.Logger.Warn("quote archive failed",
			slog.String("quote_id", receipt.ID),
			slog.String("error", err.Error()),
		)
		return ""
	}
	return key
}

// Sanitize strips markup from every field except the email address, which
// is only trimmed. Addresses are never rewritten; the validator rejects
// characters that do not belong in one.
func Sanitize(values validate.Values) validate.Values {
	out := make(validate.Values, len(values))
	for f, raw := range values {
		if f == validate.FieldEmail {
			out[f] = strings.TrimSpace(raw)
			continue
		}
		out[f] = sanitize.Text(raw)
	}
	return out
}

// FormatPhone renders a Dutch number as "+31 6 12345678". Numbers the
// library cannot parse are returned unchanged.
func FormatPhone(raw string) string {
	num, err := phonenumbers.Parse(validate.NormalizePhone(raw), phoneRegion)
	if err != nil {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}

// RenderArchive renders the archived copy of a relayed mail.
func RenderArchive(receipt *Receipt, msg email.Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Quote-Id: %s\n", receipt.ID)
	fmt.Fprintf(&b, "Date: %s\n", receipt.SentAt.Format(time.RFC1123Z))
	fmt.Fprintf(&b, "To: %s\n", strings.Join(msg.To, ", "))
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\n\n", msg.Subject)
	b.WriteString(msg.TextBody)
	b.WriteString("\n")
	return b.String()
}
