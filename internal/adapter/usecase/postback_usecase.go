package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/metrics"
)

// Conversion times outside this window around the receive time are rejected.
const (
	maxTimestampSkew = 24 * time.Hour
	maxTimestampAge  = 5 * 365 * 24 * time.Hour
)

// latestTimestamp is the last instant an envelope can carry: JSON times stop
// at year 9999.
var latestTimestamp = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

// PostbackUseCase turns validated postback parameters into envelopes and
// publishes them. It implements port.PostbackUseCase.
type PostbackUseCase struct {
	publisher port.EventPublisher
	validator *validator.Validate
	logger    *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewPostbackUseCase creates a postback use case publishing to publisher.
func NewPostbackUseCase(publisher port.EventPublisher, logger *slog.Logger, m *metrics.Metrics) *PostbackUseCase {
	u := &PostbackUseCase{
		publisher: publisher,
		logger:    logger,
		metrics:   m,
		now:       func() time.Time { return time.Now().UTC() },
	}
	u.validator = newPostbackValidator(func() time.Time { return u.now() })
	return u
}

func newPostbackValidator(now func() time.Time) *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("param"); name != "" {
			return name
		}
		return f.Name
	})
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		_, err := ParseCents(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
		t, err := ParseTimestamp(fl.Field().String())
		if err != nil {
			return false
		}
		at := now()
		return !t.After(at.Add(maxTimestampSkew)) && !t.Before(at.Add(-maxTimestampAge))
	})
	return v
}

// Ingest validates p, derives the external event key and publishes the
// envelope. Validation failures wrap port.ErrInvalidPostback; publish
// failures are returned as is so the caller can ask for a retry.
func (u *PostbackUseCase) Ingest(ctx context.Context, p port.PostbackParams) (domain.Envelope, error) {
	env, err := u.envelope(p)
	if err != nil {
		u.metrics.PostbacksIngested.WithLabelValues("invalid").Inc()
		return domain.Envelope{}, err
	}

	if err = u.publisher.Publish(ctx, env); err != nil {
		u.metrics.PostbacksIngested.WithLabelValues("publish_failed").Inc()
		return domain.Envelope{}, fmt.Errorf("publish postback %s: %w", env.ExternalEventKey, err)
	}
	u.metrics.PostbacksIngested.WithLabelValues("published").Inc()
	u.logger.Debug("postback published",
		slog.String("external_event_key", env.ExternalEventKey),
		slog.String("conversion_type", env.ConversionType),
		slog.String("link_id", env.SmartLinkID))
	return env, nil
}

func (u *PostbackUseCase) envelope(p port.PostbackParams) (domain.Envelope, error) {
	if err := u.validator.Struct(p); err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: %s", port.ErrInvalidPostback, describeValidation(err))
	}

	// Formats were checked by the validator.
	gross, _ := ParseCents(p.Gross)
	net, _ := ParseCents(p.Net)
	at := u.now()
	if p.Timestamp != "" {
		at, _ = ParseTimestamp(p.Timestamp)
	}

	env := domain.Envelope{
		ClickID:          p.ClickID,
		ExternalClickID:  p.ExternalClickID,
		ConversionType:   p.ConversionType,
		TransactionType:  p.TransactionType,
		TransactionID:    p.TransactionID,
		AmountGrossCents: gross,
		AmountNetCents:   net,
		FanOfID:          p.FanID,
		FanUsername:      p.FanUsername,
		CreatorAcctID:    p.CreatorAcctID,
		CreatorUsername:  p.CreatorUsername,
		SmartLinkID:      p.LinkID,
		SmartLinkName:    p.LinkName,
		ConversionAt:     at.UTC(),
	}
	env.ExternalEventKey = EventKey(env)
	return env, nil
}

// EventKey derives the deduplication key of an envelope: the upstream
// transaction id when present, otherwise a digest of the click reference,
// conversion type and conversion time truncated to the second.
func EventKey(env domain.Envelope) string {
	if env.TransactionID != "" {
		return "tx:" + env.TransactionID
	}
	sum := sha256.Sum256([]byte(env.ClickRef() + "|" + env.ConversionType + "|" +
		strconv.FormatInt(env.ConversionAt.Unix(), 10)))
	return "ev:" + hex.EncodeToString(sum[:])
}

// ParseCents parses a non-negative decimal amount into cents. Fractions
// beyond two digits are rounded half up. An empty string is zero.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) || !isDigits(frac) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > 1<<53 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	padded := frac + "000"
	cents, _ := strconv.ParseInt(padded[:2], 10, 64)
	if padded[2] >= '5' {
		cents++
	}
	return units*100 + cents, nil
}

// ParseTimestamp accepts RFC 3339 or unix seconds between the unix epoch
// and the end of year 9999.
func ParseTimestamp(s string) (time.Time, error) {
	var t time.Time
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		if sec < 0 || sec > latestTimestamp.Unix() {
			return time.Time{}, fmt.Errorf("timestamp %q out of range", s)
		}
		t = time.Unix(sec, 0)
	} else if t, err = time.Parse(time.RFC3339, s); err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	t = t.UTC()
	if t.Before(time.Unix(0, 0)) || t.After(latestTimestamp) {
		return time.Time{}, fmt.Errorf("timestamp %q out of range", s)
	}
	return t, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// describeValidation renders validator errors as "field: rule" pairs using
// the query parameter names.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "required_without":
			parts = append(parts, fe.Field()+" is required")
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		case "amount":
			parts = append(parts, fe.Field()+" must be a non-negative decimal")
		case "timestamp":
			parts = append(parts, fe.Field()+" must be RFC3339 or unix seconds, at most 24h ahead and 5 years old")
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
