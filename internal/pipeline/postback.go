package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/workflow"
)

// PostbackStep calls the link's custom postback URL, if any.
type PostbackStep struct {
	sideEffects
	links  port.LinkRepository
	client port.PostbackClient
}

func (s *PostbackStep) Name() string { return StepFirePostback }

func (s *PostbackStep) Execute(ctx context.Context, run *workflow.Run) (any, error) {
	conv, err := s.conversion(run)
	if err != nil {
		return nil, err
	}
	if s.alreadySent(ctx, conv, StepFirePostback) {
		return sent("delivered by an earlier execution"), nil
	}

	link, err := s.links.GetLink(ctx, conv.LinkID)
	if err != nil {
		return nil, fmt.Errorf("get link %q: %w", conv.LinkID, err)
	}
	if link == nil || strings.TrimSpace(link.PostbackURL) == "" {
		return s.record(ctx, conv, StepFirePostback, skipped("no postback url")), nil
	}

	target := ExpandPostbackURL(link.PostbackURL, run.Envelope, conv)
	if err = s.client.Fire(ctx, target); err != nil {
		if errors.Is(err, port.ErrInvalidPostbackURL) {
			return nil, workflow.Terminal(err)
		}
		return nil, err
	}
	return s.record(ctx, conv, StepFirePostback, sent(hostOf(target))), nil
}

func (s *PostbackStep) RecordFailure(ctx context.Context, run *workflow.Run, err error) error {
	return s.recordFailure(ctx, run, StepFirePostback, err)
}

// ExpandPostbackURL substitutes the supported placeholders in tmpl with
// query-escaped values.
func ExpandPostbackURL(tmpl string, env domain.Envelope, conv domain.Conversion) string {
	clickID := env.ClickID
	if clickID == "" {
		clickID = env.ExternalClickID
	}
	fan := env.FanOfID
	if fan == "" {
		fan = env.FanUsername
	}
	r := strings.NewReplacer(
		"{click_id}", url.QueryEscape(clickID),
		"{amount}", url.QueryEscape(FormatCents(conv.AmountNetCents)),
		"{fan_id}", url.QueryEscape(fan),
		"{conversion_id}", url.QueryEscape(conv.ID),
		"{event_type}", url.QueryEscape(string(conv.EventType)),
	)
	return r.Replace(tmpl)
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}
