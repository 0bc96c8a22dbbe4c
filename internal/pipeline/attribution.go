package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/workflow"
)

// AttributionResolver ties a postback to a tenant, creator and link. The
// click referenced by the postback wins; the postback's link is the
// fallback. An event matching neither is terminal.
type AttributionResolver struct {
	clicks port.ClickRepository
	links  port.LinkRepository
	logger *slog.Logger
}

func NewAttributionResolver(clicks port.ClickRepository, links port.LinkRepository, logger *slog.Logger) *AttributionResolver {
	return &AttributionResolver{clicks: clicks, links: links, logger: logger}
}

func (s *AttributionResolver) Name() string { return StepResolveAttribution }

func (s *AttributionResolver) Execute(ctx context.Context, run *workflow.Run) (any, error) {
	env := run.Envelope

	if ref := env.ClickRef(); ref != "" {
		click, err := s.clicks.GetClick(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("get click %q: %w", ref, err)
		}
		if click != nil {
			link, err := s.links.GetLink(ctx, click.LinkID)
			if err != nil {
				return nil, fmt.Errorf("get link %q: %w", click.LinkID, err)
			}
			if link != nil {
				clickID := click.ClickID
				return domain.Ownership{
					TenantID:     link.TenantID,
					CreatorID:    link.CreatorID,
					LinkID:       link.ID,
					ClickID:      &clickID,
					AttributedBy: domain.AttributedByClick,
				}, nil
			}
			s.logger.Warn("click references a missing link, falling back to postback link",
				slog.String("run_id", run.ID), slog.String("click_id", click.ClickID), slog.String("link_id", click.LinkID))
		}
	}

	link, err := s.links.FindLinkByRef(ctx, env.SmartLinkID)
	if err != nil {
		return nil, fmt.Errorf("find link %q: %w", env.SmartLinkID, err)
	}
	if link == nil || !link.IsActive {
		return nil, workflow.Terminal(fmt.Errorf("%w: click %q, link %q", port.ErrNoAttribution, env.ClickRef(), env.SmartLinkID))
	}
	return domain.Ownership{
		TenantID:     link.TenantID,
		CreatorID:    link.CreatorID,
		LinkID:       link.ID,
		AttributedBy: domain.AttributedByLink,
	}, nil
}
