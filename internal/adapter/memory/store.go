// Package memory provides an in-process implementation of the repository
// ports. It backs the HTTP and workflow tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
)

type conversionKey struct {
	tenantID string
	eventKey string
}

type stepKey struct {
	runID string
	step  string
}

type sideEffect struct {
	status domain.SideEffectStatus
	detail string
}

// Store keeps all entities in maps guarded by one mutex. Every method
// returns copies so callers cannot mutate stored state.
type Store struct {
	mu sync.Mutex

	tenants     map[string]domain.Tenant
	links       map[string]domain.Link
	pages       map[string]domain.LandingPage // by slug
	clicks      map[string]domain.Click
	conversions map[string]domain.Conversion
	convByKey   map[conversionKey]string
	sideEffects map[string]map[string]sideEffect
	runs        map[string]domain.WorkflowRun
	steps       map[stepKey]domain.StepRecord
	runSteps    map[string][]string
	deadLetters map[string]domain.DeadLetter // by run id
	now         func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		tenants:     make(map[string]domain.Tenant),
		links:       make(map[string]domain.Link),
		pages:       make(map[string]domain.LandingPage),
		clicks:      make(map[string]domain.Click),
		conversions: make(map[string]domain.Conversion),
		convByKey:   make(map[conversionKey]string),
		sideEffects: make(map[string]map[string]sideEffect),
		runs:        make(map[string]domain.WorkflowRun),
		steps:       make(map[stepKey]domain.StepRecord),
		runSteps:    make(map[string][]string),
		deadLetters: make(map[string]domain.DeadLetter),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// PutTenant inserts or replaces a tenant.
func (s *Store) PutTenant(t domain.Tenant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants[t.ID] = t
}

// PutLink inserts or replaces a link.
func (s *Store) PutLink(l domain.Link) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links[l.ID] = l
}

// PutLandingPage inserts or replaces a landing page.
func (s *Store) PutLandingPage(p domain.LandingPage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[p.Slug] = p
}

// Links

func (s *Store) GetLink(_ context.Context, id string) (*domain.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.links[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (s *Store) FindLinkByRef(_ context.Context, ref string) (*domain.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.links[ref]; ok {
		return &l, nil
	}
	for _, l := range s.links {
		if l.ExternalID != "" && l.ExternalID == ref {
			return &l, nil
		}
	}
	return nil, nil
}

func (s *Store) GetLandingPageBySlug(_ context.Context, slug string) (*domain.LandingPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pages[slug]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *Store) IncrementLandingPageViews(_ context.Context, pageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for slug, p := range s.pages {
		if p.ID == pageID {
			p.ViewCount++
			s.pages[slug] = p
		}
	}
	return nil
}

func (s *Store) IncrementLinkClicks(_ context.Context, linkID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.links[linkID]; ok {
		l.TotalClicks++
		l.UpdatedAt = s.now()
		s.links[linkID] = l
	}
	return nil
}

func (s *Store) AddConversionTotals(_ context.Context, linkID string, revenueCents int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.links[linkID]; ok {
		l.TotalConversions++
		l.TotalRevenueCents += revenueCents
		l.UpdatedAt = s.now()
		s.links[linkID] = l
	}
	return nil
}

// Tenants

func (s *Store) GetTenant(_ context.Context, id string) (*domain.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tenants[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

// Clicks

func (s *Store) CreateClick(_ context.Context, click *domain.Click) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.clicks[click.ClickID]; dup {
		return fmt.Errorf("click %s already exists", click.ClickID)
	}
	s.clicks[click.ClickID] = *click
	return nil
}

func (s *Store) GetClick(_ context.Context, clickID string) (*domain.Click, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.clicks[clickID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Conversions

func (s *Store) InsertOrGetConversion(_ context.Context, c domain.Conversion) (domain.Conversion, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := conversionKey{tenantID: c.TenantID, eventKey: c.ExternalEventKey}
	if id, ok := s.convByKey[key]; ok {
		return s.conversions[id], false, nil
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	s.conversions[c.ID] = c
	s.convByKey[key] = c.ID
	return c, true, nil
}

func (s *Store) GetConversion(_ context.Context, id string) (*domain.Conversion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conversions[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Conversions returns every stored conversion.
func (s *Store) Conversions() []domain.Conversion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Conversion, 0, len(s.conversions))
	for _, c := range s.conversions {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) SetSideEffectStatus(_ context.Context, conversionID, adapter string, status domain.SideEffectStatus, detail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.sideEffects[conversionID]
	if !ok {
		m = make(map[string]sideEffect)
		s.sideEffects[conversionID] = m
	}
	if m[adapter].status == domain.SideEffectSent {
		return nil
	}
	m[adapter] = sideEffect{status: status, detail: detail}
	return nil
}

func (s *Store) SideEffectStatuses(_ context.Context, conversionID string) (map[string]domain.SideEffectStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]domain.SideEffectStatus, len(s.sideEffects[conversionID]))
	for adapter, se := range s.sideEffects[conversionID] {
		out[adapter] = se.status
	}
	return out, nil
}

// Workflow ledger

func (s *Store) CreateOrGetRun(_ context.Context, run domain.WorkflowRun, steps []string) (domain.WorkflowRun, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[run.RunID]; ok {
		return s.runLocked(run.RunID), false, nil
	}
	s.runs[run.RunID] = run
	s.runSteps[run.RunID] = append([]string(nil), steps...)
	for _, name := range steps {
		s.steps[stepKey{run.RunID, name}] = domain.StepRecord{
			RunID:     run.RunID,
			Name:      name,
			State:     domain.StepPending,
			UpdatedAt: run.CreatedAt,
		}
	}
	return s.runLocked(run.RunID), true, nil
}

func (s *Store) GetRun(_ context.Context, runID string) (*domain.WorkflowRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[runID]; !ok {
		return nil, nil
	}
	run := s.runLocked(runID)
	return &run, nil
}

func (s *Store) runLocked(runID string) domain.WorkflowRun {
	run := s.runs[runID]
	run.Steps = make(map[string]domain.StepRecord, len(s.runSteps[runID]))
	for _, name := range s.runSteps[runID] {
		run.Steps[name] = s.steps[stepKey{runID, name}]
	}
	return run
}

func (s *Store) ClaimStep(_ context.Context, runID, step string, now, leaseUntil time.Time) (domain.StepRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := stepKey{runID, step}
	rec, ok := s.steps[key]
	if !ok {
		return domain.StepRecord{}, false, fmt.Errorf("step %s of run %s does not exist", step, runID)
	}
	claimable := rec.State == domain.StepPending ||
		rec.State == domain.StepFailedRetryable ||
		(rec.State == domain.StepRunning && rec.LeaseExpiresAt != nil && !rec.LeaseExpiresAt.After(now))
	if !claimable {
		return rec, false, nil
	}
	rec.State = domain.StepRunning
	rec.Attempts++
	lease := leaseUntil
	rec.LeaseExpiresAt = &lease
	rec.UpdatedAt = now
	s.steps[key] = rec
	s.touchLocked(runID, now)
	return rec, true, nil
}

func (s *Store) CompleteStep(_ context.Context, runID, step string, attempt int, output json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := stepKey{runID, step}
	rec, ok := s.steps[key]
	if !ok {
		return fmt.Errorf("step %s of run %s does not exist", step, runID)
	}
	if rec.State != domain.StepRunning || rec.Attempts != attempt {
		return fmt.Errorf("complete step %s of run %s attempt %d: %w", step, runID, attempt, port.ErrStepNotOwned)
	}
	now := s.now()
	rec.State = domain.StepSucceeded
	rec.Output = append(json.RawMessage(nil), output...)
	rec.LastError = ""
	rec.LeaseExpiresAt = nil
	rec.UpdatedAt = now
	s.steps[key] = rec
	s.touchLocked(runID, now)
	return nil
}

func (s *Store) FailStep(_ context.Context, runID, step string, attempt int, lastErr string, terminal bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := stepKey{runID, step}
	rec, ok := s.steps[key]
	if !ok {
		return fmt.Errorf("step %s of run %s does not exist", step, runID)
	}
	if rec.State != domain.StepRunning || rec.Attempts != attempt {
		return fmt.Errorf("fail step %s of run %s attempt %d: %w", step, runID, attempt, port.ErrStepNotOwned)
	}
	now := s.now()
	rec.State = domain.StepFailedRetryable
	if terminal {
		rec.State = domain.StepFailedTerminal
	}
	rec.LastError = lastErr
	rec.LeaseExpiresAt = nil
	rec.UpdatedAt = now
	s.steps[key] = rec
	s.touchLocked(runID, now)
	return nil
}

func (s *Store) FinishRun(_ context.Context, runID string, status domain.RunStatus, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[runID]
	if !ok {
		return fmt.Errorf("run %s does not exist", runID)
	}
	if run.Status != domain.RunRunning {
		return nil
	}
	run.Status = status
	run.UpdatedAt = at
	run.CompletedAt = &at
	s.runs[runID] = run
	return nil
}

func (s *Store) ListStaleRuns(_ context.Context, before time.Time, limit int) ([]domain.WorkflowRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.WorkflowRun
	for id, run := range s.runs {
		if run.Status == domain.RunRunning && run.UpdatedAt.Before(before) {
			out = append(out, s.runLocked(id))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.Before(out[j].UpdatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// SetRunUpdatedAt backdates a run, e.g. to make it eligible for recovery.
func (s *Store) SetRunUpdatedAt(runID string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if run, ok := s.runs[runID]; ok {
		run.UpdatedAt = at
		s.runs[runID] = run
	}
}

func (s *Store) touchLocked(runID string, at time.Time) {
	if run, ok := s.runs[runID]; ok {
		run.UpdatedAt = at
		s.runs[runID] = run
	}
}

// Dead letters

func (s *Store) CreateDeadLetter(_ context.Context, dl domain.DeadLetter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.deadLetters[dl.RunID]; ok {
		return nil
	}
	s.deadLetters[dl.RunID] = dl
	return nil
}

// DeadLetters returns every stored dead letter.
func (s *Store) DeadLetters() []domain.DeadLetter {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.DeadLetter, 0, len(s.deadLetters))
	for _, dl := range s.deadLetters {
		out = append(out, dl)
	}
	return out
}
