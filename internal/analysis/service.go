package analysis

import (
	"context"
	"fmt"
	"time"

	"matchsight/internal/analytics"
	"matchsight/internal/logging"
	"matchsight/internal/matches"
	"matchsight/internal/prompt"
	"matchsight/internal/sports"
)

// Gateway is the model round-trip. *llm.Client and *llm.Lazy satisfy it;
// tests substitute a fake.
type Gateway interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ResultCache is the subset of the cache the pipeline consults before
// spending a model call.
type ResultCache interface {
	Get(ctx context.Context, key string) (*Result, bool, error)
	Set(ctx context.Context, key string, res *Result) error
}

// EventSink receives fire-and-forget analytics events.
type EventSink interface {
	Publish(ctx context.Context, events ...analytics.Event) error
}

// Config controls the pipeline.
type Config struct {
	Registry *sports.Registry
	Gateway  Gateway
	Cache    ResultCache // optional
	Events   EventSink   // optional
}

// Service runs the full resolve -> compose -> query -> validate pipeline.
// It is stateless per request; the registry is a read-only shared table.
type Service struct {
	registry *sports.Registry
	gateway  Gateway
	cache    ResultCache
	events   EventSink
}

// NewService creates the pipeline.
func NewService(cfg Config) (*Service, error) {
	if cfg.Gateway == nil {
		return nil, fmt.Errorf("analysis: gateway is required")
	}
	registry := cfg.Registry
	if registry == nil {
		registry = sports.DefaultRegistry()
	}
	return &Service{
		registry: registry,
		gateway:  cfg.Gateway,
		cache:    cfg.Cache,
		events:   cfg.Events,
	}, nil
}

// Analyze produces a validated assessment for one fixture. The returned
// error is either a *Failure (the model answered but inconsistently) or a
// gateway error (the model could not be reached); callers distinguish the
// two with errors.As / errors.Is.
func (s *Service) Analyze(ctx context.Context, req *matches.Request) (*Result, error) {
	if s == nil {
		return nil, fmt.Errorf("analysis: service is nil")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profile := s.registry.Resolve(req.Sport)
	slug := matches.Slug(req)
	started := time.Now()

	if s.cache != nil {
		key := matches.CacheKey(req)
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			logging.Errorf("[analysis] cache get %s: %v", slug, err)
		} else if ok {
			s.emit(ctx, analytics.Event{Type: analytics.EventCacheHit, Sport: profile.Key, MatchSlug: slug})
			return cached, nil
		}
	}

	doc := prompt.Compose(profile, req)
	raw, err := s.gateway.Complete(ctx, doc.System, doc.User)
	if err != nil {
		s.emit(ctx, analytics.Event{
			Type:      analytics.EventProviderError,
			Sport:     profile.Key,
			MatchSlug: slug,
			LatencyMS: time.Since(started).Milliseconds(),
		})
		return nil, err
	}

	res, fail := Validate(raw, profile)
	if fail != nil {
		s.emit(ctx, analytics.Event{
			Type:      analytics.EventRejected,
			Sport:     profile.Key,
			MatchSlug: slug,
			Rule:      fail.Rule,
			LatencyMS: time.Since(started).Milliseconds(),
		})
		return nil, fail
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, matches.CacheKey(req), res); err != nil {
			logging.Errorf("[analysis] cache set %s: %v", slug, err)
		}
	}
	s.emit(ctx, analytics.Event{
		Type:      analytics.EventAccepted,
		Sport:     profile.Key,
		MatchSlug: slug,
		LatencyMS: time.Since(started).Milliseconds(),
	})
	return res, nil
}

// Registry exposes the sport table for collaborators (share links, API).
func (s *Service) Registry() *sports.Registry {
	return s.registry
}

// emit is fire-and-forget: analytics must never fail an analysis.
func (s *Service) emit(ctx context.Context, ev analytics.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		logging.Errorf("[analysis] publish event %s: %v", ev.Type, err)
	}
}
