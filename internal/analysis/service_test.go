package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"matchsight/internal/analytics"
	"matchsight/internal/llm"
	"matchsight/internal/matches"
)

const validSoccerJSON = `{"home":55,"draw":25,"away":20,"riskLevel":"MEDIUM","valueFlag":"LOW","bestValueSide":"home","narrative":"n","dataQuality":"d"}`

type fakeGateway struct {
	response string
	err      error
	calls    int
	lastUser string
}

func (g *fakeGateway) Complete(_ context.Context, _, userPrompt string) (string, error) {
	g.calls++
	g.lastUser = userPrompt
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

type memoryCache struct {
	entries map[string]*Result
}

func (c *memoryCache) Get(_ context.Context, key string) (*Result, bool, error) {
	res, ok := c.entries[key]
	return res, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, res *Result) error {
	if c.entries == nil {
		c.entries = make(map[string]*Result)
	}
	c.entries[key] = res
	return nil
}

type recordingSink struct {
	events []analytics.Event
}

func (s *recordingSink) Publish(_ context.Context, events ...analytics.Event) error {
	s.events = append(s.events, events...)
	return nil
}

func testReq() *matches.Request {
	return &matches.Request{Sport: "soccer", Home: "Arsenal", Away: "Chelsea"}
}

func TestAnalyzeHappyPath(t *testing.T) {
	gw := &fakeGateway{response: validSoccerJSON}
	sink := &recordingSink{}
	svc, err := NewService(Config{Gateway: gw, Events: sink})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	res, err := svc.Analyze(context.Background(), testReq())
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.OutcomeProbabilities["home"] != 55 {
		t.Errorf("home probability = %v, want 55", res.OutcomeProbabilities["home"])
	}
	if !strings.Contains(gw.lastUser, "Arsenal") || !strings.Contains(gw.lastUser, "Chelsea") {
		t.Error("gateway prompt missing participants")
	}
	if len(sink.events) != 1 || sink.events[0].Type != analytics.EventAccepted {
		t.Errorf("events = %+v, want one accepted event", sink.events)
	}
	if sink.events[0].Sport != "soccer" {
		t.Errorf("event sport = %s, want soccer", sink.events[0].Sport)
	}
}

func TestAnalyzeRejectsInvalidInput(t *testing.T) {
	gw := &fakeGateway{response: validSoccerJSON}
	svc, _ := NewService(Config{Gateway: gw})

	_, err := svc.Analyze(context.Background(), &matches.Request{Sport: "soccer", Home: "", Away: "Chelsea"})
	if err == nil {
		t.Fatal("expected input validation error")
	}
	if gw.calls != 0 {
		t.Error("gateway should not be called for invalid input")
	}
}

func TestAnalyzeSurfacesProviderErrors(t *testing.T) {
	provErr := &llm.ProviderError{Status: 500, Message: "upstream exploded"}
	gw := &fakeGateway{err: provErr}
	sink := &recordingSink{}
	svc, _ := NewService(Config{Gateway: gw, Events: sink})

	res, err := svc.Analyze(context.Background(), testReq())
	if res != nil {
		t.Error("no partial result expected on provider failure")
	}
	var got *llm.ProviderError
	if !errors.As(err, &got) || got.Status != 500 {
		t.Fatalf("err = %v, want ProviderError 500", err)
	}
	if len(sink.events) != 1 || sink.events[0].Type != analytics.EventProviderError {
		t.Errorf("events = %+v, want one provider_error event", sink.events)
	}
}

func TestAnalyzeSurfacesValidationFailure(t *testing.T) {
	gw := &fakeGateway{response: `{"home":50,"draw":22,"away":20,"riskLevel":"MEDIUM","valueFlag":"LOW","bestValueSide":"home","narrative":"n","dataQuality":"d"}`}
	sink := &recordingSink{}
	svc, _ := NewService(Config{Gateway: gw, Events: sink})

	_, err := svc.Analyze(context.Background(), testReq())
	var fail *Failure
	if !errors.As(err, &fail) {
		t.Fatalf("err = %v, want *Failure", err)
	}
	if fail.Rule != RuleProbabilitySum {
		t.Errorf("rule = %s, want ProbabilitySumViolation", fail.Rule)
	}
	if len(sink.events) != 1 || sink.events[0].Rule != RuleProbabilitySum {
		t.Errorf("events = %+v, want rejected event tagged with rule", sink.events)
	}
}

func TestAnalyzeUsesCache(t *testing.T) {
	gw := &fakeGateway{response: validSoccerJSON}
	sink := &recordingSink{}
	svc, _ := NewService(Config{Gateway: gw, Cache: &memoryCache{}, Events: sink})

	first, err := svc.Analyze(context.Background(), testReq())
	if err != nil {
		t.Fatalf("first analyze: %v", err)
	}
	second, err := svc.Analyze(context.Background(), testReq())
	if err != nil {
		t.Fatalf("second analyze: %v", err)
	}
	if gw.calls != 1 {
		t.Errorf("gateway calls = %d, want 1 (second served from cache)", gw.calls)
	}
	if second.ValueFlag != first.ValueFlag {
		t.Error("cached result differs from original")
	}
	if len(sink.events) != 2 || sink.events[1].Type != analytics.EventCacheHit {
		t.Errorf("events = %+v, want accepted then cache_hit", sink.events)
	}
}

func TestAnalyzeNoCredential(t *testing.T) {
	svc, _ := NewService(Config{Gateway: llm.NewLazy(llm.Config{})})
	_, err := svc.Analyze(context.Background(), testReq())
	if !errors.Is(err, llm.ErrNoCredential) {
		t.Fatalf("err = %v, want ErrNoCredential", err)
	}
}

func TestNewServiceRequiresGateway(t *testing.T) {
	if _, err := NewService(Config{}); err == nil {
		t.Fatal("expected error without gateway")
	}
}
