// README: Recommendation orchestrator: validate, gather tools, generate, persist.
package recommendation

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"trailhead/internal/destinations"
	"trailhead/internal/gateway"
	"trailhead/internal/llm"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("recommendation not found")
	// ErrNotRecorded signals that a recommendation was generated but could
	// not be written to history. The record is still returned alongside it.
	ErrNotRecorded = errors.New("recommendation not recorded")
)

// ToolGateway is the slice of the gateway client the orchestrator needs.
type ToolGateway interface {
	Invoke(ctx context.Context, name string, args map[string]any) gateway.ToolResult
}

// History is the persistence surface. Implemented by *Store.
type History interface {
	Save(ctx context.Context, rec *Record) error
	List(ctx context.Context, limit, offset int) ([]Record, error)
	Get(ctx context.Context, id string) (*Record, error)
}

// Service runs the recommendation cycle. It is stateless and safe to call
// concurrently; the only shared resource is the store's connection pool.
type Service struct {
	store     History
	tools     ToolGateway
	generator llm.Generator
	logger    *slog.Logger
}

func NewService(store History, tools ToolGateway, generator llm.Generator, logger *slog.Logger) *Service {
	return &Service{store: store, tools: tools, generator: generator, logger: logger}
}

// Recommend executes one full cycle. Tool and generation failures degrade the
// record's content; only validation and persistence problems return an error.
func (s *Service) Recommend(ctx context.Context, req PreferenceRequest) (*Record, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	results := s.gatherTools(ctx, req)

	gen := s.generator.Complete(ctx, llm.Request{
		Preferences: llm.Preferences{
			Interests:     req.Interests,
			Duration:      req.Duration,
			Season:        req.Season,
			ActivityLevel: req.ActivityLevel,
		},
		DestinationContext: destinations.Context(),
		Tools:              results,
	})

	rec := &Record{
		ID:            newID(),
		Request:       req,
		GeneratedText: gen.Text,
		Succeeded:     gen.Succeeded,
		ToolResults:   results,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.Save(ctx, rec); err != nil {
		s.logger.Error("history write failed", "id", rec.ID, "err", err)
		return rec, ErrNotRecorded
	}
	return rec, nil
}

// gatherTools runs every matching policy rule concurrently. Each result lands
// in a slot indexed by policy position, so the returned order is the policy
// order no matter which call finishes first.
func (s *Service) gatherTools(ctx context.Context, req PreferenceRequest) []gateway.ToolResult {
	rules := planTools(req)
	if len(rules) == 0 {
		return nil
	}

	results := make([]gateway.ToolResult, len(rules))
	var wg sync.WaitGroup
	for i, rule := range rules {
		wg.Add(1)
		go func(i int, rule policyRule) {
			defer wg.Done()
			results[i] = s.tools.Invoke(ctx, rule.Tool, rule.Args(req))
		}(i, rule)
	}
	wg.Wait()

	for _, r := range results {
		if !r.Succeeded {
			s.logger.Warn("tool degraded", "tool", r.ToolName, "output", r.Output)
		}
	}
	return results
}

// List returns history newest first. limit is clamped to 1..100 (default 20),
// negative offsets are treated as zero.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.List(ctx, limit, offset)
}

// Get returns one record or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*Record, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrBadRequest
	}
	return s.store.Get(ctx, id)
}

func validate(req PreferenceRequest) error {
	for _, field := range []string{req.Interests, req.Duration, req.Season, req.ActivityLevel} {
		if strings.TrimSpace(field) == "" {
			return ErrBadRequest
		}
	}
	return nil
}

func newID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
