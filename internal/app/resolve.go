package app

import (
	"context"

	"go.trai.ch/dedup/internal/core/domain"
)

// ResolveResult is the outcome of one request of a Resolve call.
type ResolveResult struct {
	Request   domain.ResolveData
	Outcome   domain.RewriteOutcome
	Rewritten bool
}

// ResolveReport summarises a Resolve call.
type ResolveReport struct {
	Results     []ResolveResult
	LockWritten bool
}

// Resolve runs requests, in order, through a single session and ends it.
func (a *App) Resolve(ctx context.Context, cfg *domain.Config, requests []domain.ResolveData) (*ResolveReport, error) {
	if len(requests) == 0 {
		return nil, domain.ErrNoRequests
	}

	s, err := a.Begin(ctx, cfg)
	if err != nil {
		return nil, err
	}

	report := &ResolveReport{Results: make([]ResolveResult, 0, len(requests))}
	for _, req := range requests {
		out, ok := s.Rewrite(req)
		report.Results = append(report.Results, ResolveResult{Request: req, Outcome: out, Rewritten: ok})
	}

	report.LockWritten, err = s.End(ctx)
	if err != nil {
		return nil, err
	}
	return report, nil
}
