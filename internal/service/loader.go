package service

import (
	"context"
	"log"
)

// NameLister is the slice of the tournament repo the loader needs.
type NameLister interface {
	ListNames(ctx context.Context) ([]string, error)
}

// TournamentLoader feeds the tournaments screen. Its contract is that it
// never fails: any source error is logged and surfaced as an empty list,
// so the screen renders "no tournaments" and "load failed" the same way.
type TournamentLoader struct {
	Source NameLister
	Logger *log.Logger
}

// LoadNames returns tournament names in source order. The result is never
// nil and there is no error to handle.
func (l *TournamentLoader) LoadNames(ctx context.Context) []string {
	names, err := l.Source.ListNames(ctx)
	if err != nil {
		l.logf("loader: list tournament names: %v", err)
		return []string{}
	}
	if names == nil {
		return []string{}
	}
	return names
}

func (l *TournamentLoader) logf(format string, args ...interface{}) {
	if l.Logger != nil {
		l.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
