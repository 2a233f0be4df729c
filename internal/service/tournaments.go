package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/Togss/esportsranker/internal/database/repository"
)

// TournamentDraft is user input for a new tournament.
type TournamentDraft struct {
	Name         string
	Region       string
	Tier         string
	StartDate    *time.Time
	EndDate      *time.Time
	PrizePoolUSD *int64
}

// AddResult reports what Add did.
type AddResult struct {
	ID         int64
	Slug       string
	Status     string
	Duplicates []string // existing names that look like the new one
}

// TournamentService owns tournament writes: validation, slugging and
// status derivation.
type TournamentService struct {
	Tournaments *repository.TournamentRepo
	Clock       func() time.Time // nil means time.Now
}

// Add validates the draft, derives slug and status, and inserts it. Near
// duplicate names don't block the insert; they come back in the result so
// the UI can warn.
func (s *TournamentService) Add(ctx context.Context, d TournamentDraft) (AddResult, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return AddResult{}, fmt.Errorf("tournament name is required")
	}
	if d.StartDate != nil && d.EndDate != nil && d.EndDate.Before(*d.StartDate) {
		return AddResult{}, fmt.Errorf("end date must not be before start date")
	}

	existing, err := s.Tournaments.ListNames(ctx)
	if err != nil {
		return AddResult{}, fmt.Errorf("list existing names: %w", err)
	}
	dups := nearDuplicates(name, existing)

	slug, err := s.uniqueSlug(ctx, Slugify(name))
	if err != nil {
		return AddResult{}, err
	}

	status := ComputeStatus(d.StartDate, d.EndDate, s.now())

	id, err := s.Tournaments.Insert(ctx, repository.Tournament{
		Name:         name,
		Slug:         slug,
		Region:       d.Region,
		Tier:         d.Tier,
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		Status:       status,
		PrizePoolUSD: d.PrizePoolUSD,
	})
	if err != nil {
		return AddResult{}, fmt.Errorf("insert tournament: %w", err)
	}
	return AddResult{ID: id, Slug: slug, Status: status, Duplicates: dups}, nil
}

// RefreshStatuses recomputes the status of every dated tournament and
// returns how many rows changed. Statuses drift as days pass, so this runs
// at startup.
func (s *TournamentService) RefreshStatuses(ctx context.Context) (int, error) {
	rows, err := s.Tournaments.ListWithDates(ctx)
	if err != nil {
		return 0, err
	}
	changed := 0
	now := s.now()
	for _, t := range rows {
		next := ComputeStatus(t.StartDate, t.EndDate, now)
		if next == t.Status {
			continue
		}
		if err := s.Tournaments.UpdateStatus(ctx, t.ID, next); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}

func (s *TournamentService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *TournamentService) uniqueSlug(ctx context.Context, base string) (string, error) {
	if base == "" {
		base = "tournament"
	}
	exists, err := s.Tournaments.SlugExists(ctx, base)
	if err != nil {
		return "", err
	}
	if !exists {
		return base, nil
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		exists, err := s.Tournaments.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

// ComputeStatus derives a tournament's status from its dates. Both dates
// present: before the start is UPCOMING, within the range ONGOING, past
// the end COMPLETED. Undated tournaments stay DRAFT. Comparison is by
// calendar date, not instant.
func ComputeStatus(start, end *time.Time, now time.Time) string {
	if start == nil || end == nil {
		return repository.StatusDraft
	}
	today := dateOnly(now)
	switch {
	case today < dateOnly(*start):
		return repository.StatusUpcoming
	case today > dateOnly(*end):
		return repository.StatusCompleted
	default:
		return repository.StatusOngoing
	}
}

func dateOnly(t time.Time) string { return t.Format("2006-01-02") }

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the name and collapses every non-alphanumeric run
// into a single hyphen.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStripRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// nearDuplicates returns existing names within a small levenshtein ratio
// of the candidate, to catch double entries like "MSC 2024" vs "MSC2024".
func nearDuplicates(name string, existing []string) []string {
	var out []string
	for _, other := range existing {
		if nameDistanceRatio(name, other) < 0.25 {
			out = append(out, other)
		}
	}
	return out
}

func nameDistanceRatio(a, b string) float64 {
	ua := strings.ToUpper(strings.TrimSpace(a))
	ub := strings.ToUpper(strings.TrimSpace(b))
	maxlen := len(ua)
	if len(ub) > maxlen {
		maxlen = len(ub)
	}
	if maxlen == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(ua, ub)
	return float64(dist) / float64(maxlen)
}
