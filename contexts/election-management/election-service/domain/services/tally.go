package services

import (
	"fmt"
	"sort"
	"strings"

	"wahlfang/contexts/election-management/election-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/election-service/domain/errors"
)

// WinnerPolicy decides which applications fill the max_winners cutoff.
type WinnerPolicy string

const (
	// WinnerPolicyInsertionOrder elects the first max_winners entries in
	// insertion order, regardless of their votes.
	WinnerPolicyInsertionOrder WinnerPolicy = "insertion_order"
	// WinnerPolicyVoteCount elects by accept votes descending. Ties keep
	// insertion order.
	WinnerPolicyVoteCount WinnerPolicy = "vote_count"
)

func ParseWinnerPolicy(raw string) (WinnerPolicy, error) {
	switch WinnerPolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", WinnerPolicyInsertionOrder:
		return WinnerPolicyInsertionOrder, nil
	case WinnerPolicyVoteCount:
		return WinnerPolicyVoteCount, nil
	default:
		return "", fmt.Errorf("%w: unknown winner policy %q", domainerrors.ErrInvalidInput, raw)
	}
}

// OrderApplications returns a copy of apps in insertion order.
func OrderApplications(apps []entities.Application) []entities.Application {
	ordered := make([]entities.Application, len(apps))
	copy(ordered, apps)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Position == ordered[j].Position {
			return ordered[i].ApplicationID < ordered[j].ApplicationID
		}
		return ordered[i].Position < ordered[j].Position
	})
	return ordered
}

// ElectedOrder returns the ids of the elected applications, best ranked
// first. Without a cutoff nobody is elected.
func ElectedOrder(apps []entities.Application, maxWinners *int, policy WinnerPolicy) []int64 {
	if maxWinners == nil || *maxWinners <= 0 || len(apps) == 0 {
		return []int64{}
	}
	ranked := OrderApplications(apps)
	if policy == WinnerPolicyVoteCount {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].VotesAccept > ranked[j].VotesAccept
		})
	}
	limit := *maxWinners
	if limit > len(ranked) {
		limit = len(ranked)
	}
	elected := make([]int64, 0, limit)
	for _, app := range ranked[:limit] {
		elected = append(elected, app.ApplicationID)
	}
	return elected
}

// Summarize builds the tally of an election. Items always come back in
// insertion order; the policy only decides which of them are marked elected.
func Summarize(apps []entities.Application, maxWinners *int, policy WinnerPolicy) []entities.ApplicationSummary {
	ordered := OrderApplications(apps)
	elected := make(map[int64]struct{})
	for _, id := range ElectedOrder(ordered, maxWinners, policy) {
		elected[id] = struct{}{}
	}

	items := make([]entities.ApplicationSummary, 0, len(ordered))
	for _, app := range ordered {
		_, isElected := elected[app.ApplicationID]
		items = append(items, entities.ApplicationSummary{
			ApplicationID:   app.ApplicationID,
			DisplayName:     app.DisplayName,
			Email:           app.Email,
			VotesAccept:     app.VotesAccept,
			VotesReject:     app.VotesReject,
			VotesAbstention: app.VotesAbstention,
			Elected:         isElected,
		})
	}
	return items
}
