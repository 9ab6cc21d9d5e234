package domain

import (
	"math/rand/v2"

	"github.com/pselab/journal-club-bot/internal/domain/entity"
)

// SelectNext picks the next presenter uniformly at random from the roster
// members that have not yet presented in the current cycle. When every roster
// member is in presented the cycle is over: reset reports true and the pick is
// made from the full roster again. The caller owns persistence: clear the
// recorded history first when reset is true, then record the pick.
//
// The roster must already be filtered to opted-in members. Presented IDs that
// no longer belong to any roster member (removed or opted-out people) never
// block a pick; the cycle ends only when no roster member is left unpresented.
func SelectNext(roster []*entity.Member, presented map[string]bool) (pick *entity.Member, reset bool, err error) {
	if len(roster) == 0 {
		return nil, false, ErrEmptyRoster
	}

	remaining := make([]*entity.Member, 0, len(roster))
	for _, m := range roster {
		if !presented[m.SlackUserID] {
			remaining = append(remaining, m)
		}
	}

	if len(remaining) == 0 {
		reset = true
		remaining = roster
	}

	return remaining[rand.IntN(len(remaining))], reset, nil
}
