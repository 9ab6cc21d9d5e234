package service

import (
	"github.com/pselab/journal-club-bot/internal/domain/contract"
)

type Instance struct {
	Journal   *journalService
	Scheduler *scheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, journalChannelID, birthdayChannelID string) *Instance {
	journal := newJournal(dm, slackClient)
	sched := newScheduler(dm, slackClient, journalChannelID, birthdayChannelID)
	journal.SetScheduler(sched)

	return &Instance{
		Journal:   journal,
		Scheduler: sched,
	}
}
