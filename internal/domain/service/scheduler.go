package service

import (
	"fmt"
	"log"
	"time"

	"github.com/pselab/journal-club-bot/internal/domain"
	"github.com/pselab/journal-club-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

type jobKind int

const (
	jobReminder jobKind = iota
	jobBirthday
)

func (j jobKind) String() string {
	switch j {
	case jobReminder:
		return "reminder"
	case jobBirthday:
		return "birthday"
	default:
		return "unknown"
	}
}

// scheduler owns the single scheduling loop. It computes the next fire
// instant from the persisted schedule config (weekly presenter reminder,
// daily birthday check), waits on a timer and re-arms after firing.
// Reconfiguration invalidates the armed timer through configChanged, so a
// job fires exactly once, at the new time, never at the old one.
// Effective granularity is one minute.
type scheduler struct {
	dm                contract.DataManager
	slackClient       contract.SlackClient
	journalChannelID  string
	birthdayChannelID string
	configChanged     chan struct{}
	stopChan          chan struct{}
	running           bool
}

func newScheduler(dm contract.DataManager, slackClient contract.SlackClient, journalChannelID, birthdayChannelID string) *scheduler {
	return &scheduler{
		dm:                dm,
		slackClient:       slackClient,
		journalChannelID:  journalChannelID,
		birthdayChannelID: birthdayChannelID,
		configChanged:     make(chan struct{}, 1),
		stopChan:          make(chan struct{}),
		running:           false,
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Println("Scheduler starting...")
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) NotifyConfigChange() {
	// Non-blocking send to config change channel
	select {
	case s.configChanged <- struct{}{}:
	default:
		// Channel is full, scheduler will recalculate eventually
	}
}

func (s *scheduler) mainLoop() {
	for {
		nextTime, jobs := s.findNextFire()

		if len(jobs) == 0 {
			// Unusable schedule config - wait 1 hour and check again
			log.Println("No runnable jobs found, waiting 1 hour...")
			timer := time.NewTimer(1 * time.Hour)
			select {
			case <-timer.C:
				continue
			case <-s.configChanged:
				timer.Stop()
				continue
			case <-s.stopChan:
				timer.Stop()
				return
			}
		}

		log.Printf("Next fire at %s for %d job(s)", nextTime.Format("2006-01-02 15:04:05 -0700"), len(jobs))

		waitDuration := time.Until(nextTime)
		if waitDuration <= 0 {
			// Time has already passed, run immediately
			s.runJobs(jobs)
			// Wait 1 minute to prevent re-processing the same minute
			time.Sleep(1 * time.Minute)
			continue
		}

		timer := time.NewTimer(waitDuration)

		select {
		case <-timer.C:
			s.runJobs(jobs)
			// Wait 1 minute to prevent re-processing the same minute
			time.Sleep(1 * time.Minute)

		case <-s.configChanged:
			// Configuration changed, recalculate
			timer.Stop()
			log.Println("Configuration changed, recalculating schedule...")
			continue

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

// findNextFire computes the earliest upcoming fire instant in the reference
// timezone and the job(s) due at that instant.
func (s *scheduler) findNextFire() (time.Time, []jobKind) {
	config, err := s.dm.Schedule().Get()
	if err != nil {
		log.Printf("Error getting schedule config: %v", err)
		return time.Time{}, nil
	}

	loc := domain.Location(config.Timezone)
	now := time.Now()

	var nextTime time.Time
	var jobs []jobKind

	reminderNext, err := domain.NextWeekly(now, config.ReminderWeekday, config.ReminderTime, loc)
	if err != nil {
		log.Printf("Invalid reminder schedule (%d at %s): %v", config.ReminderWeekday, config.ReminderTime, err)
	} else {
		nextTime = reminderNext
		jobs = append(jobs, jobReminder)
	}

	birthdayNext, err := domain.NextDaily(now, config.BirthdayTime, loc)
	if err != nil {
		log.Printf("Invalid birthday check time %s: %v", config.BirthdayTime, err)
	} else if nextTime.IsZero() || birthdayNext.Before(nextTime) {
		nextTime = birthdayNext
		jobs = []jobKind{jobBirthday}
	} else if birthdayNext.Equal(nextTime) {
		jobs = append(jobs, jobBirthday)
	}

	return nextTime, jobs
}

func (s *scheduler) runJobs(jobs []jobKind) {
	for _, job := range jobs {
		// Sends are fire-and-forget: failures are logged and never block the loop
		go func(j jobKind) {
			var err error
			switch j {
			case jobReminder:
				err = s.sendPresenterReminder()
			case jobBirthday:
				err = s.sendBirthdayGreetings()
			}
			if err != nil {
				log.Printf("Failed to run %s job: %v", j, err)
			}
		}(job)
	}
}

// sendPresenterReminder DMs the currently scheduled presenter. Reads of the
// reminder record go through the same database the selection writes to, so a
// concurrent selection is never observed half-written.
func (s *scheduler) sendPresenterReminder() error {
	reminder, err := s.dm.Reminder().Get()
	if err != nil {
		return fmt.Errorf("failed to get reminder: %w", err)
	}

	if reminder == nil {
		log.Println("No upcoming presenter found, skipping reminder")
		return nil
	}

	config, err := s.dm.Schedule().Get()
	if err != nil {
		return fmt.Errorf("failed to get schedule config: %w", err)
	}

	message := fmt.Sprintf("🔔 Reminder: You are presenting at the next journal club on %s. Please share the paper in <#%s> before then!",
		domain.WeekdayNames[config.MeetingWeekday], s.journalChannelID)

	_, _, err = s.slackClient.PostMessage(
		reminder.SlackUserID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	log.Printf("Reminder sent to %s (%s)", reminder.DisplayName, reminder.SlackUserID)
	return nil
}

// sendBirthdayGreetings posts a greeting for every member whose birthday
// month-day matches today in the reference timezone.
func (s *scheduler) sendBirthdayGreetings() error {
	config, err := s.dm.Schedule().Get()
	if err != nil {
		return fmt.Errorf("failed to get schedule config: %w", err)
	}

	members, err := s.dm.Member().GetAll()
	if err != nil {
		return fmt.Errorf("failed to get members: %w", err)
	}

	today := time.Now().In(domain.Location(config.Timezone)).Format("01-02")

	for _, member := range members {
		if member.Birthday != today {
			continue
		}

		message := fmt.Sprintf("🎉 Happy Birthday <@%s>! Wishing you an amazing day! 🎂", member.SlackUserID)

		_, _, err := s.slackClient.PostMessage(
			s.birthdayChannelID,
			slack.MsgOptionText(message, false),
			slack.MsgOptionAsUser(false),
		)
		if err != nil {
			log.Printf("Failed to send birthday message to %s: %v", member.DisplayName, err)
			continue
		}

		log.Printf("Sent birthday message to %s (%s)", member.DisplayName, member.SlackUserID)
	}

	return nil
}
