package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pselab/journal-club-bot/internal/domain"
	"github.com/pselab/journal-club-bot/internal/domain/contract"
	slackcmd "github.com/pselab/journal-club-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

const historyLimit = 10

type SlackHandler struct {
	slackClient    contract.SlackClient
	journalService contract.JournalService
	signingSecret  string
	adminUserID    string
}

func New(slackClient contract.SlackClient, journalService contract.JournalService, signingSecret, adminUserID string) *SlackHandler {
	return &SlackHandler{
		slackClient:    slackClient,
		journalService: journalService,
		signingSecret:  signingSecret,
		adminUserID:    adminUserID,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	// Everything except help is restricted to the configured admin
	if cmd.Type != slackcmd.CmdHelp && slashCmd.UserID != h.adminUserID {
		return h.createErrorResponse(fmt.Sprintf("Sorry <@%s>, you're not authorized to run this command.", slashCmd.UserID))
	}

	switch cmd.Type {
	case slackcmd.CmdSelect:
		return h.handleSelect()
	case slackcmd.CmdAdd:
		return h.handleAddMember(cmd)
	case slackcmd.CmdRemove:
		return h.handleRemoveMember(cmd)
	case slackcmd.CmdMembers:
		return h.handleListMembers()
	case slackcmd.CmdPause:
		return h.handleOptIn(cmd, false)
	case slackcmd.CmdResume:
		return h.handleOptIn(cmd, true)
	case slackcmd.CmdHistory:
		return h.handleHistory()
	case slackcmd.CmdConfig:
		return h.handleConfig(cmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleSelect() *slack.Msg {
	member, err := h.journalService.SelectPresenter(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyRoster) {
			return h.createErrorResponse("No eligible members in the roster. Use `/journal add @user` to add some!")
		}
		return h.createErrorResponse(fmt.Sprintf("Error selecting presenter: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("📢 The next journal club presenter is <@%s>! 🎓", member.SlackUserID),
	}
}

func (h *SlackHandler) handleAddMember(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the user: `/journal add @user [MM-DD]`")
	}

	userID := parseMention(cmd.Args[0])

	birthday := ""
	if len(cmd.Args) > 1 {
		birthday = cmd.Args[1]
	}

	member, err := h.journalService.AddMember(userID, birthday)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMemberExists):
			return h.createErrorResponse(fmt.Sprintf("<@%s> is already in the roster", userID))
		case errors.Is(err, domain.ErrInvalidBirthday):
			return h.createErrorResponse("Invalid birthday. Use MM-DD, ex: `/journal add @user 03-14`")
		default:
			return h.createErrorResponse(fmt.Sprintf("Error adding member: %v", err))
		}
	}

	text := fmt.Sprintf("✅ <@%s> has been added to the roster!", member.SlackUserID)
	if member.Birthday != "" {
		text += fmt.Sprintf(" (birthday %s)", member.Birthday)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleRemoveMember(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the user: `/journal remove @user`")
	}

	userID := parseMention(cmd.Args[0])

	if err := h.journalService.RemoveMember(userID); err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return h.createErrorResponse(fmt.Sprintf("<@%s> is not in the roster", userID))
		}
		return h.createErrorResponse(fmt.Sprintf("Error removing member: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ <@%s> has been removed from the roster.", userID),
	}
}

func (h *SlackHandler) handleOptIn(cmd *slackcmd.Command, optIn bool) *slack.Msg {
	verb := "pause"
	if optIn {
		verb = "resume"
	}

	if len(cmd.Args) == 0 {
		return h.createErrorResponse(fmt.Sprintf("Please mention the user: `/journal %s @user`", verb))
	}

	userID := parseMention(cmd.Args[0])

	if err := h.journalService.SetMemberOptIn(userID, optIn); err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return h.createErrorResponse(fmt.Sprintf("<@%s> is not in the roster", userID))
		}
		return h.createErrorResponse(fmt.Sprintf("Error updating member: %v", err))
	}

	text := fmt.Sprintf("⏸️ <@%s> is now opted out of the rotation.", userID)
	if optIn {
		text = fmt.Sprintf("▶️ <@%s> is back in the rotation.", userID)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleListMembers() *slack.Msg {
	members, err := h.journalService.ListMembers()
	if err != nil {
		return h.createErrorResponse("Error listing members")
	}

	if len(members) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No members in the roster. Use `/journal add @user` to add some.",
		}
	}

	var list strings.Builder
	list.WriteString("*Roster:*\n")
	for i, member := range members {
		list.WriteString(fmt.Sprintf("%d. %s", i+1, member.DisplayName))
		if member.Birthday != "" {
			list.WriteString(fmt.Sprintf(" 🎂 %s", member.Birthday))
		}
		if !member.OptIn {
			list.WriteString(" (opted out)")
		}
		list.WriteString("\n")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleHistory() *slack.Msg {
	presentations, err := h.journalService.ListHistory(historyLimit)
	if err != nil {
		return h.createErrorResponse("Error listing history")
	}

	if len(presentations) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No presentations recorded in the current cycle.",
		}
	}

	var list strings.Builder
	list.WriteString("*Current cycle:*\n")
	for _, p := range presentations {
		list.WriteString(fmt.Sprintf("• %s — %s\n", p.PresentedAt.Format("2006-01-02"), p.DisplayName))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleConfig(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use `/journal config show` or see `/journal help`")
	}

	if cmd.Args[0] == "show" {
		config, err := h.journalService.GetScheduleConfig()
		if err != nil {
			return h.createErrorResponse("Error reading schedule config")
		}

		text := fmt.Sprintf("*Schedule:*\n• Meeting day: %s\n• Reminder: %s at %s\n• Birthday check: %s\n• Timezone: %s",
			domain.WeekdayNames[config.MeetingWeekday],
			domain.WeekdayNames[config.ReminderWeekday],
			config.ReminderTime,
			config.BirthdayTime,
			config.Timezone,
		)

		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         text,
		}
	}

	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Invalid format. See `/journal help` for config usage")
	}

	var err error
	switch cmd.Args[0] {
	case "meeting":
		_, err = h.journalService.SetMeetingDay(cmd.Args[1])
	case "reminder":
		clock := ""
		if len(cmd.Args) > 2 {
			clock = cmd.Args[2]
		}
		_, err = h.journalService.SetReminderSchedule(cmd.Args[1], clock)
	case "birthday":
		_, err = h.journalService.SetBirthdayTime(cmd.Args[1])
	case "timezone":
		_, err = h.journalService.SetTimezone(cmd.Args[1])
	default:
		return h.createErrorResponse(fmt.Sprintf("Unknown config option: %s", cmd.Args[0]))
	}

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidWeekday):
			return h.createErrorResponse("Invalid weekday. Use full names like `thursday`")
		case errors.Is(err, domain.ErrInvalidClock):
			return h.createErrorResponse("Invalid time. Use HH:MM, ex: 23:01")
		case errors.Is(err, domain.ErrInvalidTimezone):
			return h.createErrorResponse("Invalid timezone. Use an IANA name, ex: Europe/Berlin")
		default:
			return h.createErrorResponse(fmt.Sprintf("Error updating config: %v", err))
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Configuration updated: %s = %s", cmd.Args[0], strings.Join(cmd.Args[1:], " ")),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// parseMention extracts the user ID from a Slack mention like <@U123|name>.
func parseMention(mention string) string {
	userID := strings.TrimSpace(mention)
	userID = strings.TrimPrefix(userID, "<@")
	userID = strings.TrimSuffix(userID, ">")
	if idx := strings.Index(userID, "|"); idx >= 0 {
		userID = userID[:idx]
	}
	return userID
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
