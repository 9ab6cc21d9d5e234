package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdSelect  CommandType = "select"
	CmdAdd     CommandType = "add"
	CmdRemove  CommandType = "remove"
	CmdMembers CommandType = "members"
	CmdPause   CommandType = "pause"
	CmdResume  CommandType = "resume"
	CmdHistory CommandType = "history"
	CmdConfig  CommandType = "config"
	CmdHelp    CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "select", "next":
		cmd.Type = CmdSelect
	case "add":
		cmd.Type = CmdAdd
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "remove", "rm":
		cmd.Type = CmdRemove
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "members", "list", "ls":
		cmd.Type = CmdMembers
	case "pause":
		cmd.Type = CmdPause
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "resume":
		cmd.Type = CmdResume
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "history":
		cmd.Type = CmdHistory
	case "config":
		cmd.Type = CmdConfig
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Rotation:*
• ` + "`/journal select`" + ` - Pick the next presenter at random
• ` + "`/journal history`" + ` - Show who presented in the current cycle

*Manage Members:*
• ` + "`/journal add @user [MM-DD]`" + ` - Add member, optionally with birthday
• ` + "`/journal remove @user`" + ` - Remove member from the roster
• ` + "`/journal pause @user`" + ` - Opt a member out of the rotation
• ` + "`/journal resume @user`" + ` - Opt a member back in
• ` + "`/journal members`" + ` - List all members

*Configuration:*
• ` + "`/journal config show`" + ` - Show current schedule
• ` + "`/journal config meeting WEEKDAY`" + ` - Set the meeting day (ex: monday)
• ` + "`/journal config reminder WEEKDAY [HH:MM]`" + ` - Set the reminder day and time
• ` + "`/journal config birthday HH:MM`" + ` - Set the daily birthday-check time
• ` + "`/journal config timezone NAME`" + ` - Set the reference timezone (ex: Europe/Berlin)`
}
