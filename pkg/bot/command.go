package bot

import "strings"

// Kind selects the subcommand of a parsed message
type Kind int

// recognized subcommands; anything else falls back to CmdHelp
const (
	CmdHelp Kind = iota
	CmdAdd
	CmdDel
	CmdSet
	CmdList
)

// Command is a parsed chat message. Which fields are populated depends on
// the kind: Add/Del carry Category and Query, Set carries Key and Value.
type Command struct {
	Kind     Kind
	Category string
	Query    string
	Key      string
	Value    string
}

// ParseCommand turns a chat message into a command. Returns ok=false when
// the message does not start with the hotword (case-insensitive) and is not
// addressed to the bot at all. Too few arguments for a subcommand degrade
// to help rather than fail.
func ParseCommand(hotword, message string) (cmd Command, ok bool) {
	if !strings.HasPrefix(strings.ToLower(message), hotword) {
		return Command{}, false
	}

	tokens := strings.Fields(message)
	if len(tokens) < 2 {
		return Command{Kind: CmdHelp}, true
	}

	switch strings.ToLower(tokens[1]) {
	case "add":
		if len(tokens) < 4 {
			return Command{Kind: CmdHelp}, true
		}
		return Command{Kind: CmdAdd, Category: tokens[2], Query: strings.Join(tokens[3:], " ")}, true
	case "del":
		if len(tokens) < 4 {
			return Command{Kind: CmdHelp}, true
		}
		return Command{Kind: CmdDel, Category: tokens[2], Query: strings.Join(tokens[3:], " ")}, true
	case "set":
		if len(tokens) != 4 {
			return Command{Kind: CmdHelp}, true
		}
		return Command{Kind: CmdSet, Key: strings.ToLower(tokens[2]), Value: tokens[3]}, true
	case "list":
		return Command{Kind: CmdList}, true
	default:
		return Command{Kind: CmdHelp}, true
	}
}
