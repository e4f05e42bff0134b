package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		message string
		ok      bool
		cmd     Command
	}{
		{"not addressed", "hello there", false, Command{}},
		{"hotword alone", "!arxiv", true, Command{Kind: CmdHelp}},
		{"hotword case-insensitive", "!ArXiv list", true, Command{Kind: CmdList}},
		{"help", "!arxiv help", true, Command{Kind: CmdHelp}},
		{"unknown subcommand", "!arxiv frobnicate", true, Command{Kind: CmdHelp}},
		{"add", "!arxiv add cs.AI transformers", true,
			Command{Kind: CmdAdd, Category: "cs.AI", Query: "transformers"}},
		{"add multiword query", "!arxiv add 68Q25 circuit complexity lower bounds", true,
			Command{Kind: CmdAdd, Category: "68Q25", Query: "circuit complexity lower bounds"}},
		{"add too few args", "!arxiv add cs.AI", true, Command{Kind: CmdHelp}},
		{"del", "!arxiv del cs.AI transformers", true,
			Command{Kind: CmdDel, Category: "cs.AI", Query: "transformers"}},
		{"del too few args", "!arxiv del", true, Command{Kind: CmdHelp}},
		{"set", "!arxiv set n_query 5", true, Command{Kind: CmdSet, Key: "n_query", Value: "5"}},
		{"set key lowercased", "!arxiv set N_QUERY 5", true, Command{Kind: CmdSet, Key: "n_query", Value: "5"}},
		{"set too many args", "!arxiv set n_query 5 6", true, Command{Kind: CmdHelp}},
		{"set too few args", "!arxiv set n_query", true, Command{Kind: CmdHelp}},
		{"list with noise", "!arxiv list please", true, Command{Kind: CmdList}},
		{"extra whitespace", "!arxiv   add   cs.AI   deep  learning", true,
			Command{Kind: CmdAdd, Category: "cs.AI", Query: "deep learning"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := ParseCommand("!arxiv", tt.message)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.cmd, cmd)
		})
	}
}
