package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/mbwhitestone/arxivbot/pkg/arxiv"
	"github.com/mbwhitestone/arxivbot/pkg/config"
	"github.com/mbwhitestone/arxivbot/pkg/notify"
)

//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// helpColor is the fixed color of the help embed
const helpColor = 0xffa500

// projectURL links the help embed back to the sources
const projectURL = "https://github.com/mbwhitestone/arxivbot"

// Notifier delivers replies to the channel a command came from and checks
// channel names against the chat platform
type Notifier interface {
	SendText(ctx context.Context, channel, text string) error
	SendEmbed(ctx context.Context, channel string, e notify.Embed) error
	ResolveChannel(ctx context.Context, name string) error
}

// Dispatcher turns inbound chat messages into configuration mutations.
// Every recognized command produces a reply on the originating channel;
// command failures are reported there and never escalate.
type Dispatcher struct {
	store    *config.Store
	notifier Notifier
}

// NewDispatcher creates a dispatcher bound to the shared configuration store
func NewDispatcher(store *config.Store, notifier Notifier) *Dispatcher {
	return &Dispatcher{store: store, notifier: notifier}
}

// OnMessage handles a single inbound chat message. Messages not starting
// with the hotword are ignored.
func (d *Dispatcher) OnMessage(ctx context.Context, channel, text string) {
	cmd, ok := ParseCommand(d.store.Hotword(), text)
	if !ok {
		return
	}

	lgr.Printf("[INFO] got message %s", Chop(text, 1024))

	switch cmd.Kind {
	case CmdAdd:
		d.handleAdd(ctx, channel, cmd)
	case CmdDel:
		d.handleDel(ctx, channel, cmd)
	case CmdSet:
		d.handleSet(ctx, channel, cmd)
	case CmdList:
		d.handleList(ctx, channel)
	default:
		d.handleHelp(ctx, channel)
	}
}

// handleAdd registers a query, creating its category on first use
func (d *Dispatcher) handleAdd(ctx context.Context, channel string, cmd Command) {
	if !arxiv.IsValidCategory(cmd.Category) {
		d.reply(ctx, channel, fmt.Sprintf("%s is not a valid arXiv category.", cmd.Category))
		return
	}

	created, added, err := d.store.AddSearch(cmd.Category, cmd.Query)
	if err != nil {
		lgr.Printf("[ERROR] failed to save configuration: %v", err)
		d.reply(ctx, channel, "Failed to save the configuration.")
		return
	}

	if created {
		d.reply(ctx, channel, fmt.Sprintf("Added %s to the search list.", cmd.Category))
	}
	if added {
		d.reply(ctx, channel, fmt.Sprintf("Added %s to the search for %s.", cmd.Query, cmd.Category))
		return
	}
	d.reply(ctx, channel, fmt.Sprintf("Query %s for **%s** already known or empty.", cmd.Query, cmd.Category))
}

// handleDel removes a query, dropping the category when it empties
func (d *Dispatcher) handleDel(ctx context.Context, channel string, cmd Command) {
	if !arxiv.IsValidCategory(cmd.Category) || !d.store.HasCategory(cmd.Category) {
		d.reply(ctx, channel, fmt.Sprintf("Category **%s** cannot be in the arXiv search list.", cmd.Category))
		return
	}

	removed, categoryRemoved, err := d.store.RemoveSearch(cmd.Category, cmd.Query)
	if err != nil {
		lgr.Printf("[ERROR] failed to save configuration: %v", err)
		d.reply(ctx, channel, "Failed to save the configuration.")
		return
	}

	if !removed {
		d.reply(ctx, channel, fmt.Sprintf("Query **%s: %s** is not in the search.", cmd.Category, cmd.Query))
		return
	}

	msg := fmt.Sprintf("Query **%s** ", cmd.Query)
	if categoryRemoved {
		msg += fmt.Sprintf("and category **%s** ", cmd.Category)
	}
	msg += "removed from the search list."
	d.reply(ctx, channel, msg)
}

// handleSet validates and applies a configuration parameter change
func (d *Dispatcher) handleSet(ctx context.Context, channel string, cmd Command) {
	// channel names can only be checked against the live platform
	if cmd.Key == "paper_channel" {
		if err := d.notifier.ResolveChannel(ctx, cmd.Value); err != nil {
			lgr.Printf("[WARN] can't resolve channel %s: %v", cmd.Value, err)
			d.reply(ctx, channel, fmt.Sprintf("Invalid option **%s** for **%s**.", cmd.Value, cmd.Key))
			return
		}
	}

	stored, err := d.store.Set(cmd.Key, cmd.Value)
	switch {
	case errors.Is(err, config.ErrUnknownKey):
		d.reply(ctx, channel, fmt.Sprintf("%s is not available for setting %s.", cmd.Key, cmd.Value))
	case errors.Is(err, config.ErrInvalidValue):
		d.reply(ctx, channel, fmt.Sprintf("Invalid option **%s** for **%s**.", cmd.Value, cmd.Key))
	case err != nil:
		lgr.Printf("[ERROR] failed to save configuration: %v", err)
		d.reply(ctx, channel, "Failed to save the configuration.")
	default:
		d.reply(ctx, channel, fmt.Sprintf("Key **%s** is set to value **%s**.", cmd.Key, stored))
	}
}

// handleList replies with the search registry and the known papers
func (d *Dispatcher) handleList(ctx context.Context, channel string) {
	known := d.store.KnownPapers()
	msg := d.renderQueries()
	msg += fmt.Sprintf("**Known papers (%d):**\n> %s", len(known), Chop(formatPaperIDs(known), 1024))
	d.reply(ctx, channel, msg)
}

// handleHelp replies with usage, the registry and the tunable parameters
func (d *Dispatcher) handleHelp(ctx context.Context, channel string) {
	hotword := d.store.Hotword()
	usage := "**Usage:**\n" +
		fmt.Sprintf("```%s add <category:required> <query:required>\n", hotword) +
		fmt.Sprintf("%s del <category:required> <query:required>\n", hotword) +
		fmt.Sprintf("%s set <key:required> <value:required>\n", hotword) +
		fmt.Sprintf("%s list\n", hotword) +
		fmt.Sprintf("%s help```", hotword)

	desc := usage + d.renderQueries() + d.renderParameters()
	emb := notify.Embed{
		Title:       "arXiv bot",
		Description: desc,
		URL:         projectURL,
		Color:       helpColor,
	}
	if err := d.notifier.SendEmbed(ctx, channel, emb); err != nil {
		lgr.Printf("[WARN] failed to send help to %s: %v", channel, err)
	}
}

// renderQueries formats the search registry for display
func (d *Dispatcher) renderQueries() string {
	var b strings.Builder
	b.WriteString("**Search queries:**\n")
	for _, e := range d.store.SearchEntries() {
		fmt.Fprintf(&b, "> %s: [%s]\n", e.Category, strings.Join(e.Queries, ", "))
	}
	return ChopMultiline(b.String(), 1024)
}

// renderParameters formats the non-hidden configuration parameters
func (d *Dispatcher) renderParameters() string {
	var b strings.Builder
	b.WriteString("**Configuration:**\n")
	for _, p := range d.store.Params() {
		fmt.Fprintf(&b, "> *%s:*     %s\n", p.Key, p.Value)
	}
	return b.String()
}

func (d *Dispatcher) reply(ctx context.Context, channel, text string) {
	if err := d.notifier.SendText(ctx, channel, text); err != nil {
		lgr.Printf("[WARN] failed to reply to %s: %v", channel, err)
	}
}
