package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/mbwhitestone/arxivbot/pkg/archive"
	"github.com/mbwhitestone/arxivbot/pkg/arxiv"
	"github.com/mbwhitestone/arxivbot/pkg/bot"
	"github.com/mbwhitestone/arxivbot/pkg/config"
	"github.com/mbwhitestone/arxivbot/pkg/llm"
	"github.com/mbwhitestone/arxivbot/pkg/notify"
	"github.com/mbwhitestone/arxivbot/pkg/scheduler"
	"github.com/mbwhitestone/arxivbot/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string        `short:"c" long:"config" env:"ARXIVBOT_CONFIG" default:"cfg.yml" description:"configuration file"`
	Listen  string        `short:"l" long:"listen" env:"LISTEN" default:":8080" description:"listen address"`
	DB      string        `long:"db" env:"ARXIVBOT_DB" default:"arxivbot.db" description:"announcement archive database file"`
	Key     string        `long:"key" env:"ARXIVBOT_KEY" description:"bot authentication key, overrides the config file"`
	Timeout time.Duration `long:"timeout" env:"TIMEOUT" default:"30s" description:"outbound request timeout"`
	Workers int           `long:"workers" env:"WORKERS" default:"4" description:"max concurrent queries per poll cycle"`

	LLM struct {
		Endpoint string `long:"endpoint" env:"ENDPOINT" description:"OpenAI-compatible endpoint for abstract condensing"`
		APIKey   string `long:"api-key" env:"API_KEY" description:"API key for the condensing endpoint"`
		Model    string `long:"model" env:"MODEL" description:"model used for abstract condensing"`
	} `group:"llm" namespace:"llm" env-namespace:"LLM"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] arxivbot failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires everything together and blocks until the context is canceled
func run(ctx context.Context, opts Opts) error {
	store, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// key comes from the flag/env or from the config file, no key is fatal
	key := opts.Key
	if key == "" {
		key = store.Key()
	}
	if key == "" {
		return fmt.Errorf("no bot key, set ARXIVBOT_KEY or the key field in %s", opts.Config)
	}

	SetupLog(opts.Debug, key)
	log.Printf("[INFO] starting arxivbot version %s", revision)

	cfg := store.Snapshot()
	if err := config.VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		log.Printf("[WARN] schema validation failed: %v", err)
	}

	userAgent := "arxivbot/" + revision
	discord := notify.NewDiscord(key, "", opts.Timeout, userAgent)
	searcher := arxiv.NewClient("", opts.Timeout, userAgent)

	archiveStore, err := archive.New(ctx, "file:"+opts.DB+"?cache=shared&mode=rwc")
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer archiveStore.Close()

	var condenser scheduler.Condenser
	if opts.LLM.Endpoint != "" && opts.LLM.Model != "" {
		condenser = llm.NewCondenser(llm.Config{
			Endpoint:     opts.LLM.Endpoint,
			APIKey:       opts.LLM.APIKey,
			Model:        opts.LLM.Model,
			TargetLength: store.SummaryLength(),
		})
		log.Printf("[INFO] abstract condensing enabled with model %s", opts.LLM.Model)
	}

	dispatcher := bot.NewDispatcher(store, discord)
	sched := scheduler.NewScheduler(scheduler.Params{
		Store:      store,
		Searcher:   searcher,
		Notifier:   discord,
		Condenser:  condenser,
		Archive:    archiveStore,
		MaxWorkers: opts.Workers,
	})
	srv := server.New(server.Params{
		Store:      store,
		Dispatcher: dispatcher,
		Archive:    archiveStore,
		Listen:     opts.Listen,
		Timeout:    opts.Timeout,
		Version:    revision,
		Debug:      opts.Debug,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sched.Run(gctx) })
	g.Go(func() error { return srv.Run(gctx) })
	return g.Wait()
}

// SetupLog configures the logger, hiding the given secrets from the output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
