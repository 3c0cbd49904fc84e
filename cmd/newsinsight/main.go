package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/newsinsight/pkg/config"
	"github.com/umputun/newsinsight/pkg/content"
	"github.com/umputun/newsinsight/pkg/domain"
	"github.com/umputun/newsinsight/pkg/enrich"
	"github.com/umputun/newsinsight/pkg/filter"
	"github.com/umputun/newsinsight/pkg/llm"
	"github.com/umputun/newsinsight/pkg/pipeline"
	"github.com/umputun/newsinsight/pkg/provider"
	"github.com/umputun/newsinsight/pkg/scheduler"
	"github.com/umputun/newsinsight/pkg/search"
	"github.com/umputun/newsinsight/pkg/store"
	"github.com/umputun/newsinsight/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

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

	SetupLog(opts.Debug)

	log.Printf("[INFO] starting newsinsight version %s", revision)

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
		log.Printf("[ERROR] server failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the store, filter, providers, pipeline and search service
// together and serves until the context is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// re-init logging with secrets masked once the config is known
	secrets := []string{}
	for _, s := range []string{cfg.LLM.APIKey, cfg.Providers.NewsAPI.Key, cfg.Providers.Guardian.Key} {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	SetupLog(opts.Debug, secrets...)

	st, err := store.New(store.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if e := st.Close(); e != nil {
			log.Printf("[WARN] store close failed: %v", e)
		}
	}()

	if err = st.InitSchema(ctx); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	if err = st.SeedBlacklist(ctx, seedEntries(cfg.Filter.Seed)); err != nil {
		return fmt.Errorf("failed to seed blacklist: %w", err)
	}

	// the LLM stage is optional, everything degrades without it
	var classifier filter.Classifier
	var analyzer enrich.Analyzer
	var explainer search.Explainer
	if cfg.LLM.Model != "" {
		reasoner := llm.NewReasoner(cfg.LLM)
		classifier, analyzer, explainer = reasoner, reasoner, reasoner
		log.Printf("[INFO] llm enabled, model %s", cfg.LLM.Model)
	} else {
		log.Printf("[WARN] llm not configured, candidates will queue for review and articles stay unenriched")
	}

	contentFilter := filter.New(filter.Rules{
		MinWords: cfg.Filter.MinWords,
		MaxWords: cfg.Filter.MaxWords,
		MaxAge:   time.Duration(cfg.Filter.MaxAgeDays) * 24 * time.Hour,
	}, classifier)

	var extractor pipeline.Extractor
	if cfg.Extraction.Enabled {
		extractor = content.NewExtractor(content.Params{
			Timeout:       cfg.Extraction.Timeout,
			UserAgent:     cfg.Extraction.UserAgent,
			MinTextLength: cfg.Extraction.MinTextLength,
		})
		log.Printf("[INFO] full-text extraction enabled")
	}

	pipe := pipeline.New(pipeline.Params{
		Fetcher:     makeProviders(cfg),
		Store:       st,
		Checker:     contentFilter,
		Enricher:    enrich.New(analyzer),
		Extractor:   extractor,
		MinWords:    cfg.Filter.MinWords,
		MaxWorkers:  cfg.Ingest.MaxWorkers,
		FreshWindow: time.Duration(cfg.Filter.MaxAgeDays) * 24 * time.Hour,
	})

	searchSvc := search.New(st, pipe, explainer, cfg.Search)

	sched := scheduler.New(scheduler.Params{
		Store:         st,
		MaxAge:        time.Duration(cfg.Retention.MaxAgeDays) * 24 * time.Hour,
		SweepInterval: cfg.Retention.SweepInterval,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, searchSvc, pipe, st, revision, opts.Debug)
	return srv.Run(ctx)
}

// makeProviders assembles the provider pool from configured sources
func makeProviders(cfg *config.Config) *provider.Multi {
	providers := []provider.Provider{}

	if cfg.Providers.NewsAPI.Key != "" {
		providers = append(providers, provider.NewNewsAPI(provider.NewsAPIParams{
			Key:      cfg.Providers.NewsAPI.Key,
			Endpoint: cfg.Providers.NewsAPI.Endpoint,
			PageSize: cfg.Providers.NewsAPI.PageSize,
			Timeout:  cfg.Providers.Timeout,
		}))
	}
	if cfg.Providers.Guardian.Key != "" {
		providers = append(providers, provider.NewGuardian(provider.GuardianParams{
			Key:      cfg.Providers.Guardian.Key,
			Endpoint: cfg.Providers.Guardian.Endpoint,
			PageSize: cfg.Providers.Guardian.PageSize,
			Timeout:  cfg.Providers.Timeout,
		}))
	}
	if len(cfg.Providers.Feeds) > 0 {
		feeds := make([]provider.FeedSource, 0, len(cfg.Providers.Feeds))
		for _, f := range cfg.Providers.Feeds {
			feeds = append(feeds, provider.FeedSource{Name: f.Name, URL: f.URL})
		}
		providers = append(providers, provider.NewFeeds(feeds, cfg.Providers.Timeout))
	}

	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name())
	}
	log.Printf("[INFO] providers enabled: %v", names)

	return provider.NewMulti(cfg.Providers.Timeout, providers...)
}

// seedEntries converts validated config seeds to blacklist entries
func seedEntries(seeds []config.SeedBlacklist) []domain.BlacklistEntry {
	entries := make([]domain.BlacklistEntry, 0, len(seeds))
	now := time.Now()
	for _, seed := range seeds {
		kind, ok := domain.ParseBlacklistKind(seed.Kind)
		if !ok {
			continue // config validation rejects unknown kinds already
		}
		entries = append(entries, domain.BlacklistEntry{Kind: kind, Value: seed.Value, Reason: seed.Reason, AddedAt: now})
	}
	return entries
}

// SetupLog configures the logger, optional secrets are masked in output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)} // default to discard
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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
