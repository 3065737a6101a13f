package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/internal/scheduler"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/internal/server"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/config"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/report"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/store/sqlite"
)

const (
	envDB     = "REDDIT_ANALYTICS_DB"
	envConfig = "REDDIT_ANALYTICS_CONFIG"
	defaultDB = "reddit.db"
)

type options struct {
	envFile  string
	dbPath   string
	config   string
	serve    bool
	addr     string
	schedule string
	timezone string
	format   string
	cors     []string
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if err := godotenv.Load(opts.envFile); err != nil {
		log.Printf("Warning: could not load %s (%v). Using process environment.", opts.envFile, err)
	}
	opts.applyEnv(os.Getenv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := buildEngine(ctx, opts.dbPath, opts.config)
	if err != nil {
		log.Fatalf("build engine: %v", err)
	}
	defer engine.Close()

	if !opts.serve {
		rep, err := engine.Analyze(ctx)
		if err != nil {
			log.Fatalf("analyze: %v", err)
		}
		if err := writeReport(os.Stdout, rep, opts.format); err != nil {
			log.Fatalf("write report: %v", err)
		}
		return
	}

	if err := serve(ctx, engine, opts); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	var cors string

	fs := flag.NewFlagSet("reddit-analytics", flag.ContinueOnError)
	fs.StringVar(&opts.envFile, "env", ".env", "dotenv file to load before reading the environment")
	fs.StringVar(&opts.dbPath, "db", "", "SQLite database path (default $"+envDB+" or "+defaultDB+")")
	fs.StringVar(&opts.config, "config", "", "YAML analysis config (default $"+envConfig+")")
	fs.BoolVar(&opts.serve, "serve", false, "serve reports over HTTP instead of printing once")
	fs.StringVar(&opts.addr, "addr", ":8080", "HTTP listen address")
	fs.StringVar(&opts.schedule, "schedule", "", "cron schedule for re-analysis in serve mode (e.g. \"@every 15m\")")
	fs.StringVar(&opts.timezone, "tz", "UTC", "timezone for -schedule")
	fs.StringVar(&opts.format, "format", "json", "output format when not serving: json or text")
	fs.StringVar(&cors, "cors", "", "comma-separated allowed CORS origins (default *)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.format != "json" && opts.format != "text" {
		return options{}, fmt.Errorf("--format must be json or text, got %q", opts.format)
	}
	if opts.schedule != "" && !opts.serve {
		return options{}, errors.New("--schedule requires --serve")
	}
	for _, o := range strings.Split(cors, ",") {
		if o = strings.TrimSpace(o); o != "" {
			opts.cors = append(opts.cors, o)
		}
	}
	return opts, nil
}

// applyEnv fills paths not given on the command line.
func (o *options) applyEnv(getenv func(string) string) {
	if o.dbPath == "" {
		o.dbPath = getenv(envDB)
	}
	if o.dbPath == "" {
		o.dbPath = defaultDB
	}
	if o.config == "" {
		o.config = getenv(envConfig)
	}
}

func buildEngine(ctx context.Context, dbPath, configPath string) (*analytics.Engine, error) {
	loader := config.Loader{Path: configPath}
	components, err := loader.Load()
	if err != nil {
		return nil, err
	}

	st, err := sqlite.OpenSQLite(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return analytics.New(analytics.Options{
		Store:      st,
		Components: components,
	}), nil
}

func writeReport(w io.Writer, rep report.Report, format string) error {
	if format == "text" {
		return rep.WriteText(w)
	}
	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func serve(ctx context.Context, engine *analytics.Engine, opts options) error {
	srv := server.New(server.Config{
		Addr:         opts.addr,
		CorsOrigins:  opts.cors,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}, engine)

	if _, err := srv.Refresh(ctx); err != nil {
		log.Printf("initial analysis failed: %v", err)
	}

	if opts.schedule != "" {
		sched, err := scheduler.New(opts.timezone)
		if err != nil {
			return err
		}
		err = sched.AddRefreshJob(opts.schedule, func(ctx context.Context) error {
			_, err := srv.Refresh(ctx)
			return err
		})
		if err != nil {
			return err
		}
		sched.Start()
		defer func() { <-sched.Stop().Done() }()
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
