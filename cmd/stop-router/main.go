package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/theoremus-urban-solutions/stop-router/config"
	"github.com/theoremus-urban-solutions/stop-router/formatter"
	"github.com/theoremus-urban-solutions/stop-router/utils"
)

type options struct {
	configPath    string
	feedPath      string
	call          string
	format        string
	from          string
	to            string
	query         string
	at            string
	policy        string
	tripUpdates   string
	serviceAlerts string
	logLevel      string
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("stop-router", flag.ContinueOnError)
	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "config file (default: config.yml, ./configs/config.yml)")
	fs.StringVar(&o.feedPath, "feed", "", "GTFS directory, .zip or URL (overrides config)")
	fs.StringVar(&o.call, "call", "route", "route|search|match|prefix|arrivals|interactive")
	fs.StringVar(&o.format, "format", "text", "text|json|xml")
	fs.StringVar(&o.from, "from", "", "start stop name (route)")
	fs.StringVar(&o.to, "to", "", "end stop name (route)")
	fs.StringVar(&o.query, "query", "", "name prefix (search, prefix) or pattern with '.' wildcards (match)")
	fs.StringVar(&o.at, "time", "", "arrival time HH:MM:SS (arrivals)")
	fs.StringVar(&o.policy, "policy", "", "finalize-on-pop|first-enqueue-wins (overrides config)")
	fs.StringVar(&o.tripUpdates, "tripUpdates", "", "GTFS-RT TripUpdates URL or file (overrides config)")
	fs.StringVar(&o.serviceAlerts, "serviceAlerts", "", "GTFS-RT ServiceAlerts URL or file (overrides config)")
	fs.StringVar(&o.logLevel, "log-level", "", "trace|debug|info|warn|error (overrides config)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(o *options) (*config.AppConfig, error) {
	var (
		cfg *config.AppConfig
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.Load()
		if errors.Is(err, config.ErrNoConfigFile) {
			cfg, err = config.Default(), nil
		}
	}
	if err != nil {
		return nil, err
	}
	if o.feedPath != "" {
		cfg.Feed.Path = o.feedPath
	}
	if o.policy != "" {
		cfg.Routing.Policy = o.policy
	}
	if o.tripUpdates != "" {
		cfg.Realtime.TripUpdatesURL = o.tripUpdates
	}
	if o.serviceAlerts != "" {
		cfg.Realtime.ServiceAlertsURL = o.serviceAlerts
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	utils.InitLogging(cfg.Log.Level, cfg.Log.Console)

	format, err := formatter.ParseFormat(o.format)
	if err != nil {
		return err
	}
	a, err := newApp(ctx, cfg, formatter.NewResponseBuilder(format))
	if err != nil {
		return err
	}

	if o.call == "interactive" {
		return a.interactive(stdin, stdout)
	}
	out, err := a.dispatch(o.call, o)
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
