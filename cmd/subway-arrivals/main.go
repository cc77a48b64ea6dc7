package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"mta/subway-arrivals/arrivals"
	"mta/subway-arrivals/config"
	"mta/subway-arrivals/metrics"
	"mta/subway-arrivals/mtaapi"
	"mta/subway-arrivals/nyct"
	"mta/subway-arrivals/server"
)

func main() {
	if os.Getenv("ARRIVALS_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	if os.Getenv("ARRIVALS_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	// Local development keeps the API key in .env; absence is fine.
	_ = godotenv.Load()

	app := &cli.App{
		Name:        "subway-arrivals",
		Description: "Next-train estimates for the reference station, as a CLI or an HTTP service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "",
				Usage: "path to config.yml (defaults to the working directory)",
			},
			&cli.StringFlag{
				Name:  "provider",
				Value: "",
				Usage: "feed provider override: mta or nyct",
			},
		},
		Commands: []*cli.Command{
			fetchCommand(),
			serverCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func loadConfig(c *cli.Context) error {
	var paths []string
	if p := c.String("config"); p != "" {
		paths = append(paths, p)
	}
	if err := config.LoadAppConfig(paths...); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if p := c.String("provider"); p != "" {
		config.Config.Provider = p
	}
	return nil
}

// newProvider builds the configured feed client.
func newProvider(cfg config.AppConfig) (server.Provider, error) {
	switch cfg.Provider {
	case "mta":
		return mtaapi.NewClient(cfg.MTA), nil
	case "nyct":
		return nyct.NewClient(cfg.NYCT), nil
	}
	return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
}

func fetchCommand() *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "fetch arrival estimates once and print them",
		ArgsUsage: "[lines...]",
		Action: func(c *cli.Context) error {
			if err := loadConfig(c); err != nil {
				return err
			}
			cfg := config.Config

			lines := cfg.Lines
			if c.Args().Len() > 0 {
				lines = make([]string, 0, c.Args().Len())
				for _, arg := range c.Args().Slice() {
					lines = append(lines, strings.ToUpper(arg))
				}
			}
			for _, line := range lines {
				if !cfg.IsSupportedLine(line) {
					return fmt.Errorf("line %q not supported. Use: %s", line, strings.Join(cfg.SupportedLines(), ", "))
				}
			}

			provider, err := newProvider(cfg)
			if err != nil {
				return err
			}
			raw, err := provider.Fetch(lines)
			if err != nil {
				return fmt.Errorf("fetch failed: %w", err)
			}

			opts := arrivals.Options{
				MinUsefulMinutes:     cfg.Pipeline.MinUsefulMinutes,
				MergeDistanceMinutes: cfg.Pipeline.MergeDistanceMinutes,
				MaxArrivals:          cfg.Pipeline.MaxArrivals,
			}
			estimates := arrivals.Run(raw, lines, time.Now(), opts)

			for _, est := range estimates {
				if len(est.Uptown) > 0 {
					fmt.Printf("↑ %s %s\n", est.Line, joinMinutes(est.Uptown))
				}
				if len(est.Downtown) > 0 {
					fmt.Printf("↓ %s %s\n", est.Line, joinMinutes(est.Downtown))
				}
			}
			return nil
		},
	}
}

func serverCommand() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "run the arrivals HTTP server",
		Action: func(c *cli.Context) error {
			if err := loadConfig(c); err != nil {
				return err
			}
			cfg := config.Config

			provider, err := newProvider(cfg)
			if err != nil {
				return err
			}

			srv := server.New(cfg, provider, cfg.Provider, metrics.NewCollector())
			srv.Start()
			srv.HandleGracefulShutdown()
			return nil
		},
	}
}

func joinMinutes(minutes []int) string {
	parts := make([]string, 0, len(minutes))
	for _, m := range minutes {
		parts = append(parts, strconv.Itoa(m))
	}
	return strings.Join(parts, ",")
}
