// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/sermonsearch"
	"github.com/poiesic/sermonsearch/config"
	"github.com/poiesic/sermonsearch/internal/server"
	"github.com/poiesic/sermonsearch/storage/badger"
)

func main() {
	app := &cli.App{
		Name:  "sermonsearch",
		Usage: "Conversational search assistant for a sermon catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP chat API",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "HTTP listen address",
					},
					&cli.StringFlag{
						Name:  "catalog-url",
						Usage: "CSV export URL of the sermon catalog",
					},
					&cli.StringFlag{
						Name:    "data-dir",
						Aliases: []string{"d"},
						Usage:   "Directory for the catalog snapshot database",
					},
				},
			},
			{
				Name:   "chat",
				Usage:  "Interactive chat session on the terminal",
				Action: chatCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "catalog-url",
						Usage: "CSV export URL of the sermon catalog",
					},
					&cli.StringFlag{
						Name:    "data-dir",
						Aliases: []string{"d"},
						Usage:   "Directory for the catalog snapshot database",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Run a single query and print the results",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "catalog-url",
						Usage: "CSV export URL of the sermon catalog",
					},
					&cli.StringFlag{
						Name:    "data-dir",
						Aliases: []string{"d"},
						Usage:   "Directory for the catalog snapshot database",
					},
				},
			},
			{
				Name:   "snapshot",
				Usage:  "Inspect the persisted catalog snapshot",
				Action: snapshotCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data-dir",
						Aliases:  []string{"d"},
						Usage:    "Directory for the catalog snapshot database",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig layers the file/env configuration and applies CLI flag
// overrides on top.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if c.IsSet("addr") {
		cfg.Addr = c.String("addr")
	}
	if c.IsSet("catalog-url") {
		cfg.CatalogURL = c.String("catalog-url")
	}
	if c.IsSet("data-dir") {
		cfg.DataDir = c.String("data-dir")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func serveCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	svc, err := sermonsearch.NewService(cfg)
	if err != nil {
		return fmt.Errorf("failed to build service: %w", err)
	}
	defer svc.Close()

	srv, err := server.New(svc.Assistant(), svc.Sessions(),
		server.WithSessionTTL(cfg.SessionTTL))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Start(ctx, cfg.Addr)
}

func chatCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	svc, err := sermonsearch.NewService(cfg)
	if err != nil {
		return fmt.Errorf("failed to build service: %w", err)
	}
	defer svc.Close()

	ctx := context.Background()
	sess := svc.Sessions().EnsureSession("", cfg.SessionTTL)
	assistant := svc.Assistant()

	fmt.Println("Ask about sermons by topic, speaker, or date.")
	fmt.Println("Commands: \"more\" for the next page, \"clear\" to reset, \"exit\" to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "exit", "quit":
			return nil
		case "clear":
			assistant.Clear(sess)
			fmt.Println("Conversation cleared.")
			continue
		case "more":
			reply, err := assistant.LoadMore(ctx, sess)
			if err != nil {
				return err
			}
			fmt.Println(reply.Text)
			continue
		}

		reply, err := assistant.HandleQuery(ctx, sess, line)
		if err != nil {
			return err
		}
		fmt.Println(reply.Text)
	}
	return scanner.Err()
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a query argument is required")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	svc, err := sermonsearch.NewService(cfg)
	if err != nil {
		return fmt.Errorf("failed to build service: %w", err)
	}
	defer svc.Close()

	sess := svc.Sessions().EnsureSession("", cfg.SessionTTL)
	reply, err := svc.Assistant().HandleQuery(context.Background(), sess, query)
	if err != nil {
		return err
	}
	fmt.Println(reply.Text)
	return nil
}

func snapshotCommand(c *cli.Context) error {
	backend, err := badger.OpenBackend(c.String("data-dir"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	store, err := badger.NewSnapshotStore(backend)
	if err != nil {
		return err
	}

	records, takenAt, err := store.LoadSnapshot(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Snapshot taken at %s with %d records\n",
		takenAt.Format("2006-01-02 15:04:05"), len(records))
	for _, rec := range records {
		date := "N/A"
		if rec.HasDate() {
			date = rec.Date.Format("2006-01-02")
		}
		fmt.Printf("  %s | %s | %s\n", rec.Title, rec.Speaker, date)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
