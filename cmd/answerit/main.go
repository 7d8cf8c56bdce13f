// Copyright 2025 Poiesic Systems
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
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/poiesic/answerit"
	"github.com/poiesic/answerit/config"
	"github.com/poiesic/answerit/generation"
	"github.com/poiesic/answerit/generation/llm"
	"github.com/poiesic/answerit/ingestion"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "answerit",
		Usage: "Retrieval-then-generation answering over a fixed text corpus",
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
				Name:   "seed",
				Usage:  "Ingest corpus records from a file or stdin",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB corpus directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "corpus",
						Usage: "Corpus file, one record per line, optional id<TAB>text form (stdin when omitted)",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to store per transaction",
						Value: 100,
					},
				},
			},
			{
				Name:   "ask",
				Usage:  "Answer a question from the corpus",
				Action: askCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB corpus directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "k",
						Aliases: []string{"n"},
						Usage:   "Number of records to retrieve (overrides the engine default)",
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to YAML config file",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Print retrieval diagnostics",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Show corpus statistics",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB corpus directory",
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

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, err := answerit.NewEngine(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open corpus store: %w", err)
	}
	defer engine.Close()

	pipeline, err := engine.NewIngestionPipeline(ingestion.WithBatchSize(c.Int("batch-size")))
	if err != nil {
		return err
	}
	defer pipeline.Close()

	source := os.Stdin
	if path := c.String("corpus"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open corpus file: %w", err)
		}
		defer f.Close()
		source = f
	}

	stored, err := pipeline.IngestReader(ctx, source)
	if err != nil {
		return fmt.Errorf("ingestion failed after %d records: %w", stored, err)
	}

	fmt.Printf("Stored %d records\n", stored)
	return nil
}

func askCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("a question is required, e.g.: answerit ask --db ./corpus_db how do I calibrate the pH meter")
	}

	opts, err := engineOptions(c)
	if err != nil {
		return err
	}

	engine, err := answerit.NewEngine(c.String("db"), opts...)
	if err != nil {
		return fmt.Errorf("failed to open corpus store: %w", err)
	}
	defer engine.Close()

	var monitor *printingMonitor
	if c.Bool("verbose") {
		monitor = &printingMonitor{}
	}

	answer, err := engine.AnswerWithMonitor(ctx, query, c.Int("k"), monitorOrNil(monitor))
	if err != nil {
		return err
	}

	fmt.Println(answer)
	return nil
}

func statsCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, err := answerit.NewEngine(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open corpus store: %w", err)
	}
	defer engine.Close()

	count, err := engine.CorpusRepository().CountRecords(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Corpus records: %d\n", count)
	return nil
}

// engineOptions assembles engine options from the optional config file.
func engineOptions(c *cli.Context) ([]answerit.EngineOption, error) {
	path := c.String("config")
	if path == "" {
		return nil, nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	var opts []answerit.EngineOption
	opts = append(opts, answerit.WithDefaultK(cfg.TopK))

	switch cfg.Generator.Type {
	case "llm":
		genOpts := []llm.ConfigOption{
			llm.WithHost(cfg.Generator.LLM.Host),
			llm.WithModel(cfg.Generator.LLM.Model),
			llm.WithTokenEnv(cfg.Generator.LLM.TokenEnv),
			llm.WithTemperature(cfg.Generator.LLM.Temperature),
		}
		if cfg.FallbackMessage != "" {
			genOpts = append(genOpts, llm.WithFallback(cfg.FallbackMessage))
		}
		generator, err := llm.NewGenerator(llm.NewConfig(genOpts...))
		if err != nil {
			return nil, err
		}
		opts = append(opts, answerit.WithGenerator(generator))
		if cfg.Generator.LLM.TimeoutSecs > 0 {
			opts = append(opts, answerit.WithGenerationTimeout(
				time.Duration(cfg.Generator.LLM.TimeoutSecs)*time.Second))
		}
	default:
		var composerOpts []generation.ComposerOption
		if cfg.FallbackMessage != "" {
			composerOpts = append(composerOpts, generation.WithFallbackMessage(cfg.FallbackMessage))
		}
		opts = append(opts, answerit.WithGenerator(generation.NewComposer(composerOpts...)))
	}

	return opts, nil
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
