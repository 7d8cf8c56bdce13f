package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/poiesic/answerit"
	"github.com/poiesic/answerit/core"
)

var procedures = []string{
	"Calibrate pH meter daily using buffer solutions.",
	"Centrifuge tubes must be balanced before spinning.",
	"Store reagent samples at four degrees celsius unless the label says otherwise.",
	"Wear nitrile gloves when handling corrosive reagents.",
	"Record all measurement results in the laboratory logbook before leaving the bench.",
	"Autoclave glassware at 121 degrees celsius for fifteen minutes.",
	"Label every sample tube with date, initials, and experiment number.",
	"Check the fume hood airflow indicator before starting volatile work.",
	"Replace the pH meter electrode storage solution weekly.",
	"Dispose of sharps only in the designated puncture-proof container.",
	"Verify the balance with the reference weight at the start of each shift.",
	"Clean spectrophotometer cuvettes with lens tissue, never paper towels.",
	"Report any chemical spill to the lab supervisor immediately.",
	"Defrost the minus-eighty freezer only during the scheduled maintenance window.",
	"Log centrifuge rotor hours after every run.",
}

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	_ = godotenv.Load()

	dbPath := flag.String("db", "./corpus_db", "Path to BadgerDB corpus directory")
	ask := flag.String("ask", "", "Optional demo question to answer after seeding")
	flag.Parse()

	engine, err := answerit.NewEngine(*dbPath)
	if err != nil {
		panic(err)
	}
	defer engine.Close()

	pipeline, err := engine.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}
	defer pipeline.Close()

	ctx := context.Background()

	records := make([]*core.Record, len(procedures))
	for i, text := range procedures {
		records[i] = &core.Record{Text: text}
	}

	stored, err := pipeline.IngestRecords(ctx, records)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Seeded %d procedures\n", stored)

	question := *ask
	if question == "" && flag.NArg() > 0 {
		question = strings.Join(flag.Args(), " ")
	}
	if question != "" {
		answer, err := engine.Answer(ctx, question, answerit.DefaultK)
		if err != nil {
			panic(err)
		}
		fmt.Println(answer)
	}
}
