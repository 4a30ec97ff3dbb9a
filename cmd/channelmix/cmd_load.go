package main

import (
	"fmt"
	"os"
	"time"

	"channelmix/internal/db/models/postgres/public/model"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load CSV data into the engine's tables",
}

var loadSpendCmd = &cobra.Command{
	Use:   "spend <file.csv>",
	Short: "Load daily channel spend rows (date,channel,spend,revenue)",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoadSpend,
}

var loadConversionsCmd = &cobra.Command{
	Use:   "conversions <file.csv>",
	Short: "Load converting orders with one row per touch (event_id,revenue,occurred_at,channel,kind,touch_occurred_at)",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoadConversions,
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.AddCommand(loadSpendCmd)
	loadCmd.AddCommand(loadConversionsCmd)
}

func runLoadSpend(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	type Row struct {
		Date    string  `csv:"date"`
		Channel string  `csv:"channel"`
		Spend   float64 `csv:"spend"`
		Revenue float64 `csv:"revenue"`
	}
	rows := []Row{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	models := []model.ChannelSpend{}
	for _, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return fmt.Errorf("bad date %q: %w", row.Date, err)
		}
		models = append(models, model.ChannelSpend{
			Date:    date,
			Channel: row.Channel,
			Spend:   row.Spend,
			Revenue: row.Revenue,
		})
	}

	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.Db.Close()

	if err := e.SpendRepository.Add(nil, models); err != nil {
		return err
	}

	fmt.Printf("loaded %d spend rows\n", len(models))
	return nil
}

func runLoadConversions(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	type Row struct {
		EventID         string  `csv:"event_id"`
		Revenue         float64 `csv:"revenue"`
		OccurredAt      string  `csv:"occurred_at"`
		Channel         string  `csv:"channel"`
		Kind            string  `csv:"kind"`
		TouchOccurredAt string  `csv:"touch_occurred_at"`
	}
	rows := []Row{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	type group struct {
		event   model.ConversionEvent
		touches []model.TouchEvent
	}
	groups := map[string]*group{}
	order := []string{}
	for _, row := range rows {
		g, ok := groups[row.EventID]
		if !ok {
			eventID, err := uuid.Parse(row.EventID)
			if err != nil {
				return fmt.Errorf("bad event_id %q: %w", row.EventID, err)
			}
			occurredAt, err := time.Parse(time.RFC3339, row.OccurredAt)
			if err != nil {
				return fmt.Errorf("bad occurred_at %q: %w", row.OccurredAt, err)
			}
			g = &group{event: model.ConversionEvent{
				EventID:    eventID,
				Revenue:    row.Revenue,
				OccurredAt: occurredAt,
			}}
			groups[row.EventID] = g
			order = append(order, row.EventID)
		}

		touchAt, err := time.Parse(time.RFC3339, row.TouchOccurredAt)
		if err != nil {
			return fmt.Errorf("bad touch_occurred_at %q: %w", row.TouchOccurredAt, err)
		}
		g.touches = append(g.touches, model.TouchEvent{
			Channel:    row.Channel,
			Kind:       row.Kind,
			OccurredAt: touchAt,
		})
	}

	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.Db.Close()

	for _, id := range order {
		g := groups[id]
		if err := e.ConversionRepository.Add(nil, g.event, g.touches); err != nil {
			return err
		}
	}

	fmt.Printf("loaded %d conversions\n", len(order))
	return nil
}
