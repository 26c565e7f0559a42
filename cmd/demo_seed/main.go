// Command demo_seed prints a generated demo dataset as JSON, so a dashboard
// state can be reproduced from its seed.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"trustshield/internal/models"
	"trustshield/internal/services/generator"
	"trustshield/internal/services/stats"
)

type dataset struct {
	Seed         int64                 `json:"seed"`
	Transactions []models.Transaction  `json:"transactions"`
	DailyStats   []models.DailyStat    `json:"dailyStats"`
	Stats        models.AggregateStats `json:"stats"`
}

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 uses the current time)")
	count := flag.Int("count", 50, "number of transactions")
	days := flag.Int("days", 30, "days of chart history")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	gen := generator.New(rand.New(rand.NewSource(*seed)), nil)
	txns := gen.GenerateTransactions(*count)
	out := dataset{
		Seed:         *seed,
		Transactions: txns,
		DailyStats:   gen.GenerateDailyStats(*days),
		Stats:        stats.Initialize(txns),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to write dataset: %v", err)
	}
}
