package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meenmo/swapbatch/batch"
	"github.com/meenmo/swapbatch/instrument"
	"github.com/meenmo/swapbatch/portfolio"
)

func main() {
	var (
		portfolioPath = flag.String("portfolio", "", "path to a YAML portfolio file")
		keying        = flag.Int("keying", 2, "keying version (1 or 2)")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	noErr(err)
	log := logger.Named("swapbatch")

	if *portfolioPath == "" {
		log.Fatal("missing -portfolio flag")
	}
	version := batch.KeyingVersion(*keying)

	runID := uuid.NewString()
	log.Info("batching run starting",
		zap.String("run_id", runID),
		zap.String("portfolio", *portfolioPath),
		zap.Stringer("keying", version),
	)

	swaps, err := portfolio.Load(*portfolioPath)
	if err != nil {
		log.Fatal("failed to load portfolio", zap.Error(err))
	}
	log.Info("portfolio loaded", zap.Int("swaps", len(swaps)))

	cfg := batch.DefaultConfig
	batches, err := batch.FromSwaps(swaps, &cfg, version)
	if err != nil {
		log.Fatal("batching failed", zap.Error(err))
	}
	log.Info("batching complete", zap.Int("buckets", len(batches)))

	printReport(batches, version, len(swaps))
}

func printReport(batches map[string]*batch.Batch, version batch.KeyingVersion, total int) {
	hashes := make([]string, 0, len(batches))
	for h := range batches {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)

	fmt.Println("================================================================================")
	fmt.Printf("SWAP BATCHING REPORT (keying %s)\n", version)
	fmt.Println("================================================================================")
	fmt.Printf("Swaps: %d | Buckets: %d\n\n", total, len(batches))

	for i, h := range hashes {
		b := batches[h]
		fmt.Printf("%d. Bucket %s | %d swap(s)\n", i+1, h[:8], b.Size())
		fmt.Printf("   Pay: %s\n", legSummary(b.PayLeg))
		fmt.Printf("   Rec: %s\n", legSummary(b.ReceiveLeg))
		ids := make([]string, 0, len(b.Names))
		for _, n := range b.Names {
			ids = append(ids, n.ID)
		}
		fmt.Printf("   Members: %s\n", strings.Join(ids, ", "))
	}
	fmt.Println("================================================================================")
}

func legSummary(l batch.LegSpecs) string {
	switch l.Type() {
	case instrument.LegFixed:
		return fmt.Sprintf("FIXED %s %s | notionals %v | rates %v",
			l.Fixed.DayCount, l.Fixed.BusinessDayConvention,
			l.Fixed.NotionalAmounts, l.Fixed.FixedRates)
	case instrument.LegFloating:
		return fmt.Sprintf("FLOATING %s %s %s | notionals %v | spreads %v",
			l.Float.RateIndex.Type, l.Float.DayCount, l.Float.BusinessDayConvention,
			l.Float.NotionalAmounts, l.Float.Spreads)
	default:
		return "EMPTY"
	}
}

func noErr(err error) {
	if err != nil {
		panic("failed to initialize something important: " + err.Error())
	}
}
