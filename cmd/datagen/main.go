package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"opsrecon/cmd/datagen/engine"
)

func main() {
	outDir := flag.String("out", "./.data", "Output directory for dataset files")
	scheduled := flag.Int("scheduled", 120, "Number of back-office records to generate")
	technical := flag.Int("technical", 200, "Number of support records to generate")
	noise := flag.Float64("noise", 0.15, "Share of malformed/irrelevant records")
	seed := flag.Int64("seed", 0, "Random seed (0 = current time)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cfg := engine.GeneratorConfig{
		Scheduled: *scheduled,
		Technical: *technical,
		Noise:     *noise,
		Seed:      *seed,
		Now:       time.Now(),
	}

	fmt.Printf("Generating %d back-office and %d support records (noise %.0f%%) to %s...\n",
		cfg.Scheduled, cfg.Technical, cfg.Noise*100, *outDir)

	backoffice, support := engine.Generate(cfg)

	if err := engine.Save(*outDir, "backoffice", backoffice); err != nil {
		fmt.Printf("Failed to save back-office dataset: %v\n", err)
		os.Exit(1)
	}
	if err := engine.Save(*outDir, "support", support); err != nil {
		fmt.Printf("Failed to save support dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
