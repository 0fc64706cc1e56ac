// ABOUTME: Entry point for the scaffolder CLI
// ABOUTME: Handles command-line parsing, profiling, and routing into the solve run

// Package main provides the entry point for scaffolder, a genetic
// algorithm / local-search optimizer for genome scaffold contig
// orientation.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"scaffolder/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	configPath := flag.String("config", "", "path to a TOML config file (default: "+"auto-detected)")
	outputPath := flag.String("output", "", "write the resulting orientation vector to this file (default: stdout)")
	debugFlag := flag.Bool("debug", false, "enable debug logging to scaffolder-debug.log")
	verbose := flag.Bool("verbose", false, "print progress lines while solving")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-seeded, non-reproducible)")
	timeLimit := flag.Int("time-limit", 0, "wall-clock time limit in seconds (0 = unbounded)")
	restarts := flag.Int("restarts", 0, "maximum GA restarts (0 = unbounded)")
	threads := flag.Int("threads", runtime.NumCPU(), "worker count for parallel GA phases")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: scaffolder [flags] <links.tsv>")
		fmt.Println("Example: scaffolder --verbose --time-limit 300 links.tsv")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()

		return 1
	}
	linksPath := args[0]

	if *cpuprofile != "" {
		stop := setupCPUProfile(*cpuprofile)
		defer stop()
	}
	if *memprofile != "" {
		defer writeMemoryProfile(*memprofile)
	}

	if *debugFlag {
		if err := SetupDebugLog("scaffolder-debug.log"); err != nil {
			log.Printf("Failed to setup debug log: %v", err)
			return 1
		}
	}

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = config.GetConfigPath()
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		debugf("config load warning: %v", err)
	}

	opts := cfg.ToOptions()
	opts.VerboseOutput = *verbose
	if *seed != 0 {
		opts.Seed = *seed
	}
	if *timeLimit != 0 {
		opts.TimeLimit = *timeLimit
	}
	if *restarts != 0 {
		opts.GARestarts = *restarts
	}
	if *threads != 0 {
		opts.Threads = *threads
	}

	if err := RunCLI(RunOptions{
		LinksPath:  linksPath,
		OutputPath: *outputPath,
		Options:    opts,
	}); err != nil {
		log.Printf("CLI error: %v", err)
		return 1
	}

	return 0
}

func setupCPUProfile(filename string) func() {
	f, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not create CPU profile: %v", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		log.Fatalf("could not start CPU profile: %v", err)
	}
	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close CPU profile: %v", err)
		}
	}
}

func writeMemoryProfile(filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("could not create memory profile: %v", err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close memory profile: %v", err)
		}
	}()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("could not write memory profile: %v", err)
	}
}
