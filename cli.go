// ABOUTME: CLI mode implementation for non-interactive scaffold orientation solving
// ABOUTME: Handles progress display, result output, and signal handling

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"scaffolder/solver"
	"scaffolder/store"
)

// RunCLI loads the link data, runs the solver to completion (or until
// interrupted), and prints the resulting orientation.
func RunCLI(opts RunOptions) error {
	ds, err := store.ReadTSV(opts.LinksPath)
	if err != nil {
		return fmt.Errorf("failed to read links: %w", err)
	}
	fmt.Printf("Loaded %d contigs, %d links from %s\n", ds.ContigCount(), ds.LinkCount(), opts.LinksPath)

	if opts.Options.VerboseOutput {
		opts.Options.Logger = newStdoutLogger()
	}

	s := solver.NewGASolver(opts.Options)
	if err := s.Formulate(ds); err != nil {
		return fmt.Errorf("failed to formulate: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		fmt.Println("\nInterrupt received, stopping after the current phase...")
		cancel()
	}()

	start := time.Now()
	fmt.Println("Solving... (press Ctrl+C to stop early)")

	err = s.Solve(ctx)
	elapsed := time.Since(start).Round(time.Millisecond)

	if s.Status() != solver.StatusSuccess {
		return fmt.Errorf("solve failed after %v: %w", elapsed, err)
	}

	fmt.Printf("\nSolved in %v. Objective: %.6f\n", elapsed, s.Objective())

	orientation := s.Orientation()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "contig\torientation"); err != nil {
		log.Printf("Warning: failed to write header: %v", err)
	}
	for i, flipped := range orientation {
		dir := "forward"
		if flipped {
			dir = "reverse"
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\n", i, dir); err != nil {
			log.Printf("Warning: failed to write contig %d: %v", i, err)
		}
	}
	if err := w.Flush(); err != nil {
		log.Printf("Warning: failed to flush output: %v", err)
	}

	if opts.OutputPath != "" {
		if err := writeOrientation(opts.OutputPath, orientation); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Printf("\nWrote orientation vector to: %s\n", opts.OutputPath)
	}

	return nil
}

func writeOrientation(path string, orientation []bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for i, flipped := range orientation {
		bit := 0
		if flipped {
			bit = 1
		}
		if _, err := fmt.Fprintf(f, "%d\t%d\n", i, bit); err != nil {
			return err
		}
	}
	return nil
}
