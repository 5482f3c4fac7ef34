// Command spline-wav resamples a WAV file using windowed natural cubic
// spline interpolation.
//
// Each channel is treated as a point sequence (sample index, amplitude).
// Splines are fitted over sliding windows of input samples and evaluated at
// the output grid positions. This is a demonstration of the spline engine on
// real signals, not a bandlimited resampler: no anti-aliasing filter is
// applied, so downsampling aliases.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"
)

func main() {
	var (
		inputPath  = flag.String("input", "", "Input WAV file")
		outputPath = flag.String("output", "", "Output WAV file")
		targetRate = flag.Int("rate", 48000, "Target sample rate in Hz")
		parallel   = flag.Bool("parallel", true, "Process channels concurrently")
		verbose    = flag.Bool("verbose", false, "Print progress information")
	)
	flag.Parse()

	if *inputPath == "" || *outputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	start := time.Now()
	if err := run(*inputPath, *outputPath, *targetRate, *parallel, *verbose); err != nil {
		log.Fatalf("Resampling failed: %v", err)
	}
	if *verbose {
		log.Printf("Done in %v", time.Since(start))
	}
}

func run(inputPath, outputPath string, targetRate int, parallel, verbose bool) error {
	in, err := readWAV(inputPath)
	if err != nil {
		return err
	}

	if verbose {
		log.Printf("Input: %d Hz, %d channels, %d-bit, %d frames",
			in.rate, len(in.channels), in.bitDepth, len(in.channels[0]))
	}

	if targetRate <= 0 {
		return fmt.Errorf("target rate must be positive, got %d", targetRate)
	}

	ratio := float64(targetRate) / float64(in.rate)
	resampled, err := resampleChannels(in.channels, ratio, parallel)
	if err != nil {
		return err
	}

	if verbose {
		log.Printf("Output: %d Hz, %d frames", targetRate, len(resampled[0]))
	}

	return writeWAV(outputPath, resampled, targetRate, in.bitDepth)
}
