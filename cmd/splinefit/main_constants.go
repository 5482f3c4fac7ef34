package main

// Default command parameters.
const (
	// defaultSampleCount matches the classic 1000-point curve sampling.
	defaultSampleCount = 1000

	// pointFields is the number of CSV fields per input record.
	pointFields = 2

	// outputPrecision is the float format precision for emitted samples.
	outputPrecision = -1 // shortest round-trip representation
)
