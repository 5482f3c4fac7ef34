package main

// Windowed fitting parameters.
const (
	// windowSize is the number of input samples per spline fit. Larger
	// windows amortize the solver cost over more output samples.
	windowSize = 32

	// windowMargin is the number of samples on each window edge excluded
	// from evaluation. The natural boundary condition forces the second
	// derivative to zero at window edges, so edge segments are less
	// accurate than interior ones.
	windowMargin = 4
)

// minChannelSamples is the shortest channel the windowed fitter accepts.
const minChannelSamples = windowSize

// pcmFormat is the WAV audio format tag for linear PCM.
const pcmFormat = 1
