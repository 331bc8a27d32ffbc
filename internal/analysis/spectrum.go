package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

const minSamples = 4

var ErrTooFewSamples = errors.New("analysis: too few samples")

// Spectrum is a one-sided magnitude spectrum. Freqs[k] is the centre of bin k
// in cycles per unit of simulated time.
type Spectrum struct {
	Freqs []float64
	Power []float64
}

// PowerSpectrum removes the mean from samples taken every sampleDt, applies a
// Hann window and returns the bins from zero up to the Nyquist frequency.
func PowerSpectrum(samples []float64, sampleDt float64) (*Spectrum, error) {
	n := len(samples)
	if n < minSamples {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrTooFewSamples, n, minSamples)
	}
	if !(sampleDt > 0) || math.IsInf(sampleDt, 0) {
		return nil, fmt.Errorf("analysis: sample interval must be positive, got %g", sampleDt)
	}

	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	mean /= float64(n)

	windowed := make([]float64, n)
	for i, v := range samples {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		windowed[i] = (v - mean) * w
	}
	out := fft.FFTReal(windowed)

	bins := n/2 + 1
	s := &Spectrum{
		Freqs: make([]float64, bins),
		Power: make([]float64, bins),
	}
	for k := 0; k < bins; k++ {
		s.Freqs[k] = float64(k) / (float64(n) * sampleDt)
		s.Power[k] = cmplx.Abs(out[k])
	}
	return s, nil
}

// Dominant returns the strongest bin above zero frequency. It returns zeros
// when the signal has no oscillating component.
func (s *Spectrum) Dominant() (freq, power float64) {
	idx := 0
	for k := 1; k < len(s.Power); k++ {
		if s.Power[k] > power {
			power = s.Power[k]
			idx = k
		}
	}
	if idx == 0 {
		return 0, 0
	}
	return s.Freqs[idx], power
}

// Column copies one column out of a row-major table.
func Column(rows [][]float64, col int) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		if col < 0 || col >= len(row) {
			return nil, fmt.Errorf("analysis: column %d out of range in row %d (%d columns)", col, i, len(row))
		}
		out[i] = row[col]
	}
	return out, nil
}
