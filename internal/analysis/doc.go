// Package analysis inspects recorded runs.
//
// [PowerSpectrum] turns one body coordinate sampled over time into a
// magnitude spectrum; the dominant bin is the body's orbital frequency:
//
//	x, _ := analysis.Column(rows, body*components)
//	s, err := analysis.PowerSpectrum(x, meta.Dt*float64(meta.Sample))
//	freq, _ := s.Dominant()
package analysis
