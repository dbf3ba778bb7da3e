// file: internals/helpers/score.go
package helper

// ValidScore0to50 — satu-satunya definisi rentang skor berkas & wawancara.
func ValidScore0to50(v float64) bool {
	return v >= 0 && v <= 50
}
