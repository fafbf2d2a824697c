package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// PeriodFromHz returns the period of freqHz. Zero means "no fixed rate" and
// yields fallback.
func PeriodFromHz(freqHz uint32, fallback time.Duration) time.Duration {
	if freqHz == 0 {
		return fallback
	}
	return time.Second / time.Duration(freqHz)
}
