// Package epoch wraps the Unix timestamp conversion tool.
package epoch

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Times holds one instant formatted three ways.
type Times struct {
	Readable string `json:"readable"` // "2006-01-02 15:04:05 TZ"
	ISO      string `json:"iso"`      // RFC 3339
	DDMMYYYY string `json:"ddmmyyyy"` // "02/01/2006 15:04:05"
}

// Relative describes the distance between the timestamp and now.
type Relative struct {
	Days    int    `json:"days"`
	Seconds int64  `json:"seconds"`
	Human   string `json:"human"`
}

// Result is the output shape of the epoch tool.
type Result struct {
	Epoch    int64    `json:"epoch"`
	UTC      Times    `json:"utc"`
	Local    Times    `json:"local"`
	Relative Relative `json:"relative"`
}

// Convert parses an epoch timestamp and formats it in UTC, local time
// and relative terms. An empty timestamp means the current time;
// strings of 13 or more digits are treated as milliseconds.
func Convert(timestamp string) (*Result, error) {
	return At(timestamp, time.Now())
}

// At is Convert with an injectable clock.
func At(timestamp string, now time.Time) (*Result, error) {
	var epoch int64
	trimmed := strings.TrimSpace(timestamp)
	if trimmed == "" {
		epoch = now.Unix()
	} else {
		var err error
		epoch, err = parseEpoch(trimmed)
		if err != nil {
			return nil, err
		}
	}

	t := time.Unix(epoch, 0)
	utc := t.UTC()
	local := t.Local()

	seconds := now.Unix() - epoch
	days := int(seconds / 86400)

	return &Result{
		Epoch: epoch,
		UTC: Times{
			Readable: utc.Format("2006-01-02 15:04:05") + " UTC",
			ISO:      utc.Format(time.RFC3339),
			DDMMYYYY: utc.Format("02/01/2006 15:04:05"),
		},
		Local: Times{
			Readable: local.Format("2006-01-02 15:04:05 MST"),
			ISO:      local.Format(time.RFC3339),
			DDMMYYYY: local.Format("02/01/2006 15:04:05"),
		},
		Relative: Relative{
			Days:    days,
			Seconds: seconds,
			Human:   humanize(seconds),
		},
	}, nil
}

func parseEpoch(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid epoch timestamp: %q", s)
	}
	// 13+ digit values are millisecond precision.
	if len(strings.TrimPrefix(s, "-")) >= 13 {
		v /= 1000
	}
	return v, nil
}

// humanize renders the offset as "N <unit> ago" for past instants and
// "N <unit> from now" for future ones.
func humanize(seconds int64) string {
	suffix := "from now"
	if seconds > 0 {
		suffix = "ago"
	}
	abs := seconds
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < 60:
		return fmt.Sprintf("%d seconds %s", abs, suffix)
	case abs < 3600:
		return fmt.Sprintf("%d minutes %s", abs/60, suffix)
	case abs < 86400:
		return fmt.Sprintf("%d hours %s", abs/3600, suffix)
	}
	return fmt.Sprintf("%d days %s", abs/86400, suffix)
}
