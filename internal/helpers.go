package internal

import "time"

const (
	formatYYYYMMDD = "2006-01-02"
)

func Format(date time.Time) string {
	return date.Format(formatYYYYMMDD)
}
