package utils

import (
	"time"
)

var dhaka = time.FixedZone("BST", 6*60*60)

// ConvertDateTimeToHumanReadableFormat renders a unix millisecond timestamp in shop local time.
func ConvertDateTimeToHumanReadableFormat(datetime int64) string {
	t := time.UnixMilli(datetime).In(dhaka)

	return t.Format("02 January 2006, 15:04 BST")
}

// ConvertUnixMilliToISO8601 formats a unix millisecond timestamp as an RFC3339 UTC string.
func ConvertUnixMilliToISO8601(datetime int64) string {
	return time.UnixMilli(datetime).UTC().Format(time.RFC3339)
}
