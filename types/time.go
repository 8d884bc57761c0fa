package types

import "time"

// TimeToMillis converts a time.Time to the millisecond timestamp
// carried in QueryPayload.CreatedTime.
func TimeToMillis(t time.Time) uint64 {
	return uint64(t.UnixMilli())
}

// MillisToTime converts a payload timestamp back to a time.Time (UTC).
func MillisToTime(ms uint64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}
