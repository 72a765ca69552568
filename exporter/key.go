package exporter

import "time"

const keyTimeLayout = "20060102_150405"

// ObjectKey returns prefix + the time now at the given UTC offset as
// YYYYMMDD_HHMMSS + ".csv".
func ObjectKey(prefix string, now time.Time, offset time.Duration) string {
	zone := time.FixedZone("", int(offset/time.Second))
	return prefix + now.In(zone).Format(keyTimeLayout) + ".csv"
}
