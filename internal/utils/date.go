package utils

import "time"

// The shop operates on Recife local time (UTC-3, no DST). "Today" windows and
// report buckets are computed against this zone, not the server's.
var recifeZone = time.FixedZone("America/Recife", -3*60*60)

// RecifeZone returns the shop's timezone, for parsing shop-local wire dates.
func RecifeZone() *time.Location {
	return recifeZone
}

// RecifeNow returns the current instant in the shop's timezone.
func RecifeNow() time.Time {
	return time.Now().In(recifeZone)
}

// RecifeDate returns the shop-local calendar date of t as YYYY-MM-DD.
func RecifeDate(t time.Time) string {
	return t.In(recifeZone).Format("2006-01-02")
}

// ToRecife converts t into the shop's timezone.
func ToRecife(t time.Time) time.Time {
	return t.In(recifeZone)
}

// RecifeDayBounds returns the [start, end) UTC instants of the shop-local
// calendar day containing t.
func RecifeDayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(recifeZone)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, recifeZone)
	return start.UTC(), start.Add(24 * time.Hour).UTC()
}
