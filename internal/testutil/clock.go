package testutil

import "time"

// NowAt freezes a service clock at t.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseRFC3339 panics on malformed fixtures.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic("testutil: bad RFC3339 fixture " + v + ": " + err.Error())
	}
	return t
}
