package timezone

import "time"

// DefaultTimezone usa o relógio local da máquina, como o sistema original.
const DefaultTimezone = "Local"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if tz == "" || tz == DefaultTimezone {
		return time.Local
	}
	if loc, err := time.LoadLocation(tz); err == nil {
		return loc
	}
	return time.Local
}

// Clock devolve uma função de relógio fixa no timezone informado.
func Clock(tz string) func() time.Time {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}
