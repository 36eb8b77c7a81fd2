package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func GymID(id int64) slog.Attr {
	return slog.Int64("gym_id", id)
}

func Subdomain(key string) slog.Attr {
	return slog.String("subdomain", key)
}

func MembershipID(id int64) slog.Attr {
	return slog.Int64("membership_id", id)
}

func AdminID(id int64) slog.Attr {
	return slog.Int64("admin_id", id)
}

// Duration records d in milliseconds-precision string form under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.String("duration", d.Round(time.Millisecond).String())
}
