package sink

import (
	"fmt"
	"time"
)

// DatedFilename builds a "<dir>/<base>_<YYYY-MM-DD>.log" path for at,
// the same naming scheme the log manager this package is modeled on
// used to pick a fresh file per run. It is a helper for callers that
// want one log file per day; File itself has no opinion on naming or
// rotation and must be given a concrete path.
func DatedFilename(dir, base string, at time.Time) string {
	return fmt.Sprintf("%s/%s_%s.log", dir, base, at.Format("2006-01-02"))
}
