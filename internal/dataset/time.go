package dataset

import "time"

// timestampLayouts are tried in order when coercing a string cell to a
// timestamp. The source CSVs use the first layout.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime coerces a cell to a timestamp. Cells that are already
// timestamps pass through; anything unparsable reports ok=false.
func ParseTime(v Value) (time.Time, bool) {
	switch c := v.(type) {
	case time.Time:
		return c, true
	case string:
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, c); err == nil {
				return ts, true
			}
		}
	}
	return time.Time{}, false
}
