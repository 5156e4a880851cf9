// FILE: chanlog/src/internal/sink/filename.go
package sink

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Resolve derives the log file path for a channel on a given day:
//
//	<dir>/<channel-without-leading-#>_<YYYYMMDD>.log
//
// Exactly one leading '#' is stripped. The result is a pure function of
// (dir, channel, day): exactly one file per (channel, calendar day).
//
// A stripped name that is empty or could escape dir (path separators,
// traversal elements) is rejected.
func Resolve(dir, channel string, day time.Time) (string, error) {
	name := strings.TrimPrefix(channel, "#")

	if name == "" {
		return "", fmt.Errorf("empty channel name: %q", channel)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("unsafe channel name: %q", channel)
	}

	return filepath.Join(dir, name+"_"+day.Format("20060102")+".log"), nil
}
