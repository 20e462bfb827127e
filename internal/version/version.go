package version

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Заполняются через -ldflags "-X github.com/Namek/battle-tactics/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

// Name is the product name printed in every build string.
const Name = "battle-tactics"

// buildEpoch is day zero of the build counter.
var buildEpoch = time.Date(
	2026, time.January, 5,
	0, 0, 0, 0,
	time.UTC,
)

// VersionInfo describes the build metadata in structured form.
type VersionInfo struct {
	BuildID    int
	BuildDate  string
	Commit     string
	Branch     string
	CI         string
	Calculated bool
	Error      string
}

// CalculateBuildID counts whole days between the epoch and BuildDate.
func CalculateBuildID() (int, error) {
	return BuildIDFor(BuildDate)
}

// BuildIDFor is CalculateBuildID for an explicit YYYY-MM-DD date.
func BuildIDFor(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", date, err)
	}

	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", date)
	}

	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info returns structured version information.
func Info() VersionInfo {
	info := VersionInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
		CI:        BuildCI,
	}

	id, err := CalculateBuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// Fields renders the build metadata for a startup log line.
func (v VersionInfo) Fields() logrus.Fields {
	f := logrus.Fields{
		"app":    Name,
		"commit": coalesce(v.Commit, "unknown"),
		"branch": coalesce(v.Branch, "unknown"),
		"ci":     coalesce(v.CI, "local"),
	}
	if v.Calculated {
		f["build"] = v.BuildID
		f["build_date"] = v.BuildDate
	}
	return f
}

// String returns a human-readable build string.
func String() string {
	info := Info()

	if !info.Calculated {
		return fmt.Sprintf("%s build unknown (%s)", Name, info.Error)
	}

	return fmt.Sprintf(
		"%s build %d (%s) commit[%s] branch[%s] ci[%s]",
		Name,
		info.BuildID,
		info.BuildDate,
		coalesce(info.Commit, "unknown"),
		coalesce(info.Branch, "unknown"),
		coalesce(info.CI, "local"),
	)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
