package common

// Set via -ldflags "-X aktis-jira-pages/internal/common.Version=..."
var (
	Version   = "dev"
	Build     = "unknown"
	GitCommit = "unknown"
)

// GetFullVersion returns version, build and commit in one string
func GetFullVersion() string {
	v := Version
	if Build != "unknown" {
		v += "-" + Build
	}
	if GitCommit != "unknown" {
		v += " (" + GitCommit + ")"
	}
	return v
}
