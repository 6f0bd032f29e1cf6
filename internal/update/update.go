// Package update checks GitHub releases for a newer build.
package update

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// ReleasesURL is the GitHub API endpoint for the latest release
// (a var so tests can point it at a local server).
var ReleasesURL = "https://api.github.com/repos/salmonumbrella/mailcli/releases/latest"

// checkTimeout bounds the whole release lookup.
const checkTimeout = 5 * time.Second

type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Result describes the outcome of a release check.
type Result struct {
	CurrentVersion string
	LatestVersion  string
	URL            string
	Available      bool
}

// Check looks up the latest release and compares it to the running
// version. It returns nil for dev builds and on any failure; the
// check is best-effort and must not break the CLI.
func Check(ctx context.Context, currentVersion string) *Result {
	if currentVersion == "dev" || currentVersion == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReleasesURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil
	}

	current := withV(currentVersion)
	latest := withV(rel.TagName)

	result := &Result{
		CurrentVersion: currentVersion,
		LatestVersion:  strings.TrimPrefix(rel.TagName, "v"),
		URL:            rel.HTMLURL,
	}
	if semver.IsValid(current) && semver.IsValid(latest) {
		result.Available = semver.Compare(latest, current) > 0
	}
	return result
}

func withV(v string) string {
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
