// Package update prints a notice when a newer lgc release is published.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/Masterminds/semver/v3"
)

const (
	defaultReleasesAPI = "https://api.github.com/repos/letsgetcoding/lgc/releases"
	userAgent          = "lgc/update-check"
	cacheRelPath       = "lgc/update-check.json"
	requestTimeout     = 3 * time.Second

	goInstallCommand = "go install github.com/letsgetcoding/lgc/cmd/lgc@latest"
)

// Cache records when releases were last checked so the network is hit at
// most once per frequency window.
type Cache struct {
	LastChecked      time.Time `json:"last_checked"`
	LastShownVersion string    `json:"last_shown_version"`
}

// Release is the subset of the GitHub release payload lgc reads.
type Release struct {
	TagName    string `json:"tag_name"`
	HTMLURL    string `json:"html_url"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
}

func shouldCheck(lastChecked, now time.Time, frequency time.Duration) bool {
	if lastChecked.IsZero() {
		return true
	}
	return now.Sub(lastChecked) >= frequency
}

func parseVersion(v string) (*semver.Version, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, errors.New("empty version")
	}
	// semver.NewVersion accepts a leading "v" on its own.
	return semver.NewVersion(v)
}

// isNewerVersion reports whether latest > current.
func isNewerVersion(current, latest string) (bool, error) {
	cv, err := parseVersion(current)
	if err != nil {
		return false, fmt.Errorf("current version: %w", err)
	}
	lv, err := parseVersion(latest)
	if err != nil {
		return false, fmt.Errorf("latest version: %w", err)
	}
	return lv.GreaterThan(cv), nil
}

// latestStable returns the first release that is neither a draft nor a
// prerelease. GitHub lists releases newest first.
func latestStable(releases []Release) (Release, bool) {
	for _, r := range releases {
		if r.Draft || r.Prerelease || r.TagName == "" {
			continue
		}
		return r, true
	}
	return Release{}, false
}

func fetchLatest(ctx context.Context, client *http.Client, apiURL string) (Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return Release{}, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Release{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Release{}, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var releases []Release
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return Release{}, err
	}
	r, ok := latestStable(releases)
	if !ok {
		return Release{}, errors.New("no stable releases found")
	}
	return r, nil
}

func printUpgradeMessage(w io.Writer, current, latest, url string) {
	pterm.Fprintln(w)
	pterm.Fprintln(w, pterm.Info.Sprintf("A new release of lgc is available: %s → %s",
		strings.TrimPrefix(current, "v"), strings.TrimPrefix(latest, "v")))
	if url != "" {
		pterm.Fprintln(w, pterm.Info.Sprintf("Release notes: %s", url))
	}
	pterm.Fprintln(w, pterm.Info.Sprintf("To upgrade, run: %s", suggestUpgradeCommand()))
}

// Checker holds the collaborators of an update check. The zero value checks
// GitHub with http.DefaultClient and prints to stderr.
type Checker struct {
	Client    *http.Client
	URL       string
	CachePath string
	Out       io.Writer
	Now       func() time.Time
}

func (c Checker) withDefaults() Checker {
	if c.Client == nil {
		c.Client = http.DefaultClient
	}
	if c.URL == "" {
		c.URL = os.Getenv("LGC_RELEASES_URL")
	}
	if c.URL == "" {
		c.URL = defaultReleasesAPI
	}
	if c.CachePath == "" {
		c.CachePath = filepath.Join(xdgCacheDir(), cacheRelPath)
	}
	if c.Out == nil {
		c.Out = os.Stderr
	}
	if c.Now == nil {
		c.Now = func() time.Time { return time.Now().UTC() }
	}
	return c
}

// Check fetches the latest release when the cache allows it and prints an
// upgrade notice if it is newer than currentVersion. It reports whether the
// notice was printed. Failures are recorded in the cache and otherwise ignored.
func (c Checker) Check(ctx context.Context, currentVersion string, frequency time.Duration) bool {
	c = c.withDefaults()

	if _, err := parseVersion(currentVersion); err != nil {
		return false
	}

	cache, _ := loadCache(c.CachePath)
	now := c.Now()
	if !shouldCheck(cache.LastChecked, now, frequency) {
		return false
	}
	cache.LastChecked = now
	defer func() { _ = saveCache(c.CachePath, cache) }()

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	latest, err := fetchLatest(ctx, c.Client, c.URL)
	if err != nil {
		return false
	}
	newer, err := isNewerVersion(currentVersion, latest.TagName)
	if err != nil || !newer {
		return false
	}

	printUpgradeMessage(c.Out, currentVersion, latest.TagName, latest.HTMLURL)
	cache.LastShownVersion = latest.TagName
	return true
}

// MaybeShowMessage runs a default Checker unless disabled through
// LGC_NO_UPDATE_CHECK=1. LGC_UPDATE_CHECK_FREQUENCY overrides frequency.
func MaybeShowMessage(ctx context.Context, currentVersion string, frequency time.Duration) {
	defer func() { _ = recover() }()

	if os.Getenv("LGC_NO_UPDATE_CHECK") == "1" {
		return
	}
	if d, err := time.ParseDuration(os.Getenv("LGC_UPDATE_CHECK_FREQUENCY")); err == nil && d > 0 {
		frequency = d
	}
	Checker{}.Check(ctx, currentVersion, frequency)
}

func xdgCacheDir() string {
	if d := os.Getenv("XDG_CACHE_HOME"); d != "" {
		return d
	}
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".cache")
	}
	return "."
}

// loadCache returns an empty cache when path does not exist.
func loadCache(path string) (Cache, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Cache{}, nil
		}
		return Cache{}, err
	}
	var c Cache
	if err := json.Unmarshal(b, &c); err != nil {
		return Cache{}, err
	}
	return c, nil
}

func saveCache(path string, c Cache) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// suggestUpgradeCommand guesses how lgc was installed from the location of
// the running binary.
func suggestUpgradeCommand() string {
	exe, err := os.Executable()
	if err != nil {
		return goInstallCommand
	}
	if real, err := filepath.EvalSymlinks(exe); err == nil {
		exe = real
	}
	p := strings.ToLower(filepath.ToSlash(exe))

	if strings.Contains(p, "homebrew") || strings.Contains(p, "/cellar/") {
		return "brew upgrade lgc"
	}
	if which, err := exec.LookPath("go"); err == nil && which != "" {
		return goInstallCommand
	}
	return "download the latest release from https://github.com/letsgetcoding/lgc/releases"
}
