package cmd

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appBuilt   = "unknown"

	checkOnly bool
)

// SetVersion records build information injected at link time
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuilt = buildTime
	rootCmd.Version = version
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	Args:              cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "ocmovies %s (built %s, %s/%s)\n", appVersion, appBuilt, runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update ocmovies to the latest release",
	Long: `Check the configured release repository for a newer version and replace
the running binary with it.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update is available")
}

// errDevBuild is returned when updating a binary without a release version
var errDevBuild = errors.New("development builds cannot be updated")

// currentVersion parses the running version, tolerating a leading v
func currentVersion() (semver.Version, error) {
	v, err := semver.ParseTolerant(appVersion)
	if err != nil {
		return semver.Version{}, fmt.Errorf("%w: version %q", errDevBuild, appVersion)
	}
	return v, nil
}

// isNewer reports whether latest is a newer release than current
func isNewer(current semver.Version, latest string) (bool, error) {
	v, err := semver.ParseTolerant(latest)
	if err != nil {
		return false, fmt.Errorf("invalid release version %q: %w", latest, err)
	}
	return v.GT(current), nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	current, err := currentVersion()
	if err != nil {
		return err
	}

	logger.Info().
		Str("repository", cfg.Update.Repository).
		Str("current", current.String()).
		Msg("Checking for updates")

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(cfg.Update.Repository))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s/%s in %s", runtime.GOOS, runtime.GOARCH, cfg.Update.Repository)
	}

	newer, err := isNewer(current, latest.Version())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !newer {
		fmt.Fprintf(out, "ocmovies %s is up to date\n", current)
		return nil
	}

	if checkOnly {
		fmt.Fprintf(out, "ocmovies %s is available (running %s)\n", latest.Version(), current)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	logger.Info().Str("version", latest.Version()).Msg("Updated")
	fmt.Fprintf(out, "Updated ocmovies to %s\n", latest.Version())
	return nil
}
