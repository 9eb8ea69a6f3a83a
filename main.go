package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	appcli "github.com/gnomegl/gitcontribs/internal/cli"
	"github.com/gnomegl/gitcontribs/internal/config"
	"github.com/gnomegl/gitcontribs/internal/discover"
	"github.com/gnomegl/gitcontribs/internal/display"
	"github.com/gnomegl/gitcontribs/internal/gitsource"
	"github.com/gnomegl/gitcontribs/internal/models"
	"github.com/gnomegl/gitcontribs/internal/stats"
	"github.com/gnomegl/gitcontribs/internal/utils"
	gh "github.com/google/go-github/v57/github"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
)

var (
	repoOwner = "gnomegl"
	repoName  = "gitcontribs"
)

func checkLatestVersion(ctx context.Context, client *gh.Client) {
	release, _, err := client.Repositories.GetLatestRelease(ctx, repoOwner, repoName)
	if err != nil {
		return // Silently fail version check
	}

	latestVersion := strings.TrimPrefix(release.GetTagName(), "v")
	if latestVersion != utils.GetVersion() {
		color.Yellow("A new version of gitcontribs is available: %s (you're running %s)",
			latestVersion, utils.GetVersion())
		color.Yellow("To update: go install github.com/%s/%s@latest", repoOwner, repoName)
		fmt.Println()
	}
}

func runApp(c *cli.Context) error {
	cfg, err := config.ParseConfig(c)
	if err != nil {
		return err
	}

	checkLatestVersion(context.Background(), gh.NewClient(nil))

	userName, userEmail := gitsource.Identity()
	if cfg.Email != "" {
		userEmail = cfg.Email
	}

	if cfg.Format == "text" {
		color.Blue("Analyzing contributions for: %s <%s>", userName, userEmail)
	}

	var repos []string
	if cfg.Remote != "" {
		if cfg.Format == "text" {
			color.Blue("Cloning remote repository: %s", cfg.Remote)
		}
		dir, cleanup, err := gitsource.CloneRemote(cfg.Remote, os.Stderr)
		if err != nil {
			return err
		}
		defer cleanup()
		repos = []string{dir}
	} else {
		repos, err = discover.Repos(cfg.Root)
		if err != nil {
			return err
		}
	}

	if len(repos) == 0 {
		color.Yellow("No git repositories found under %s", cfg.Root)
		return nil
	}

	report := &display.Report{
		UserName:  userName,
		UserEmail: userEmail,
		Days:      cfg.Days,
		Repos:     make([]models.RepoResult, 0, len(repos)),
	}

	bar := progressbar.NewOptions(len(repos),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("Scanning repositories"),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
	)

	// One repository at a time: totals and ordering don't depend on
	// interleaving, and local log walks are fast.
	for _, repoPath := range repos {
		commits, err := gitsource.Commits(repoPath, cfg.Days, userEmail)
		if err != nil {
			// Diagnostics go to stderr; a broken repo yields zero
			// commits instead of failing the run.
			fmt.Fprintln(color.Error, color.RedString("Skipping %s: %v", repoPath, err))
			commits = nil
		}
		report.Commits = append(report.Commits, commits...)
		report.Repos = append(report.Repos, models.RepoResult{
			Path:        repoPath,
			CommitCount: len(commits),
		})
		bar.Add(1)
	}

	report.Stats = stats.Compute(report.Commits)

	switch cfg.Format {
	case "json":
		return display.JSON(os.Stdout, report)
	case "csv":
		return display.CSV(os.Stdout, report)
	default:
		display.Text(os.Stdout, report)
		return nil
	}
}

func main() {
	// Configure logger to only show the message
	log.SetFlags(0)

	app := appcli.NewApp(runApp)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
