package cli

import (
	"github.com/gnomegl/gitcontribs/internal/art"
	"github.com/gnomegl/gitcontribs/internal/utils"
	"github.com/urfave/cli/v2"
)

const helpTemplate = `{{.Name}} - {{.Usage}}

Usage: {{.HelpName}} [options]

Options:
   {{range .VisibleFlags}}{{.}}
   {{end}}`

func NewApp(action cli.ActionFunc) *cli.App {
	cli.AppHelpTemplate = helpTemplate

	return &cli.App{
		Name:    "gitcontribs",
		Usage:   "Visualize your git contributions across local repositories",
		Version: "v" + utils.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Value:   ".",
				Usage:   "Root directory to search for git repositories",
			},
			&cli.IntFlag{
				Name:    "days",
				Aliases: []string{"d"},
				Value:   30,
				Usage:   "Number of trailing days to analyze",
			},
			&cli.StringFlag{
				Name:    "email",
				Aliases: []string{"e"},
				Usage:   "Author email (defaults to git config user.email)",
				EnvVars: []string{"GITCONTRIBS_EMAIL"},
			},
			&cli.StringFlag{
				Name:  "remote",
				Usage: "Clone and analyze a remote repository URL instead of searching --root",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format (text, json, csv)",
			},
		},
		Action: action,
		Before: func(c *cli.Context) error {
			// Logo goes to stderr so json/csv output stays clean.
			if !c.Bool("help") && !c.Bool("version") {
				art.PrintLogo()
			}
			return nil
		},
		Authors: []*cli.Author{
			{Name: "gnomegl"},
		},
	}
}
