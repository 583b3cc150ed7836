// Command suttadown prints a dhammatalks.org sutta as Markdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/suttadown/suttadown"
	"github.com/suttadown/suttadown/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	URL string `arg:"" optional:"" help:"Sutta page to convert. A random sutta is fetched when omitted."`

	File      string        `short:"f" type:"existingfile" help:"Convert a local HTML file instead of fetching. The URL argument becomes the title link."`
	Output    string        `short:"o" type:"path" help:"Write Markdown to this file instead of stdout."`
	Title     bool          `help:"Print the title on the first line."`
	BaseURL   string        `name:"base-url" env:"SUTTADOWN_BASE_URL" default:"${base_url}" help:"Base URL for relative links."`
	RandomURL string        `name:"random-url" env:"SUTTADOWN_RANDOM_URL" default:"${random_url}" help:"Endpoint that redirects to a random sutta."`
	Timeout   time.Duration `default:"30s" help:"HTTP timeout."`

	LogLevel  string `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Log level (${enum})."`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" help:"Log format (${enum})."`

	Version kong.VersionFlag `help:"Print version information."`
}

func (c *CLI) page(ctx context.Context) (*suttadown.Page, error) {
	if c.File != "" {
		if c.URL == "" {
			return nil, errors.New("--file needs the page URL argument for the title link")
		}
		b, err := os.ReadFile(c.File)
		if err != nil {
			return nil, err
		}
		return &suttadown.Page{HTML: b, URL: c.URL}, nil
	}
	f := &suttadown.Fetcher{
		Client:    &http.Client{Timeout: c.Timeout},
		RandomURL: c.RandomURL,
		UserAgent: "suttadown/" + version,
	}
	if c.URL != "" {
		return f.Fetch(ctx, c.URL)
	}
	return f.Random(ctx)
}

func (c *CLI) run(ctx context.Context, stdout io.Writer) error {
	page, err := c.page(ctx)
	if err != nil {
		return err
	}
	res, err := suttadown.ConvertSuttaWithOption(string(page.HTML), page.URL, &suttadown.Option{BaseURL: c.BaseURL})
	if err != nil {
		return fmt.Errorf("convert %s: %w", page.URL, err)
	}
	slog.Info("converted sutta", "title", res.Title, "url", page.URL)

	w := stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if c.Title {
		if _, err := fmt.Fprintln(w, res.Title); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, res.Markdown)
	return err
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("suttadown"),
		kong.Description("Convert a dhammatalks.org sutta to Markdown"),
		kong.UsageOnError(),
		kong.Vars{
			"version":    version,
			"base_url":   suttadown.DefaultBaseURL,
			"random_url": suttadown.DefaultRandomURL,
		},
	)

	level, err := logging.ParseLevel(cli.LogLevel)
	kctx.FatalIfErrorf(err)
	format, err := logging.ParseFormat(cli.LogFormat)
	kctx.FatalIfErrorf(err)
	logging.Init(os.Stderr, level, format)

	if err := cli.run(context.Background(), os.Stdout); err != nil {
		slog.Error("suttadown failed", "error", err)
		os.Exit(1)
	}
}
