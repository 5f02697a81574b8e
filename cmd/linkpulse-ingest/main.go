// Command linkpulse-ingest builds an activity aggregate from a LinkedIn
// data export and writes it as JSON, ready to hydrate into the API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	goflags "github.com/jessevdk/go-flags"

	"linkpulse/internal/adapters/ingest/linkedin"
	"linkpulse/internal/core/aggregate"
	"linkpulse/internal/core/version"
	"linkpulse/internal/platform/logger"
)

type options struct {
	Shares   string `short:"s" long:"shares" description:"path to Shares.csv"`
	Comments string `short:"c" long:"comments" description:"path to Comments.csv"`
	Export   string `short:"e" long:"export" description:"LinkedIn export directory (looks for Shares.csv / Comments.csv inside)"`
	Out      string `short:"o" long:"out" default:"-" description:"output path, or '-' for stdout"`
	Cleaned  string `long:"cleaned-dir" description:"also write repaired CSV copies into this directory"`
	Pretty   bool   `long:"pretty" description:"pretty-print the output JSON"`
	Version  bool   `long:"version" description:"print version and exit"`
}

func main() {
	var opts options
	parser := goflags.NewParser(&opts, goflags.Default)
	parser.Name = "linkpulse-ingest"
	parser.LongDescription = "Aggregate a LinkedIn activity export (Shares.csv, Comments.csv) into a single JSON document."

	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*goflags.Error); ok && fe.Type == goflags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("linkpulse-ingest %s\n", version.Info().Version)
		return
	}

	log := logger.Named("ingest")

	sharesPath, commentsPath := opts.Shares, opts.Comments
	if opts.Export != "" {
		if sharesPath == "" {
			sharesPath = filepath.Join(opts.Export, "Shares.csv")
		}
		if commentsPath == "" {
			commentsPath = filepath.Join(opts.Export, "Comments.csv")
		}
	}
	if sharesPath == "" && commentsPath == "" {
		log.Fatal().Msg("nothing to ingest, pass --shares, --comments, or --export")
	}

	var shares []aggregate.Share
	if sharesPath != "" {
		var err error
		shares, err = readShares(sharesPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", sharesPath).Msg("read shares")
		}
	}

	var comments []aggregate.Comment
	if commentsPath != "" {
		var err error
		comments, err = readComments(commentsPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", commentsPath).Msg("read comments")
		}
	}

	if opts.Cleaned != "" {
		if err := writeCleaned(opts.Cleaned, shares, comments); err != nil {
			log.Fatal().Err(err).Str("dir", opts.Cleaned).Msg("write cleaned csvs")
		}
	}

	agg := aggregate.Build(shares, comments)
	raw, err := aggregate.Serialize(agg)
	if err != nil {
		log.Fatal().Err(err).Msg("serialize aggregate")
	}
	if opts.Pretty {
		raw = prettyJSON(raw)
	}

	if opts.Out == "-" {
		_, _ = os.Stdout.Write(raw)
		_, _ = os.Stdout.WriteString("\n")
	} else {
		if err := os.WriteFile(opts.Out, raw, 0o644); err != nil {
			log.Fatal().Err(err).Str("path", opts.Out).Msg("write output")
		}
	}

	log.Info().
		Int("shares", len(shares)).
		Int("comments", len(comments)).
		Int("months", len(agg.Months)).
		Msg("aggregate built")
}

func prettyJSON(raw []byte) []byte {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return raw
	}
	return buf.Bytes()
}

func writeCleaned(dir string, shares []aggregate.Share, comments []aggregate.Comment) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if len(shares) > 0 {
		f, err := os.Create(filepath.Join(dir, "Shares.csv"))
		if err != nil {
			return err
		}
		if err := linkedin.WriteShares(f, shares); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	if len(comments) > 0 {
		f, err := os.Create(filepath.Join(dir, "Comments.csv"))
		if err != nil {
			return err
		}
		if err := linkedin.WriteComments(f, comments); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func readShares(path string) ([]aggregate.Share, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return linkedin.ReadShares(f)
}

func readComments(path string) ([]aggregate.Comment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return linkedin.ReadComments(f)
}
