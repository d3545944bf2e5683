// Command gotags renders a small HTML page with a <noscript> fallback.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/gotags/document"
	"github.com/heathj/gotags/tags"
)

// CLI is the command-line interface for gotags.
type CLI struct {
	Title      string   `name:"title" short:"t" env:"GOTAGS_TITLE" help:"Page title"`
	NoScript   string   `name:"noscript" short:"n" env:"GOTAGS_NOSCRIPT" default:"No Javascript :)" help:"Text shown when Javascript is disabled (written verbatim, not escaped)"`
	Paragraphs []string `name:"paragraph" short:"p" env:"GOTAGS_PARAGRAPHS" help:"Paragraph text, may be repeated"`
	Out        string   `name:"out" short:"o" env:"GOTAGS_OUT" type:"path" help:"Write to this file instead of stdout"`
	Debug      bool     `name:"debug" env:"GOTAGS_DEBUG" help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gotags"),
		kong.Description("Render an HTML page with a noscript fallback."),
		kong.UsageOnError(),
	)

	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cli.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	ctx.FatalIfErrorf(cli.run(os.Stdout))
}

// build assembles the page described by the flags.
func (c *CLI) build() *document.Document {
	doc := document.New().Title(c.Title)
	for _, p := range c.Paragraphs {
		doc.Append(tags.NewP(tags.NewText(p)))
	}
	if c.NoScript != "" {
		doc.Append(tags.NewNoScript(c.NoScript))
	}
	return doc
}

func (c *CLI) run(stdout io.Writer) error {
	w := stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		defer f.Close()
		w = f
	}

	n, err := c.build().WriteTo(w)
	if err != nil {
		return err
	}
	logrus.WithField("bytes", n).Debug("[CLI]: document written")
	return nil
}
