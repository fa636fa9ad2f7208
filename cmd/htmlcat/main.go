// Command htmlcat prints the HTML element and attribute vocabulary.
//
//	htmlcat [-config file.toml] [-format text|json|yaml] [-log-level level] [-v] [tag ...]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/heathj/htmlspec/html/catalog"
	"github.com/heathj/htmlspec/internal/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("htmlcat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg, err := config.Load(fs, args)
	if err != nil {
		if errors.Cause(err) == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(stderr, "htmlcat: %v\n", err)
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(cfg.Level())
	log.WithFields(logrus.Fields{
		"format": cfg.Format,
		"tags":   len(cfg.Tags),
	}).Debug("starting")

	c := catalog.NewWithLogger(log, catalog.Builtin()...)
	if len(cfg.Tags) > 0 {
		if c, err = c.Subset(cfg.Tags...); err != nil {
			log.WithError(err).Error("lookup failed")
			return 1
		}
	}

	switch cfg.Format {
	case config.FormatJSON:
		err = c.WriteJSON(stdout)
	case config.FormatYAML:
		err = c.WriteYAML(stdout)
	default:
		err = c.WriteText(stdout)
	}
	if err != nil {
		log.WithError(err).Error("write failed")
		return 1
	}
	return 0
}
