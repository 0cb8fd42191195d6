package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

// dumpConfig shows every field of a record rather than its String form.
var dumpConfig = spew.ConfigState{Indent: " ", DisableMethods: true}

type app struct {
	cfg    Config
	input  string // local copy of the document, if set
	client *http.Client
	stdout io.Writer
}

func newApp(cfg Config, input string, stdout io.Writer) *app {
	return &app{
		cfg:    cfg,
		input:  input,
		client: &http.Client{Timeout: cfg.Source.Timeout()},
		stdout: stdout,
	}
}

func (a *app) run(ctx context.Context, cli *CLI) error {
	switch cli.mode {
	case listMode:
		return a.list(ctx)
	case dumpMode:
		return a.dump(ctx)
	case exportMode:
		return a.export(ctx, cli.Export.Output)
	default:
		return a.generate(ctx, cli.Generate.Output, cli.Generate.Check)
	}
}

func (a *app) loadPage(ctx context.Context) ([]byte, error) {
	if a.input != "" {
		logrus.WithField("path", a.input).Debug("reading specification")
		return readPage(a.input)
	}
	logrus.WithField("url", a.cfg.Source.URL).Info("fetching specification")
	return fetchPage(ctx, a.client, a.cfg.Source.URL)
}

func (a *app) loadISA(ctx context.Context) (*ISA, error) {
	page, err := a.loadPage(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := parseDocument(page)
	if err != nil {
		return nil, err
	}
	return loadISA(doc, a.cfg.Layout, categories)
}

// header builds the complete header in memory. Nothing is written
// unless every instruction was extracted and checked.
func (a *app) header(ctx context.Context) ([]byte, error) {
	isa, err := a.loadISA(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkCollisions(isa.Instructions, a.cfg.Checks); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := generateHeader(&buf, isa.Instructions, a.cfg.Output); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *app) generate(ctx context.Context, output string, check bool) error {
	data, err := a.header(ctx)
	if err != nil {
		return err
	}
	if check {
		if err := checkFile(a.stdout, output, data); err != nil {
			return err
		}
		logrus.WithField("path", output).Info("up to date")
		return nil
	}

	if err := writeFileAtomic(output, data); err != nil {
		return err
	}
	logrus.WithField("path", output).Infof("wrote %d bytes", len(data))
	return nil
}

func (a *app) list(ctx context.Context) error {
	isa, err := a.loadISA(ctx)
	if err != nil {
		return err
	}
	printInstructionTable(a.stdout, isa)
	return nil
}

func (a *app) dump(ctx context.Context) error {
	isa, err := a.loadISA(ctx)
	if err != nil {
		return err
	}
	dumpConfig.Fdump(a.stdout, isa)
	return nil
}

func (a *app) export(ctx context.Context, output string) error {
	isa, err := a.loadISA(ctx)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(output, encodeJSON(isa)); err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	logrus.WithField("path", output).Infof("exported %d instructions", len(isa.Instructions))
	return nil
}
