package main

import (
	"errors"

	"github.com/alecthomas/kong"
)

type mode byte

const (
	generateMode mode = iota // Write the opcode header (default)
	listMode                 // Print the instructions as a table
	dumpMode                 // Dump the instruction records
	exportMode               // Write the instructions as JSON
)

type (
	CLI struct {
		Generate Generate `cmd:"" help:"Generate the opcode enumeration header. (default command)" default:"withargs"`
		List     List     `cmd:"" help:"Print the extracted instructions as a table."`
		Dump     Dump     `cmd:"" help:"Dump the extracted instruction records."`
		Export   Export   `cmd:"" help:"Write the extracted instructions as JSON."`

		Config      string `name:"config" help:"${config_help}" type:"path" placeholder:"FILE"`
		Input       string `name:"input" help:"${input_help}" type:"path" placeholder:"FILE"`
		URL         string `name:"url" help:"Specification URL, overrides the configuration." placeholder:"URL"`
		LogLevel    string `name:"log-level" help:"Log level." enum:"trace,debug,info,warn,error" default:"info"`
		LogFile     string `name:"log-file" help:"Write logs to FILE instead of stderr." type:"path" placeholder:"FILE"`
		StrictFetch bool   `name:"strict-fetch" help:"${strict_fetch_help}"`

		mode mode
	}

	Generate struct {
		Output string `arg:"" name:"output" help:"Path of the header to write. A path named like a command needs an explicit 'generate' first." type:"path"`
		Check  bool   `name:"check" help:"${check_help}"`
	}

	List struct{}
	Dump struct{}

	Export struct {
		Output string `arg:"" name:"output" help:"Path of the JSON file to write." type:"path"`
	}
)

var vars = kong.Vars{
	"config_help":       "Configuration file. (default: " + defaultConfigPath() + ")",
	"input_help":        "Read the specification from a local HTML file instead of fetching it.",
	"strict_fetch_help": "Exit with status 3, instead of 0, when the specification can't be fetched.",
	"check_help":        "Don't write anything, exit with status 4 if the existing file is out of date.",
}

func newParser(cli *CLI, options ...kong.Option) *kong.Kong {
	options = append([]kong.Option{
		kong.Name("scrape"),
		kong.Description("Extract the SPIR-V instruction listing from the specification and generate an opcode enumeration header."),
		vars,
	}, options...)

	parser, err := kong.New(cli, options...)
	if err != nil {
		panic(err)
	}
	return parser
}

// parseArgs parses the command line into a CLI. Any error is a usage
// error, and the usage summary has already been printed when it's returned.
func parseArgs(args []string, options ...kong.Option) (CLI, error) {
	var cli CLI
	parser := newParser(&cli, options...)
	ctx, err := parser.Parse(args)
	if err != nil {
		var perr *kong.ParseError
		if errors.As(err, &perr) && perr.Context != nil {
			_ = perr.Context.PrintUsage(true)
		}
		return CLI{}, err
	}

	switch ctx.Command() {
	case "list":
		cli.mode = listMode
	case "dump":
		cli.mode = dumpMode
	case "export <output>":
		cli.mode = exportMode
	default:
		cli.mode = generateMode
	}
	return cli, nil
}

// apply lets flags override values from the configuration file.
func (cli *CLI) apply(cfg *Config) {
	if cli.URL != "" {
		cfg.Source.URL = cli.URL
	}
}
