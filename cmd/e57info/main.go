// Command e57info inspects the container layer of ASTM E57 files.
//
//	e57info info scan.e57
//	e57info xml scan.e57 --compress zstd --out scan.xml.zst
//	e57info streams scan.e57
//	e57info bitwidth 0 2047
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/arloliu/e57/container"
)

// Globals are flags shared by every command.
type Globals struct {
	NoValidate bool `name:"no-validate" help:"Skip signature and page alignment checks of the file header"`
	Verbose    bool `short:"v" help:"Log decoding steps to stderr"`

	log *zap.Logger `kong:"-"`
}

// logger returns the logger selected by --verbose, building it once.
func (g *Globals) logger() (*zap.Logger, error) {
	if g.log != nil {
		return g.log, nil
	}

	if !g.Verbose {
		g.log = zap.NewNop()
		return g.log, nil
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	g.log = log

	return g.log, nil
}

// sync flushes buffered log entries before the process exits.
func (g *Globals) sync() {
	if g.log != nil {
		_ = g.log.Sync()
	}
}

// open opens path with the options selected by the global flags.
func (g *Globals) open(path string) (*container.Container, error) {
	log, err := g.logger()
	if err != nil {
		return nil, err
	}

	return container.Open(path,
		container.WithValidation(!g.NoValidate),
		container.WithLogger(log),
	)
}

// CLI defines the command-line interface of e57info.
type CLI struct {
	Globals `embed:""`

	Info     InfoCmd     `cmd:"" help:"Print the file header, page geometry and a metadata digest"`
	XML      XMLCmd      `cmd:"" name:"xml" help:"Dump the metadata document, optionally compressed"`
	Streams  StreamsCmd  `cmd:"" help:"List point streams with their fields and binary headers"`
	Bitwidth BitwidthCmd `cmd:"" help:"Compute the packed width of an integer range"`
}

func newParser(cli *CLI, stdout, stderr io.Writer, opts ...kong.Option) (*kong.Kong, error) {
	all := append([]kong.Option{
		kong.Name("e57info"),
		kong.Description("Inspect ASTM E57 point cloud containers"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Writers(stdout, stderr),
		kong.Bind(&cli.Globals),
	}, opts...)

	return kong.New(cli, all...)
}

func main() {
	var cli CLI

	parser, err := newParser(&cli, os.Stdout, os.Stderr)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run()
	cli.sync()
	ctx.FatalIfErrorf(err)
}
