package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

type Options struct {
	Input    string `arg:"" name:"input_file" help:"ROM image to check." type:"path"`
	Write    bool   `short:"w" help:"Write changes to the ROM file (otherwise, only a dry run is performed)."`
	Verbose  bool   `short:"v" help:"Show every step of the checksum and signature calculation."`
	Output   string `short:"o" optional:"" help:"Write the patched image to this file instead of the input." type:"path"`
	LogLevel int    `optional:"" help:"Higher values give more output." env:"ROMSIG_LOG_LEVEL"`
	NoColor  bool   `optional:"" help:"Disable coloured output."`
}

var CLI Options

func newParser(o *Options, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("romsig"),
		kong.Description("Calculate and optionally patch ROM checksum and signature."),
	}, options...)
	return kong.New(o, options...)
}

func main() {
	k, err := newParser(&CLI)
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, err := k.Parse(os.Args[1:])
	k.FatalIfErrorf(err)

	if CLI.NoColor {
		color.NoColor = true
	}

	logFunc, logSync, err := newLogFunc(CLI.LogLevel, color.NoColor, "stderr")
	ctx.FatalIfErrorf(err)

	err = CLI.Run(os.Stdout, logFunc)
	logSync()
	ctx.FatalIfErrorf(err)
}
