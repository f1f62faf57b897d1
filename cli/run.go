package main

import (
	"errors"
	"io"

	"github.com/BertoldVdb/rom-tools/romsig"
)

var errorOutputWithoutWrite = errors.New("--output only applies together with --write")

func (o *Options) target() string {
	if o.Output != "" {
		return o.Output
	}
	return o.Input
}

func (o *Options) Run(out io.Writer, logFunc romsig.LogFunc) error {
	if o.Output != "" && !o.Write {
		return errorOutputWithoutWrite
	}

	data, err := romsig.Load(o.Input)
	if err != nil {
		return err
	}

	r, err := romsig.Patch(data, romsig.Config{
		Trace:   o.Verbose,
		LogFunc: logFunc,
	})
	if err != nil {
		return err
	}

	rep := &report{out: out, verbose: o.Verbose}
	rep.checksum(r)
	rep.signature(r)

	if o.Write {
		if err := romsig.Commit(o.target(), r.Image.Working()); err != nil {
			return err
		}
		if logFunc != nil {
			logFunc(1, "Wrote %d bytes to %s", r.Image.Len(), o.target())
		}
		rep.written(o.target())
	} else {
		rep.dryRun(r)
	}

	rep.summary(r)
	return nil
}
