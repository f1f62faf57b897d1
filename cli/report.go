package main

import (
	"fmt"
	"io"

	"github.com/BertoldVdb/rom-tools/romsig"
	"github.com/fatih/color"
)

type report struct {
	out     io.Writer
	verbose bool
}

var (
	colorStale = color.New(color.FgRed)
	colorOK    = color.New(color.FgGreen)
	colorTitle = color.New(color.Bold)
)

func (p *report) checksum(r *romsig.Result) {
	if p.verbose {
		fmt.Fprintln(p.out, "Debugging Checksum Calculation:")
		for _, m := range r.ChecksumTrace {
			fmt.Fprintf(p.out, "Step %d: Byte=0x%02X, Intermediate Checksum=0x%02X, Carry=%d\n",
				m.Index, m.Value, m.Acc, m.Carry)
		}
		fmt.Fprintf(p.out, "Checksum byte to store at offset %d: 0x%02X\n", romsig.OffsetChecksum, r.Checksum.New)
	}

	if r.Checksum.NeedsUpdate() {
		colorStale.Fprintf(p.out, "The checksum byte needs to be updated: from 0x%02X to 0x%02X.\n",
			r.Checksum.Old, r.Checksum.New)
	} else {
		colorOK.Fprintln(p.out, "The checksum byte already contains the correct value.")
	}
}

func (p *report) signature(r *romsig.Result) {
	if p.verbose {
		fmt.Fprintln(p.out, "Debugging Signature Calculation:")
		for _, m := range r.SignatureTrace {
			fmt.Fprintf(p.out, "Step %d: Byte=0x%02X, Intermediate Signature=0x%04X\n",
				m.Index, m.Value, m.Register)
		}
	}

	if r.SignatureNeedsUpdate() {
		colorStale.Fprintf(p.out, "The signature bytes need to be updated: LO from 0x%02X to 0x%02X, HI from 0x%02X to 0x%02X.\n",
			r.SignatureLo.Old, r.SignatureLo.New, r.SignatureHi.Old, r.SignatureHi.New)
	} else {
		colorOK.Fprintln(p.out, "The signature bytes are already correct.")
	}
}

func (p *report) written(path string) {
	fmt.Fprintf(p.out, "ROM file '%s' has been updated.\n", path)
}

func (p *report) dryRun(r *romsig.Result) {
	if r.Changed() {
		fmt.Fprintln(p.out, "Dry Run: Changes would be needed but not written to the ROM file.")
	} else {
		fmt.Fprintln(p.out, "Dry Run: No changes needed to the ROM file.")
	}
}

func (p *report) summary(r *romsig.Result) {
	fmt.Fprintln(p.out)
	colorTitle.Fprintln(p.out, "=== Summary ===")
	fmt.Fprintf(p.out, "Current Signature Bytes: LO=0x%02X, HI=0x%02X\n", r.SignatureLo.Old, r.SignatureHi.Old)
	fmt.Fprintf(p.out, "Recalculated Signature Bytes: LO=0x%02X, HI=0x%02X\n", r.SignatureLo.New, r.SignatureHi.New)
	fmt.Fprintf(p.out, "Current Checksum Byte: 0x%02X\n", r.Checksum.Old)
	fmt.Fprintf(p.out, "Recalculated Checksum Byte: 0x%02X\n", r.Checksum.New)

	if p.verbose {
		orig := r.Image.Original()
		fmt.Fprintf(p.out, "Image digest: %s -> %s\n", romsig.Digest(orig), romsig.Digest(r.Image.Working()))
		fmt.Fprint(p.out, dumpHeader(r.Image.Working(), r.Image.ChangedMask()))
	}
}
