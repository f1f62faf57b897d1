package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	headerDumpWidth  = 16
	headerDumpLength = 2 * headerDumpWidth
)

// dumpHeader prints the start of the image, one row per 16 bytes. Bytes
// flagged in mark are shown in red and underlined with carets, so the
// patched fields stay visible when colour is off.
func dumpHeader(data []byte, mark []bool) string {
	var b strings.Builder
	red := color.New(color.FgRed)

	if len(data) > headerDumpLength {
		data = data[:headerDumpLength]
	}

	for offset := 0; offset < len(data); offset += headerDumpWidth {
		end := offset + headerDumpWidth
		if end > len(data) {
			end = len(data)
		}

		var carets string
		fmt.Fprintf(&b, "%04x:", offset)
		for i := offset; i < end; i++ {
			if i < len(mark) && mark[i] {
				b.WriteString(red.Sprintf(" %02x", data[i]))
				carets += " ^^"
			} else {
				fmt.Fprintf(&b, " %02x", data[i])
				carets += "   "
			}
		}
		b.WriteString("\n")

		if carets = strings.TrimRight(carets, " "); carets != "" {
			b.WriteString("     " + carets + "\n")
		}
	}

	return b.String()
}
