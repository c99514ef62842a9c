package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/valerio/jeebie-bitunit/jeebie/cpu"
	"github.com/valerio/jeebie-bitunit/jeebie/disasm"
)

const (
	startMarker = "<!-- OPCODES:START -->"
	endMarker   = "<!-- OPCODES:END -->"
)

var errMarkersNotFound = errors.New("markers not found")

func main() {
	var readme string
	flag.StringVar(&readme, "readme", "README.md", "Path to README file to update in place")
	flag.Parse()

	readmeBytes, err := os.ReadFile(readme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: reading %s: %v\n", readme, err)
		os.Exit(1)
	}

	out, err := replaceTable(string(readmeBytes), opcodeTable())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s: %v. Ensure %s and %s exist.\n", readme, err, startMarker, endMarker)
		os.Exit(1)
	}

	if err := os.WriteFile(readme, []byte(out), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", readme, err)
		os.Exit(1)
	}
}

// opcodeTable renders the bit operation block as a markdown grid, rows by
// high nibble and columns by low nibble, with the cycle count per cell.
func opcodeTable() string {
	var buf bytes.Buffer

	buf.WriteString("|    |")
	for lo := 0; lo < 16; lo++ {
		fmt.Fprintf(&buf, " x%X |", lo)
	}
	buf.WriteString("\n|----|")
	buf.WriteString(strings.Repeat("----|", 16))
	buf.WriteString("\n")

	for hi := 0x4; hi <= 0xF; hi++ {
		fmt.Fprintf(&buf, "| %Xx |", hi)
		for lo := 0; lo < 16; lo++ {
			opcode := uint8(hi<<4 | lo)
			inst, ok := cpu.Decode(opcode)
			if !ok {
				buf.WriteString("  |")
				continue
			}
			fmt.Fprintf(&buf, " %s<br>%d |", disasm.Mnemonic(opcode), inst.Cycles())
		}
		buf.WriteString("\n")
	}
	return buf.String()
}

func replaceTable(content, table string) (string, error) {
	start := strings.Index(content, startMarker)
	end := strings.Index(content, endMarker)
	if start == -1 || end == -1 || end < start {
		return "", errMarkersNotFound
	}

	before := content[:start+len(startMarker)]
	after := content[end:]
	var out strings.Builder
	out.WriteString(before)
	out.WriteString("\n")
	out.WriteString(table)
	if !strings.HasSuffix(table, "\n") {
		out.WriteString("\n")
	}
	out.WriteString(after)
	return out.String(), nil
}
