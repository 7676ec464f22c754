// Command oscdump decodes a dumped OSC packet and prints its contents.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/davidgranstrom/go-osc/osc"
)

type cli struct {
	File     string `arg:"" optional:"" help:"File holding one raw OSC packet. Reads stdin when omitted."`
	Hex      bool   `help:"Treat the input as hex text instead of raw bytes."`
	MaxDepth int    `default:"32" help:"Maximum bundle nesting depth."`
}

func main() {
	log.SetFlags(0)

	var args cli
	kong.Parse(&args,
		kong.Name("oscdump"),
		kong.Description("Decode an OSC packet dump and print its messages and bundles."),
		kong.UsageOnError(),
	)

	data, err := readInput(args.File)
	if err != nil {
		log.Fatal(err)
	}
	if args.Hex {
		data, err = decodeHex(data)
		if err != nil {
			log.Fatal(err)
		}
	}

	pkt, err := osc.ParsePacketDepth(data, args.MaxDepth)
	if err != nil {
		log.Fatal(err)
	}
	dump(pkt, 0)
}

func readInput(file string) ([]byte, error) {
	if file == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

func decodeHex(data []byte) ([]byte, error) {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, string(data))
	return hex.DecodeString(s)
}

func dump(pkt osc.Packet, depth int) {
	indent := strings.Repeat("  ", depth)
	switch p := pkt.(type) {
	case *osc.Message:
		fmt.Printf("%s%s\n", indent, p)
	case *osc.Bundle:
		fmt.Printf("%s#bundle %d (%d elements)\n", indent, uint64(p.Timetag), len(p.Elements))
		for _, e := range p.Elements {
			dump(e, depth+1)
		}
	}
}
