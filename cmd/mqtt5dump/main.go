// Command mqtt5dump decodes a stream of MQTT 5.0 control packets from
// stdin (or a file named with -in) and prints one line of JSON per packet
// to stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mqtt5x/codec/codec"
	"github.com/mqtt5x/codec/internal/xlog"
	"github.com/mqtt5x/codec/packet"
)

func main() {
	inPath := flag.String("in", "", "file to read packets from (default: stdin)")
	verbose := flag.Bool("v", false, "log decode/encode diagnostics to stderr")
	flag.Parse()

	var in io.Reader = os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mqtt5dump:", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	var opts []codec.Option
	if *verbose {
		opts = append(opts, codec.WithLogger(xlog.New(slog.LevelDebug, os.Stderr)))
	}

	if err := run(in, os.Stdout, opts); err != nil {
		fmt.Fprintln(os.Stderr, "mqtt5dump:", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, opts []codec.Option) error {
	buf := codec.NewBuffer()
	chunk := make([]byte, 4096)
	enc := json.NewEncoder(out)

	for {
		for {
			pkt, err := codec.Decode(buf, opts...)
			if err != nil {
				return err
			}
			if pkt == nil {
				break
			}
			if err := enc.Encode(describe(*pkt)); err != nil {
				return err
			}
		}

		n, err := in.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
		}
		if err == io.EOF {
			if buf.Len() > 0 {
				return fmt.Errorf("trailing %d bytes do not form a complete packet", buf.Len())
			}
			return nil
		}
		if err != nil {
			return err
		}
	}
}

type packetView struct {
	Kind  string      `json:"kind"`
	Value interface{} `json:"value"`
}

func describe(p packet.Packet) packetView {
	return packetView{Kind: p.Kind.String(), Value: p.Value}
}
