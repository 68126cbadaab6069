// Command yaztool compresses and decompresses Yaz0 files.
package main

import (
	"flag"
	"fmt"
	"os"

	pb "github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"

	"github.com/retroarc/yaz0"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "compress":
		err = runCompress(os.Args[2:])
	case "decompress":
		err = runDecompress(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		color.Red("yaztool: %v", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: yaztool <command> [flags] INPUT OUTPUT")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  compress    pack INPUT into a Yaz0 frame at OUTPUT")
	fmt.Fprintln(os.Stderr, "  decompress  expand the Yaz0 frame INPUT into OUTPUT")
}

func runCompress(args []string) error {
	fs := flag.NewFlagSet("compress", flag.ExitOnError)
	limit := fs.Int("limit", yaz0.WindowSize, "match search window (0 = literals only, max 4096)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("compress needs INPUT and OUTPUT")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	bar := pb.New(len(data))
	bar.Set(pb.Bytes, true)
	bar.Start()

	prog := make(chan yaz0.Progress, 256)
	done := make(chan struct{})
	go func() {
		for p := range prog {
			bar.SetCurrent(int64(p.Pos))
		}
		close(done)
	}()

	enc := yaz0.Compress(data, &yaz0.CompressOptions{
		SearchLimit: *limit,
		Progress:    prog,
	})
	close(prog)
	<-done
	bar.SetCurrent(int64(len(data)))
	bar.Finish()

	if err := os.WriteFile(fs.Arg(1), enc, 0o644); err != nil {
		return err
	}

	color.Green("%s: %d -> %d bytes (%.1f%%)",
		fs.Arg(1), len(data), len(enc), float64(len(enc))/float64(max(len(data), 1))*100)

	return nil
}

func runDecompress(args []string) error {
	fs := flag.NewFlagSet("decompress", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("decompress needs INPUT and OUTPUT")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	out, err := yaz0.Decompress(data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(fs.Arg(1), out, 0o644); err != nil {
		return err
	}

	color.Green("%s: %d -> %d bytes", fs.Arg(1), len(data), len(out))

	return nil
}
