// Command gbalz77tool compresses and decompresses GBA BIOS LZ77 frames
// over stdin/stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/CT075/cam-formatting-suite/internal/config"
	"github.com/CT075/cam-formatting-suite/internal/logging"
	"github.com/CT075/cam-formatting-suite/internal/lz77"
)

var (
	flagFast    bool
	flagBest    bool
	flagStats   bool
	flagVerbose bool
	flagConfig  string
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gbalz77tool:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gbalz77tool",
		Short: "Compress and decompress GBA BIOS LZ77 (SWI 0x11) frames",
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&flagConfig, "config", "camfmt.toml", "project config file")

	compress := &cobra.Command{
		Use:   "compress [input] [output]",
		Short: "Compress raw bytes into a GBA-LZ77 frame",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  runCompress,
	}
	compress.Flags().BoolVar(&flagFast, "fast", false, "use the fast (most-recent-only) match strategy")
	compress.Flags().BoolVar(&flagBest, "best", false, "use the exhaustive (all-candidates) match strategy")
	compress.Flags().BoolVar(&flagStats, "stats", false, "print input/output sizes and compression ratio to stderr")

	decompress := &cobra.Command{
		Use:   "decompress [input] [output]",
		Short: "Decompress a GBA-LZ77 frame",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  runDecompress,
	}

	root.AddCommand(compress, decompress)
	return root
}

func openIO(args []string) (io.Reader, io.Writer, func(), error) {
	in := io.Reader(os.Stdin)
	out := io.Writer(os.Stdout)
	closers := []func(){}

	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening input: %w", err)
		}
		in = f
		closers = append(closers, func() { f.Close() })
	}
	if len(args) > 1 {
		f, err := os.Create(args[1])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening output: %w", err)
		}
		out = f
		closers = append(closers, func() { f.Close() })
	}

	return in, out, func() {
		for _, c := range closers {
			c()
		}
	}, nil
}

func runCompress(cmd *cobra.Command, args []string) error {
	log, err := logging.New(flagVerbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	strategy := lz77.StrategyMostRecentOnly
	switch {
	case flagFast:
		strategy = lz77.StrategyMostRecentOnly
	case flagBest:
		strategy = lz77.StrategyAllCandidates
	case cfg.LZ77Strategy == "all-candidates":
		strategy = lz77.StrategyAllCandidates
	}

	in, out, closeAll, err := openIO(args)
	if err != nil {
		return err
	}
	defer closeAll()

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	log.Debugw("compressing", "bytes", len(data), "strategy", strategy.String())

	frame := lz77.Compress(data, strategy)

	if _, err := out.Write(frame); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if flagStats {
		ratio := 1.0
		if len(data) > 0 {
			ratio = float64(len(frame)) / float64(len(data))
		}
		fmt.Fprintf(os.Stderr, "gbalz77tool: %d -> %d bytes (%.2fx), strategy=%s\n", len(data), len(frame), ratio, strategy)
	}

	return nil
}

func runDecompress(cmd *cobra.Command, args []string) error {
	log, err := logging.New(flagVerbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	in, out, closeAll, err := openIO(args)
	if err != nil {
		return err
	}
	defer closeAll()

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	log.Debugw("decompressing", "bytes", len(data))

	decoded, diags := lz77.Decompress(data)
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, "gbalz77tool:", d.Error())
	}

	if _, err := out.Write(decoded); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
