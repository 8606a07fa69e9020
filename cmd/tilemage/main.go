// Command tilemage converts an indexed-color image into GBA tile and
// palette blobs.
package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"

	"github.com/CT075/cam-formatting-suite/internal/logging"
	"github.com/CT075/cam-formatting-suite/internal/lz77"
	"github.com/CT075/cam-formatting-suite/internal/tilemage"
)

func init() {
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
}

var (
	flagOut         string
	flagPaletteOut  string
	flagPaletteStr  string
	flagLZ77        bool
	flagLZ77Best    bool
	flagVerbose     bool
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tilemage:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tilemage <image>",
		Short: "Convert an indexed-color image into GBA tile and palette blobs",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "tile blob output path (default: <image>.til)")
	cmd.Flags().StringVar(&flagPaletteOut, "palette-out", "", "dump the resolved palette to this path as a standalone .pal file")
	cmd.Flags().StringVar(&flagPaletteStr, "palette", "", "use this 64-hex-character palette string instead of resolving one")
	cmd.Flags().BoolVar(&flagLZ77, "lz77", false, "run the tile and palette blobs through the LZ77 compressor")
	cmd.Flags().BoolVar(&flagLZ77Best, "lz77-best", false, "use the exhaustive LZ77 match strategy (implies --lz77)")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	log, err := logging.New(flagVerbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	log.Debugw("decoded source image", "path", path, "format", format)

	var opts tilemage.ResolveOptions
	if flagPaletteStr != "" {
		pal, err := tilemage.ParsePaletteString(flagPaletteStr)
		if err != nil {
			return err
		}
		opts.Explicit = pal
	}

	img, err := tilemage.Convert(src, opts)
	if err != nil {
		return err
	}

	if problems := img.Validate(); len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintln(os.Stderr, "tilemage:", p.Error())
		}
		return fmt.Errorf("tilemage: %d validation problem(s)", len(problems))
	}

	tiles, err := tilemage.EncodeTiles(img)
	if err != nil {
		return err
	}
	paletteBlob := img.Palette.Encode()

	if flagLZ77 || flagLZ77Best {
		strategy := lz77.StrategyMostRecentOnly
		if flagLZ77Best {
			strategy = lz77.StrategyAllCandidates
		}
		tiles = lz77.Compress(tiles, strategy)
		paletteBlob = lz77.Compress(paletteBlob, strategy)
	}

	outPath := flagOut
	if outPath == "" {
		outPath = path + ".til"
	}
	if err := os.WriteFile(outPath, tiles, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	if flagPaletteOut != "" {
		if err := os.WriteFile(flagPaletteOut, paletteBlob, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", flagPaletteOut, err)
		}
	}

	return nil
}
