// Command mar2dmp imports a flat raw map blob (one not produced from a TMX
// document), checks its length against --width and --height, and re-exports
// it through the same primary-map serialization path femaptool uses. No
// map-change cropping is applied.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CT075/cam-formatting-suite/internal/femap"
)

var (
	flagWidth  int
	flagHeight int
	flagOut    string
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mar2dmp:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mar2dmp <raw-map>",
		Short: "Import a flat raw map blob and re-export it as a .dmp",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	cmd.Flags().IntVar(&flagWidth, "width", 0, "map width in tiles")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "map height in tiles")
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "output path (default: <input>.dmp)")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("height")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	m, err := femap.ImportRaw(data, flagWidth, flagHeight)
	if err != nil {
		return err
	}

	outPath := flagOut
	if outPath == "" {
		outPath = path + ".dmp"
	}
	if err := os.WriteFile(outPath, m.Serialize(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	return nil
}
