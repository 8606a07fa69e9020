// Command femaptool converts a Tiled TMX map into the runtime's map blob
// format: a primary tile table, one cropped map-change blob per non-empty
// secondary layer, and a properties text file.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CT075/cam-formatting-suite/internal/femap"
	"github.com/CT075/cam-formatting-suite/internal/logging"
	"github.com/CT075/cam-formatting-suite/internal/xmlmap"
)

var (
	flagOutDir  string
	flagVerbose bool
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "femaptool:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "femaptool <map.tmx>",
		Short: "Convert a Tiled TMX map into the runtime's map blob format",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	cmd.Flags().StringVarP(&flagOutDir, "out-dir", "o", "", "output directory (default: alongside the input file)")
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

	doc, err := xmlmap.Decode(f)
	if err != nil {
		return err
	}
	log.Debugw("decoded TMX document", "path", path, "layers", len(doc.Layers))

	layers := make([]femap.TileLayer, len(doc.Layers))
	for i, l := range doc.Layers {
		layers[i] = l
	}

	m, problems := femap.Process(layers)
	for _, p := range problems {
		fmt.Fprintln(os.Stderr, "femaptool:", p.Error())
	}
	if m == nil {
		return fmt.Errorf("femaptool: could not build a map from %s", path)
	}

	outDir := flagOutDir
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if err := os.WriteFile(filepath.Join(outDir, base+".dmp"), m.Serialize(), 0o644); err != nil {
		return fmt.Errorf("writing map blob: %w", err)
	}
	for i, mc := range m.MapChanges {
		name := fmt.Sprintf("%s.%d.mch", base, i)
		if mc.Name != "" {
			name = fmt.Sprintf("%s.%s.mch", base, mc.Name)
		}
		if err := os.WriteFile(filepath.Join(outDir, name), mc.Serialize(), 0o644); err != nil {
			return fmt.Errorf("writing map-change blob for layer %q: %w", mc.Name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(outDir, base+".props.txt"), []byte(m.PropertiesText()), 0o644); err != nil {
		return fmt.Errorf("writing properties table: %w", err)
	}

	return nil
}
