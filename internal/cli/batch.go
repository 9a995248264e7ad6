package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"csvsplit/internal/adapter/csvio"
	"csvsplit/internal/adapter/fs"
	"csvsplit/internal/usecase"
)

var (
	batchOutput string
	batchSize   int
)

var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Split every CSV file under a directory",
	Long: `Discover CSV files under the given directory (current directory by
default) using the configured include/exclude glob patterns, and split each
one into its own subdirectory of the output directory.

Examples:
  csvsplit batch ./exports              # split every CSV under ./exports
  csvsplit batch ./exports -o parts -s 500`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchOutput, "output_dir", "o", "data", "output directory for split files")
	batchCmd.Flags().IntVarP(&batchSize, "size", "s", 100, "number of rows per output file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	root := GetWorkDir()
	if len(args) > 0 {
		var err error
		root, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", root)
	}

	cfg := GetConfig()

	outputDir := cfg.Split.OutputDir
	if cmd.Flags().Changed("output_dir") {
		outputDir = batchOutput
	}
	size := cfg.Split.Size
	if cmd.Flags().Changed("size") {
		size = batchSize
	}

	comma := cfg.Split.Comma()
	walker := fs.NewWalker(cfg.Batch.Includes, cfg.Batch.Excludes)
	splitter := usecase.NewSplitter(opener(comma), csvio.NewChunkWriter(comma), nil)
	batch := usecase.NewBatch(walker, splitter)

	fmt.Printf("Scanning %s...\n", root)

	result, err := batch.Run(root, outputDir, size)
	if err != nil {
		return err
	}

	fmt.Printf("\nBatch complete:\n")
	fmt.Printf("  Inputs split:   %d\n", result.FilesSplit)
	fmt.Printf("  Files written:  %d\n", result.ChunksWritten)
	fmt.Printf("  Rows processed: %d\n", result.Rows)

	if len(result.Errors) > 0 {
		fmt.Printf("\nErrors:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
		return fmt.Errorf("%d input file(s) failed", len(result.Errors))
	}

	return nil
}
