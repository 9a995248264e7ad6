package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"csvsplit/config"
	"csvsplit/internal/adapter/csvio"
	"csvsplit/internal/adapter/store"
	"csvsplit/internal/domain"
	"csvsplit/internal/port"
	"csvsplit/internal/usecase"
)

var (
	splitInput  string
	splitOutput string
	splitSize   int
	noHistory   bool
)

func init() {
	rootCmd.Flags().StringVarP(&splitInput, "input", "i", "pws.csv", "input CSV file path")
	rootCmd.Flags().StringVarP(&splitOutput, "output_dir", "o", "data", "output directory for split files")
	rootCmd.Flags().IntVarP(&splitSize, "size", "s", 100, "number of rows per output file")
	rootCmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record this run in the history db")
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	// Changed flags win over the config file, which wins over defaults.
	input := cfg.Split.Input
	if cmd.Flags().Changed("input") {
		input = splitInput
	}
	outputDir := cfg.Split.OutputDir
	if cmd.Flags().Changed("output_dir") {
		outputDir = splitOutput
	}
	size := cfg.Split.Size
	if cmd.Flags().Changed("size") {
		size = splitSize
	}

	comma := cfg.Split.Comma()
	splitter := usecase.NewSplitter(opener(comma), csvio.NewChunkWriter(comma), nil)

	var bar *progressbar.ProgressBar
	if info, err := os.Stat(input); err == nil && info.Size() > 0 {
		bar = progressbar.NewOptions64(info.Size(),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("[cyan]Splitting[reset]"),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)
	}

	progress := func(rows, files int, bytesRead int64) {
		if bar != nil {
			bar.Set64(bytesRead)
		}
	}

	started := time.Now()
	result, err := splitter.Split(input, outputDir, size, progress)

	if !noHistory && cfg.History.Enabled {
		recordRun(started, input, outputDir, size, result, err)
	}

	closeBar(bar, err != nil)
	if err != nil {
		return err
	}

	absOut, pathErr := filepath.Abs(outputDir)
	if pathErr != nil {
		absOut = outputDir
	}

	fmt.Printf("\nSplit complete:\n")
	fmt.Printf("  Files written:  %d\n", result.Files)
	fmt.Printf("  Rows processed: %d\n", result.Rows)
	fmt.Printf("  Output dir:     %s\n", absOut)
	return nil
}

// closeBar finishes the bar on success and erases it on failure, so an
// error message never prints onto a half-rendered bar line.
func closeBar(bar *progressbar.ProgressBar, failed bool) {
	if bar == nil {
		return
	}
	if failed {
		bar.Clear()
		return
	}
	bar.Finish()
}

// opener binds the configured delimiter into the row source factory.
func opener(comma rune) func(string) (port.RowSource, error) {
	return func(path string) (port.RowSource, error) {
		return csvio.Open(path, comma)
	}
}

// recordRun appends the run to the history db. History problems are
// reported as warnings and never fail the split itself.
func recordRun(started time.Time, input, outputDir string, size int, result *domain.SplitResult, runErr error) {
	st, err := openHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer st.Close()

	run := domain.RunRecord{
		ID:        uuid.NewString(),
		StartedAt: started,
		Input:     input,
		OutputDir: outputDir,
		ChunkSize: size,
		Status:    "ok",
	}
	if result != nil {
		run.Files = result.Files
		run.Rows = result.Rows
	}
	if runErr != nil {
		run.Status = "failed"
		run.Error = runErr.Error()
	}

	if err := st.PutRun(run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record run: %v\n", err)
	}
}

func openHistory() (port.RunStore, error) {
	dir := GetWorkDir()
	if err := config.EnsureStateDir(dir); err != nil {
		return nil, err
	}
	st, err := store.NewBoltStore(config.HistoryDBPath(dir))
	if err != nil {
		return nil, err
	}
	return st, nil
}
