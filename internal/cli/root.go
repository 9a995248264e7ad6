package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csvsplit/config"
)

var (
	cfgFile string
	cfg     *config.Config
	workDir string
)

var rootCmd = &cobra.Command{
	Use:   "csvsplit",
	Short: "Split large CSV files into bounded-size parts",
	Long: `csvsplit splits one large CSV file into a sequence of smaller CSV files,
each holding at most a configured number of data rows. The header row is
replicated into every output file and peak memory stays bounded regardless
of input size.

Example usage:
  csvsplit -i export.csv -o parts -s 500   # 500 rows per output file
  csvsplit batch ./exports                 # split every CSV under a directory
  csvsplit history                         # show recorded runs`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if workDir == "" {
			workDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(workDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
	RunE: runSplit,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./csvsplit.yaml)")
	rootCmd.PersistentFlags().StringVarP(&workDir, "dir", "d", "", "working directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetWorkDir() string {
	return workDir
}
