// Command huffdemo compares the average code length of a Huffman code over
// fixed-length words with the entropy of the letter distribution the words
// are drawn from.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var (
		configPath string
		minLength  int
		maxLength  int
		width      int
	)

	cmd := &cobra.Command{
		Use:   "huffdemo",
		Short: "compare Huffman code length with alphabet entropy",
		Long: "builds a Huffman code over every word of each configured length and\n" +
			"reports the average code length per letter next to the entropy of the\n" +
			"letter distribution",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("min-length") {
				cfg.MinLength = minLength
			}
			if flags.Changed("max-length") {
				cfg.MaxLength = maxLength
			}
			if flags.Changed("width") {
				cfg.Width = width
			}

			log.Println("Huffdemo:")
			log.Printf("\tConfig: %q\n", configPath)
			log.Printf("\tLengths: %d .. %d\n", cfg.MinLength, cfg.MaxLength)
			return run(cfg, cmd.OutOrStdout())
		},
	}

	defaults := defaultConfig()
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().IntVar(&minLength, "min-length", defaults.MinLength, "shortest word length")
	cmd.Flags().IntVar(&maxLength, "max-length", defaults.MaxLength, "longest word length")
	cmd.Flags().IntVar(&width, "width", defaults.Width, "report width in columns")
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
