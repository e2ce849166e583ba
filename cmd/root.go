/*
Copyright © 2025 researchhub
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "researchhub-be",
	Short: "Research paper ingestion and search backend",
	Long: `researchhub-be ingests research papers in PDF form, extracts their text,
asks a language model for title, authors and a summary, stores the paper
record in MongoDB and indexes the text chunks in Weaviate for semantic
search. Subcommands cover uploading, searching, listing, deleting and
synthesizing reports across a user's library.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Here you will define your flags and configuration settings.
	// Cobra supports persistent flags, which, if defined here,
	// will be global for your application.

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file")
}
