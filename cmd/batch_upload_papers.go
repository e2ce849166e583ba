/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// batchUploadPapersCmd represents the batchUploadPapers command
var batchUploadPapersCmd = &cobra.Command{
	Use:   "batch-upload-papers",
	Short: "Ingest every PDF in a directory",
	Long: `Runs the ingestion pipeline over every file in a directory. Files that
fail (wrong extension, corrupt PDF, model or index errors) are logged and
skipped; the rest are ingested normally.`,
	Run: func(cmd *cobra.Command, args []string) {
		directory, _ := cmd.Flags().GetString("directory")
		userID, _ := cmd.Flags().GetString("user")
		reinit, _ := cmd.Flags().GetBool("reinit")

		ctx := context.Background()
		env, err := buildEnv(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer env.Close(ctx)

		if reinit {
			if err := env.vectorDB.ReInit(); err != nil {
				log.Fatalf("Failed to reinitialize vector index: %v", err)
			}
		}

		entries, err := os.ReadDir(directory)
		if err != nil {
			log.Fatalf("Failed to read directory: %v", err)
		}
		filePaths := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			filePaths = append(filePaths, filepath.Join(directory, entry.Name()))
		}

		papers := env.ingest.IngestBatch(ctx, userID, filePaths)
		for _, paper := range papers {
			fmt.Printf("Ingested paper %s: %s\n", paper.ID, paper.Title)
		}
		fmt.Printf("Ingested %d of %d files\n", len(papers), len(filePaths))
	},
}

func init() {
	rootCmd.AddCommand(batchUploadPapersCmd)

	batchUploadPapersCmd.Flags().String("directory", "", "Path to the directory of PDFs to upload")
	batchUploadPapersCmd.Flags().StringP("user", "u", "", "Id of the owning user")
	batchUploadPapersCmd.Flags().BoolP("reinit", "r", false, "Drop and recreate the vector index first")
	batchUploadPapersCmd.MarkFlagRequired("directory")
	batchUploadPapersCmd.MarkFlagRequired("user")
}
