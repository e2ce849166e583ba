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

// uploadPaperCmd represents the uploadPaper command
var uploadPaperCmd = &cobra.Command{
	Use:   "upload-paper",
	Short: "Ingest a single PDF research paper",
	Long: `Runs one PDF through the full pipeline: stores the file, extracts its
text, asks the model for title, authors and a summary, persists the paper
record and indexes the text chunks for semantic search.`,
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
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

		file, err := os.Open(filePath)
		if err != nil {
			log.Fatalf("Failed to open file: %v", err)
		}
		defer file.Close()

		paper, err := env.ingest.Ingest(ctx, userID, filepath.Base(filePath), file)
		if err != nil {
			log.Fatalf("Failed to ingest paper: %v", err)
		}
		fmt.Printf("Ingested paper %s\n  Title: %s\n  Authors: %s\n", paper.ID, paper.Title, paper.Authors)
	},
}

func init() {
	rootCmd.AddCommand(uploadPaperCmd)

	uploadPaperCmd.Flags().StringP("file", "f", "", "Path to the PDF file to upload")
	uploadPaperCmd.Flags().StringP("user", "u", "", "Id of the owning user")
	uploadPaperCmd.Flags().BoolP("reinit", "r", false, "Drop and recreate the vector index first")
	uploadPaperCmd.MarkFlagRequired("file")
	uploadPaperCmd.MarkFlagRequired("user")
}
