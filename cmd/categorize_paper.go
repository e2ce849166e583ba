/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

// categorizePaperCmd represents the categorizePaper command
var categorizePaperCmd = &cobra.Command{
	Use:   "categorize-paper",
	Short: "Assign a category, tags or project to a stored paper",
	Long: `Updates a paper's organization fields. Without --category the model
suggests one from the stored file's leading text; --tags and --project are
set as given. Empty fields are left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		id, _ := cmd.Flags().GetString("id")
		category, _ := cmd.Flags().GetString("category")
		tags, _ := cmd.Flags().GetString("tags")
		projectID, _ := cmd.Flags().GetString("project")

		ctx := context.Background()
		env, err := buildEnv(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer env.Close(ctx)

		paper, err := env.ingest.GetPaper(ctx, id)
		if err != nil {
			log.Fatalf("Failed to load paper: %v", err)
		}

		if category == "" {
			text, err := env.pdf.ExtractText(paper.FilePath)
			if err != nil {
				log.Fatalf("Failed to read stored paper: %v", err)
			}
			category, err = env.report.Categorize(ctx, text)
			if err != nil {
				log.Fatalf("Failed to suggest category: %v", err)
			}
			fmt.Printf("Suggested category: %s\n", category)
		}

		if err := env.paperRepo.UpdateOrganization(ctx, id, category, tags, projectID); err != nil {
			log.Fatalf("Failed to update paper: %v", err)
		}
		fmt.Printf("Updated paper %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(categorizePaperCmd)

	categorizePaperCmd.Flags().String("id", "", "Id of the paper to update")
	categorizePaperCmd.Flags().StringP("category", "c", "", "Category to set (suggested by the model when empty)")
	categorizePaperCmd.Flags().StringP("tags", "t", "", "Comma separated tags to set")
	categorizePaperCmd.Flags().StringP("project", "p", "", "Project id to associate")
	categorizePaperCmd.MarkFlagRequired("id")
}
