/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
)

// listPapersCmd represents the listPapers command
var listPapersCmd = &cobra.Command{
	Use:   "list-papers",
	Short: "List a user's papers, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		userID, _ := cmd.Flags().GetString("user")

		ctx := context.Background()
		env, err := buildEnv(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer env.Close(ctx)

		papers, err := env.ingest.ListPapers(ctx, userID)
		if err != nil {
			log.Fatalf("Failed to list papers: %v", err)
		}
		if len(papers) == 0 {
			fmt.Println("No papers found")
			return
		}
		for _, paper := range papers {
			created := time.Unix(paper.CreatedAt, 0).Format("2006-01-02")
			fmt.Printf("%s  %s  %s (%s)\n", paper.ID, created, paper.Title, paper.Authors)
		}
	},
}

func init() {
	rootCmd.AddCommand(listPapersCmd)

	listPapersCmd.Flags().StringP("user", "u", "", "Id of the owning user")
	listPapersCmd.MarkFlagRequired("user")
}
