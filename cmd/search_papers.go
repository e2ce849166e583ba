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

// searchPapersCmd represents the searchPapers command
var searchPapersCmd = &cobra.Command{
	Use:   "search-papers",
	Short: "Semantic search across all indexed paper chunks",
	Run: func(cmd *cobra.Command, args []string) {
		query, _ := cmd.Flags().GetString("query")
		topK, _ := cmd.Flags().GetInt("top-k")

		ctx := context.Background()
		env, err := buildEnv(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer env.Close(ctx)

		if topK <= 0 {
			topK = env.cfg.SearchTopK
		}
		matches, err := env.ingest.Search(ctx, query, topK)
		if err != nil {
			log.Fatalf("Search failed: %v", err)
		}
		if len(matches) == 0 {
			fmt.Println("No matches found")
			return
		}
		for i, match := range matches {
			fmt.Printf("%d. %s (paper %s, chunk %d, distance %.4f)\n%s\n\n",
				i+1, match.Title, match.PaperID, match.ChunkIndex, match.Distance, match.Content)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchPapersCmd)

	searchPapersCmd.Flags().StringP("query", "q", "", "Natural language search query")
	searchPapersCmd.Flags().IntP("top-k", "k", 0, "Number of chunks to return (default from config)")
	searchPapersCmd.MarkFlagRequired("query")
}
