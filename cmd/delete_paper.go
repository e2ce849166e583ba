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

// deletePaperCmd represents the deletePaper command
var deletePaperCmd = &cobra.Command{
	Use:   "delete-paper",
	Short: "Delete a paper, its stored file and its index entries",
	Run: func(cmd *cobra.Command, args []string) {
		id, _ := cmd.Flags().GetString("id")

		ctx := context.Background()
		env, err := buildEnv(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer env.Close(ctx)

		if err := env.ingest.DeletePaper(ctx, id); err != nil {
			log.Fatalf("Failed to delete paper: %v", err)
		}
		fmt.Printf("Deleted paper %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(deletePaperCmd)

	deletePaperCmd.Flags().String("id", "", "Id of the paper to delete")
	deletePaperCmd.MarkFlagRequired("id")
}
