/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// synthesizeReportCmd represents the synthesizeReport command
var synthesizeReportCmd = &cobra.Command{
	Use:   "synthesize-report",
	Short: "Synthesize a research report from a user's paper summaries",
	Long: `Collects the stored summaries of every paper the user owns and asks the
model for a single organized report covering common themes, conflicting
findings and unique contributions. Papers whose summary generation failed
are skipped.`,
	Run: func(cmd *cobra.Command, args []string) {
		userID, _ := cmd.Flags().GetString("user")
		output, _ := cmd.Flags().GetString("output")

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
		report, err := env.report.Synthesize(ctx, papers)
		if err != nil {
			log.Fatalf("Failed to synthesize report: %v", err)
		}

		if output != "" {
			if err := os.WriteFile(output, []byte(report), 0644); err != nil {
				log.Fatalf("Failed to write report: %v", err)
			}
			fmt.Printf("Report written to %s\n", output)
			return
		}
		fmt.Println(report)
	},
}

func init() {
	rootCmd.AddCommand(synthesizeReportCmd)

	synthesizeReportCmd.Flags().StringP("user", "u", "", "Id of the owning user")
	synthesizeReportCmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
	synthesizeReportCmd.MarkFlagRequired("user")
}
