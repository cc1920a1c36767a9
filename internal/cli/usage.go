package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show this month's usage against the plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := apiClient.Usage(context.Background())
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(status)
			}

			fmt.Printf("Plan:  %s\n", status.Plan)
			fmt.Printf("Month: %s\n\n", status.Month)

			fmt.Printf("Feedback requests: %d used, %s\n",
				status.FeedbackRequestsUsed, formatRemaining(status.RemainingFeedbackRequests))
			fmt.Printf("Social shares:     %d used, %s\n",
				status.SocialSharesUsed, formatRemaining(status.RemainingSocialShares))
			fmt.Printf("Platforms:         %s\n", strings.Join(status.AllowedPlatforms, ", "))
			return nil
		},
	}
}

func formatRemaining(n int) string {
	if n < 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%d remaining", n)
}
