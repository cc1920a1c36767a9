package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/proofdeck/server/pkg/client"
)

func newShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Generate testimonials and track shares",
	}

	cmd.AddCommand(newShareTestimonialCmd())
	cmd.AddCommand(newShareImageCmd())
	cmd.AddCommand(newShareRecordCmd())
	cmd.AddCommand(newShareListCmd())

	return cmd
}

func newShareTestimonialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "testimonial <response-id>",
		Short: "Generate testimonial text from a positive response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid response ID: %s", args[0])
			}

			t, err := apiClient.Shares().Testimonial(context.Background(), id)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(t)
			}

			fmt.Printf("Quote:   %q\n", t.Quote)
			fmt.Printf("Author:  %s\n", t.Author)
			if t.Rating > 0 {
				fmt.Printf("Rating:  %d/5\n", t.Rating)
			}
			fmt.Printf("\nCaption:\n%s\n", t.Caption)
			return nil
		},
	}
}

func newShareImageCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "image <response-id>",
		Short: "Render the testimonial as a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid response ID: %s", args[0])
			}

			data, err := apiClient.Shares().Image(context.Background(), id)
			if err != nil {
				return err
			}

			if outFile == "" {
				outFile = fmt.Sprintf("testimonial-%d.png", id)
			}
			if err := os.WriteFile(outFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}

			fmt.Printf("Image saved to %s\n", outFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "file", "f", "", "output file (default testimonial-<id>.png)")

	return cmd
}

func newShareRecordCmd() *cobra.Command {
	var responseID int64
	var platform, caption string

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a performed social share",
		RunE: func(cmd *cobra.Command, args []string) error {
			if responseID == 0 {
				return fmt.Errorf("--response is required")
			}
			if platform == "" {
				return fmt.Errorf("--platform is required")
			}

			s, err := apiClient.Shares().Record(context.Background(), client.RecordShareRequest{
				ResponseID: responseID,
				Platform:   platform,
				Caption:    caption,
			})
			if err != nil {
				if apiErr, ok := err.(*client.APIError); ok && apiErr.IsQuotaExceeded() {
					return fmt.Errorf("monthly social share quota reached. Upgrade to pro for unlimited shares")
				}
				return err
			}

			fmt.Printf("Share recorded (ID %d, %s)\n", s.ID, s.Platform)
			return nil
		},
	}

	cmd.Flags().Int64Var(&responseID, "response", 0, "response ID")
	cmd.Flags().StringVar(&platform, "platform", "", "platform: facebook, linkedin, twitter, x, instagram")
	cmd.Flags().StringVar(&caption, "caption", "", "caption used for the share")

	return cmd
}

func newShareListCmd() *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded shares",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := apiClient.Shares().List(context.Background(), client.ListOptions{
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			table := NewTable("ID", "RESPONSE", "PLATFORM", "DATE")
			for _, s := range result.Data {
				table.AddRow(
					strconv.FormatInt(s.ID, 10),
					strconv.FormatInt(s.ResponseID, 10),
					s.Platform,
					s.CreatedAt.Format("2006-01-02"),
				)
			}
			table.Render()

			fmt.Printf("\nPage %d of %d (%d shares)\n", result.Page, result.TotalPages, result.TotalItems)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "items per page")

	return cmd
}
