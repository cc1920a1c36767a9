package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/proofdeck/server/pkg/client"
)

func newRequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Manage feedback requests",
	}

	cmd.AddCommand(newRequestSendCmd())
	cmd.AddCommand(newRequestListCmd())

	return cmd
}

func newRequestSendCmd() *cobra.Command {
	var formID int64
	var email, name, message string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Email a feedback request",
		RunE: func(cmd *cobra.Command, args []string) error {
			if formID == 0 {
				return fmt.Errorf("--form is required")
			}
			if email == "" {
				email = promptInput("Recipient email: ")
			}

			req, err := apiClient.Requests().Send(context.Background(), client.SendRequestRequest{
				FormID:         formID,
				RecipientEmail: email,
				RecipientName:  name,
				Message:        message,
			})
			if err != nil {
				if apiErr, ok := err.(*client.APIError); ok && apiErr.IsQuotaExceeded() {
					return fmt.Errorf("monthly feedback request quota reached. Upgrade to pro for unlimited requests")
				}
				return err
			}

			fmt.Printf("Feedback request sent to %s (ID %d)\n", req.RecipientEmail, req.ID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&formID, "form", 0, "form ID")
	cmd.Flags().StringVar(&email, "email", "", "recipient email")
	cmd.Flags().StringVar(&name, "name", "", "recipient name")
	cmd.Flags().StringVar(&message, "message", "", "personal message included in the email")

	return cmd
}

func newRequestListCmd() *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sent feedback requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := apiClient.Requests().List(context.Background(), client.ListOptions{
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			table := NewTable("ID", "RECIPIENT", "FORM", "STATUS", "SENT")
			for _, r := range result.Data {
				table.AddRow(
					strconv.FormatInt(r.ID, 10),
					truncate(r.RecipientEmail, 30),
					strconv.FormatInt(r.FormID, 10),
					r.Status,
					r.CreatedAt.Format("2006-01-02"),
				)
			}
			table.Render()

			fmt.Printf("\nPage %d of %d (%d requests)\n", result.Page, result.TotalPages, result.TotalItems)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "items per page")

	return cmd
}
