package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/proofdeck/server/pkg/client"
)

func newFormCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Manage feedback forms",
	}

	cmd.AddCommand(newFormListCmd())
	cmd.AddCommand(newFormCreateCmd())
	cmd.AddCommand(newFormGetCmd())
	cmd.AddCommand(newFormDeleteCmd())
	cmd.AddCommand(newFormSummaryCmd())
	cmd.AddCommand(newFormExportCmd())
	cmd.AddCommand(newFormResponsesCmd())

	return cmd
}

func newFormListCmd() *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List feedback forms",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := apiClient.Forms().List(context.Background(), client.ListOptions{
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			table := NewTable("ID", "TITLE", "TYPE", "SLUG", "STATUS")
			for _, f := range result.Data {
				table.AddRow(
					strconv.FormatInt(f.ID, 10),
					truncate(f.Title, 40),
					f.QuestionType,
					f.Slug,
					formatActive(f.Active),
				)
			}
			table.Render()

			fmt.Printf("\nPage %d of %d (%d forms)\n", result.Page, result.TotalPages, result.TotalItems)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "items per page")

	return cmd
}

func newFormCreateCmd() *cobra.Command {
	var title, intro, questionType string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a feedback form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				title = promptInput("Title: ")
			}

			f, err := apiClient.Forms().Create(context.Background(), client.CreateFormRequest{
				Title:        title,
				Intro:        intro,
				QuestionType: questionType,
			})
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(f)
			}

			fmt.Printf("Form created (ID %d)\n", f.ID)
			fmt.Printf("Public link: /f/%s\n", f.Slug)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "form title")
	cmd.Flags().StringVar(&intro, "intro", "", "intro text shown above the question")
	cmd.Flags().StringVar(&questionType, "type", "rating", "question type: rating, text, nps, yesno")

	return cmd
}

func newFormGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid form ID: %s", args[0])
			}

			f, err := apiClient.Forms().Get(context.Background(), id)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(f)
			}

			fmt.Printf("ID:       %d\n", f.ID)
			fmt.Printf("Title:    %s\n", f.Title)
			if f.Intro != "" {
				fmt.Printf("Intro:    %s\n", f.Intro)
			}
			fmt.Printf("Type:     %s\n", f.QuestionType)
			fmt.Printf("Slug:     %s\n", f.Slug)
			fmt.Printf("Status:   %s\n", formatActive(f.Active))
			fmt.Printf("Created:  %s\n", f.CreatedAt.Format("2006-01-02 15:04"))
			return nil
		},
	}
}

func newFormDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a form and its responses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid form ID: %s", args[0])
			}

			if err := apiClient.Forms().Delete(context.Background(), id); err != nil {
				return err
			}

			fmt.Println("Form deleted")
			return nil
		},
	}
}

func newFormSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <id>",
		Short: "Show a form's analytics summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid form ID: %s", args[0])
			}

			sum, err := apiClient.Forms().Summary(context.Background(), id)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(sum)
			}

			fmt.Printf("Responses:      %d\n", sum.Total)
			if sum.AverageRating > 0 {
				fmt.Printf("Average rating: %.1f / 5\n", sum.AverageRating)
			}
			if sum.Promoters+sum.Passives+sum.Detractors > 0 {
				fmt.Printf("NPS:            %.0f (%d promoters / %d passives / %d detractors)\n",
					sum.NPSScore, sum.Promoters, sum.Passives, sum.Detractors)
			}
			if sum.YesCount+sum.NoCount > 0 {
				fmt.Printf("Yes:            %.0f%% (%d yes / %d no)\n", sum.YesPercent, sum.YesCount, sum.NoCount)
			}
			return nil
		},
	}
}

func newFormExportCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a form's responses as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid form ID: %s", args[0])
			}

			data, err := apiClient.Forms().ExportCSV(context.Background(), id)
			if err != nil {
				return err
			}

			if outFile == "" {
				_, err = os.Stdout.Write(data)
				return err
			}

			if err := os.WriteFile(outFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}
			fmt.Printf("Exported to %s\n", outFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "file", "f", "", "write CSV to file instead of stdout")

	return cmd
}

func newFormResponsesCmd() *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "responses <id>",
		Short: "List a form's responses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid form ID: %s", args[0])
			}

			result, err := apiClient.Responses().ListByForm(context.Background(), id, client.ListOptions{
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			table := NewTable("ID", "RESPONDENT", "ANSWER", "DATE")
			for _, r := range result.Data {
				name := r.RespondentName
				if name == "" {
					name = "(anonymous)"
				}
				table.AddRow(
					strconv.FormatInt(r.ID, 10),
					truncate(name, 25),
					truncate(formatAnswer(r), 45),
					r.CreatedAt.Format("2006-01-02"),
				)
			}
			table.Render()

			fmt.Printf("\nPage %d of %d (%d responses)\n", result.Page, result.TotalPages, result.TotalItems)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "items per page")

	return cmd
}

func formatAnswer(r client.Response) string {
	switch {
	case r.Rating != nil:
		return fmt.Sprintf("%d/5 stars", *r.Rating)
	case r.NPSScore != nil:
		return fmt.Sprintf("NPS %d/10", *r.NPSScore)
	case r.YesNo != nil:
		if *r.YesNo {
			return "yes"
		}
		return "no"
	default:
		return r.Text
	}
}
