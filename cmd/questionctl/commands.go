package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/question-desk/internal/repository"
	"github.com/aliskhannn/question-desk/internal/service"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			questions, err := opts.questions.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch questions: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(questions) == 0 {
				fmt.Fprintln(out, "No questions found.")
				return nil
			}

			for i, q := range questions {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, q)
			}
			return nil
		},
	}
}

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Print one question by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := opts.questions.Get(cmd.Context(), args[0])
			if err != nil {
				var apiErr *repository.APIError
				if errors.As(err, &apiErr) {
					return errors.New(apiErr.Message)
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), q)
			return nil
		},
	}
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	var in service.AddQuestionInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a question",
		Example: `  questionctl add --title "What is ownership?" --content-type text --types "rust, memory"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := opts.questions.Add(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("failed to add a new question: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "question title")
	cmd.Flags().StringVar(&in.ContentType, "content-type", "", "type of content")
	cmd.Flags().StringVar(&in.QuestionTypes, "types", "", "comma-separated question types")

	return cmd
}
