package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aliskhannn/question-desk/internal/config"
	"github.com/aliskhannn/question-desk/internal/repository"
	"github.com/aliskhannn/question-desk/internal/service"
)

type rootOptions struct {
	backendURL string
	timeout    time.Duration

	questions *service.QuestionService
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "questionctl",
		Short: "Query and add questions on the question backend",
		Long: `questionctl talks to the question backend over HTTP.

Available subcommands:
  list - Print every question
  get  - Print one question by ID
  add  - Create a question`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.backendURL, "backend-url", "", "question backend base URL (default from config or BACKEND_URL)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "per-request timeout (default from config)")

	cmd.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newAddCmd(opts),
	)

	return cmd
}

// init resolves the backend settings: flags win over config and environment.
func (o *rootOptions) init() error {
	baseURL, timeout := o.backendURL, o.timeout

	if baseURL == "" || timeout == 0 {
		_ = godotenv.Load()

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if baseURL == "" {
			baseURL = cfg.Backend.BaseURL
		}
		if timeout == 0 {
			timeout = cfg.Backend.Timeout
		}
	}

	repo := repository.NewQuestionRepository(repository.Options{
		BaseURL:   baseURL,
		Timeout:   timeout,
		UserAgent: "questionctl",
	})
	o.questions = service.NewQuestionService(repo)

	return nil
}
