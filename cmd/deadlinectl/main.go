// deadlinectl is the offline extraction helper for the conference deadline
// tracker. It never touches the serving path: it fetches a conference page,
// asks a locally hosted model for deadline data, and prints a suggested
// YAML fragment for manual review and copy-paste into data/conferences.yaml.
//
// Usage:
//
//	deadlinectl extract https://neurips.cc
//	deadlinectl model pull     # one-time local model acquisition
//	deadlinectl model status   # check the runtime and model are available
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"conference-tracker/config"
	extractionUC "conference-tracker/internal/extraction/usecase"
	"conference-tracker/pkg/log"
	"conference-tracker/pkg/ollama"
	"conference-tracker/pkg/webfetch"
)

var (
	flagModel   string
	flagBaseURL string
)

var rootCmd = &cobra.Command{
	Use:           "deadlinectl",
	Short:         "Suggest conference deadline entries using a local language model",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var extractCmd = &cobra.Command{
	Use:   "extract <url>",
	Short: "Extract deadline data from a conference page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		fetcher, err := webfetch.New(webfetch.Config{
			UserAgent:       cfg.Fetch.UserAgent,
			MaxExcerptBytes: cfg.Fetch.MaxExcerptBytes,
			HTTPClient:      &http.Client{Timeout: cfg.Fetch.Timeout},
		})
		if err != nil {
			return err
		}

		llm, err := newLLM(cfg)
		if err != nil {
			return err
		}

		uc := extractionUC.New(logger, fetcher, llm)
		result, err := uc.Extract(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if len(result.Candidates) == 0 {
			fmt.Println("No deadline information found on the page.")
			return nil
		}

		fmt.Println(separator)
		fmt.Println("SUGGESTED YAML (review before adding to conferences.yaml):")
		fmt.Println(separator)
		fmt.Print(result.Suggestion)
		fmt.Println(separator)
		if result.Dropped > 0 {
			fmt.Printf("Note: %d candidate(s) dropped due to invalid dates.\n", result.Dropped)
		}
		fmt.Println("Note: model output may need manual review and correction.")
		fmt.Println("Check dates carefully before adding to conferences.yaml.")
		return nil
	},
}

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Manage the local extraction model",
}

var modelPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download the extraction model into the local runtime",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}

		llm, err := newLLM(cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Pulling %s (this downloads a few GB on first run)...\n", llm.Model())
		if err := llm.Pull(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Model ready.")
		return nil
	},
}

var modelStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the local runtime and model availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}

		llm, err := newLLM(cfg)
		if err != nil {
			return err
		}

		ok, err := llm.HasModel(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("model %q not present locally; run `deadlinectl model pull`", llm.Model())
		}
		fmt.Printf("Model %s is available.\n", llm.Model())
		return nil
	},
}

const separator = "======================================================================"

func setup() (*config.Config, log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// The helper prints its result to stdout; keep log noise down.
	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: "console",
	})
	return cfg, logger, nil
}

func newLLM(cfg *config.Config) (ollama.IOllama, error) {
	model := cfg.LLM.Model
	if flagModel != "" {
		model = flagModel
	}
	baseURL := cfg.LLM.BaseURL
	if flagBaseURL != "" {
		baseURL = flagBaseURL
	}

	return ollama.New(ollama.Config{
		Model:      model,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: cfg.LLM.Timeout},
	})
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "override the configured model name")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "override the local runtime URL")

	modelCmd.AddCommand(modelPullCmd, modelStatusCmd)
	rootCmd.AddCommand(extractCmd, modelCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
