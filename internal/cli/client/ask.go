package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ResolveRequest represents the resolve API request.
type ResolveRequest struct {
	Query string `json:"query"`
}

// AnswerResponse represents a resolved answer.
type AnswerResponse struct {
	Text       string   `json:"text"`
	Source     string   `json:"source"`
	Confidence *float64 `json:"confidence"`
	Disclaimer string   `json:"disclaimer,omitempty"`
}

// AskCmd creates the ask command.
func AskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <query>",
		Short: "Resolve a query",
		Long:  "Sends a query to the resolution pipeline and prints the answer with its provenance.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			return runAsk(cmd, strings.Join(args, " "), outputJSON)
		},
	}

	return cmd
}

func runAsk(cmd *cobra.Command, query string, outputJSON bool) error {
	apiClient, err := NewAPIClientWithCmd(cmd)
	if err != nil {
		return err
	}

	resp, err := apiClient.Post("/resolve", ResolveRequest{Query: query})
	if err != nil {
		return err
	}

	var answer AnswerResponse
	if err := json.Unmarshal(resp.Data, &answer); err != nil {
		return fmt.Errorf("failed to parse answer: %w", err)
	}

	if outputJSON {
		out, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(answer.Text)
	if answer.Disclaimer != "" {
		fmt.Printf("\n%s\n", answer.Disclaimer)
	}
	if answer.Confidence != nil {
		fmt.Printf("\n(source: %s, confidence: %.2f)\n", answer.Source, *answer.Confidence)
	} else {
		fmt.Printf("\n(source: %s)\n", answer.Source)
	}
	return nil
}
