package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// StatusResponse represents the status API response.
type StatusResponse struct {
	DatasetEntries int    `json:"dataset_entries"`
	Chunks         int    `json:"chunks"`
	ArtifactPath   string `json:"artifact_path"`
}

// StatusCmd creates the status command.
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show pipeline status",
		Long:  "Shows the loaded tier sizes of a running server.",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			return runStatus(cmd, outputJSON)
		},
	}
}

func runStatus(cmd *cobra.Command, outputJSON bool) error {
	apiClient, err := NewAPIClientWithCmd(cmd)
	if err != nil {
		return err
	}

	resp, err := apiClient.Get("/status")
	if err != nil {
		return err
	}

	var status StatusResponse
	if err := json.Unmarshal(resp.Data, &status); err != nil {
		return fmt.Errorf("failed to parse status: %w", err)
	}

	if outputJSON {
		out, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Dataset entries: %d\n", status.DatasetEntries)
	fmt.Printf("Chunks:          %d\n", status.Chunks)
	fmt.Printf("Artifact:        %s\n", status.ArtifactPath)
	return nil
}
