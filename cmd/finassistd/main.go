package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloo-solutions/finassist/internal/cli/admin"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "finassistd",
		Short: "FinAssist daemon",
		Long:  "FinAssist daemon for serving BFSI query resolution and managing the vector store",
	}

	rootCmd.AddCommand(admin.ServeCmd())
	rootCmd.AddCommand(admin.RebuildCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
