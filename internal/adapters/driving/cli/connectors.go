package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var connectorsCmd = &cobra.Command{
	Use:   "connectors",
	Short: "Inspect installed connectors",
	RunE:  runConnectorsList,
}

var connectorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed connectors",
	RunE:  runConnectorsList,
}

var connectorsExportLogosCmd = &cobra.Command{
	Use:   "export-logos",
	Short: "Write connector logos to disk",
	RunE:  runConnectorsExportLogos,
}

var exportLogosDir string

func init() {
	connectorsExportLogosCmd.Flags().StringVar(&exportLogosDir, "dir", ".", "Directory to write logo files into")

	connectorsCmd.AddCommand(connectorsListCmd)
	connectorsCmd.AddCommand(connectorsExportLogosCmd)
	rootCmd.AddCommand(connectorsCmd)
}

func runConnectorsList(cmd *cobra.Command, _ []string) error {
	if accountDirectory == nil {
		return errors.New("account directory not configured")
	}

	infos, err := accountDirectory.ListAllConnectors(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list connectors: %w", err)
	}

	if len(infos) == 0 {
		cmd.Println("No connectors installed.")
		return nil
	}

	for i := range infos {
		cmd.Printf("%s\n", infos[i].ID)
		cmd.Printf("  %s\n", infos[i].Description)
		if len(infos[i].Logo) > 0 {
			cmd.Printf("  logo: %d bytes\n", len(infos[i].Logo))
		}
	}
	return nil
}

func runConnectorsExportLogos(cmd *cobra.Command, _ []string) error {
	if accountDirectory == nil {
		return errors.New("account directory not configured")
	}

	infos, err := accountDirectory.ListAllConnectors(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list connectors: %w", err)
	}

	if err := os.MkdirAll(exportLogosDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	written := 0
	for i := range infos {
		if len(infos[i].Logo) == 0 {
			continue
		}
		path := filepath.Join(exportLogosDir, fmt.Sprintf("%s.png", infos[i].ID))
		if err := os.WriteFile(path, infos[i].Logo, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		cmd.Printf("Wrote %s\n", path)
		written++
	}

	cmd.Printf("Exported %d logos\n", written)
	return nil
}
