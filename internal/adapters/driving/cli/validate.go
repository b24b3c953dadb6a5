package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mailctl/internal/core/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate [address]...",
	Short: "Validate email addresses",
	Long: `Validates one or more email addresses and prints their normalised
forms (trimmed, domain lowercased). Multiple addresses can also be given
as a single semicolon-separated argument.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var validateAllowEmpty bool

func init() {
	validateCmd.Flags().BoolVar(&validateAllowEmpty, "allow-empty", false, "Treat empty input as valid")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, ";")

	normalised, err := domain.ValidateAddresses(input, validateAllowEmpty)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	for _, addr := range normalised {
		cmd.Println(addr)
	}
	if len(normalised) == 0 {
		cmd.Println("(empty)")
	}
	return nil
}
