package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/quote_pricing_app/internal/apperrors"
	"github.com/SscSPs/quote_pricing_app/internal/dto"
	"github.com/spf13/cobra"
)

var batchFile string

// batchCmd prices every item of a JSON file
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Price a batch of requests read from a JSON file",
	Long: `Reads either {"items":[...]} or a bare JSON array of quote requests
and prints one entry per item, in input order. Use --file - for stdin.`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "JSON file with quote requests (required)")
	_ = batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, _ []string) error {
	raw, err := readBatchFile(cmd, batchFile)
	if err != nil {
		return err
	}
	req, err := parseBatch(raw)
	if err != nil {
		return err
	}

	svc, closeFn, err := newQuoteService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	items, err := svc.QuoteBatch(cmd.Context(), req.ToDomain())
	if err != nil {
		return fmt.Errorf("%s: %s", apperrors.KindOf(err), apperrors.PublicMessage(err))
	}
	return writeJSON(cmd.OutOrStdout(), items)
}

func readBatchFile(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return raw, nil
}

func parseBatch(raw []byte) (dto.BatchQuoteRequest, error) {
	var req dto.BatchQuoteRequest
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &req.Items); err != nil {
			return req, fmt.Errorf("invalid batch file: %w", err)
		}
		return req, nil
	}
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return req, fmt.Errorf("invalid batch file: %w", err)
	}
	return req, nil
}
