package cmd

import (
	"fmt"
	"time"

	"github.com/SscSPs/quote_pricing_app/internal/apperrors"
	"github.com/SscSPs/quote_pricing_app/internal/dto"
	"github.com/spf13/cobra"
)

var (
	quoteSKU      string
	quoteQty      int
	quoteRegion   string
	quoteCustomer string
	quoteCurrency string
	quoteAt       string
)

// quoteCmd prices a single request
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a single SKU and quantity",
	Args:  cobra.NoArgs,
	RunE:  runQuote,
}

func init() {
	quoteCmd.Flags().StringVar(&quoteSKU, "sku", "", "product SKU (required)")
	quoteCmd.Flags().IntVar(&quoteQty, "qty", 0, "quantity (required)")
	quoteCmd.Flags().StringVar(&quoteRegion, "region", "", "request region")
	quoteCmd.Flags().StringVar(&quoteCustomer, "customer", "", "customer id")
	quoteCmd.Flags().StringVar(&quoteCurrency, "currency", "", "target currency (ISO 4217)")
	quoteCmd.Flags().StringVar(&quoteAt, "at", "", "pricing instant, RFC 3339 (default now)")
	_ = quoteCmd.MarkFlagRequired("sku")
	_ = quoteCmd.MarkFlagRequired("qty")
}

func runQuote(cmd *cobra.Command, _ []string) error {
	req := dto.QuoteRequest{SKU: quoteSKU, Quantity: quoteQty}
	if quoteRegion != "" {
		req.Region = &quoteRegion
	}
	if quoteCustomer != "" {
		req.Customer = &quoteCustomer
	}
	if quoteCurrency != "" {
		req.TargetCurrency = &quoteCurrency
	}
	if quoteAt != "" {
		at, err := time.Parse(time.RFC3339, quoteAt)
		if err != nil {
			return fmt.Errorf("invalid --at %q: %w", quoteAt, err)
		}
		req.At = &at
	}

	svc, closeFn, err := newQuoteService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	result, err := svc.Quote(cmd.Context(), req.ToDomain())
	if err != nil {
		return fmt.Errorf("%s: %s", apperrors.KindOf(err), apperrors.PublicMessage(err))
	}
	return writeJSON(cmd.OutOrStdout(), result)
}
