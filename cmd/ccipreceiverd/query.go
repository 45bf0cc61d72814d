package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// Output formats
const (
	OutputFormatYAML = "yaml"
	OutputFormatJSON = "json"
)

// LatestMessageOutput represents the output format for the latest message
type LatestMessageOutput struct {
	MessageID           string    `yaml:"message_id" json:"message_id"`
	SourceChainSelector uint64    `yaml:"source_chain_selector" json:"source_chain_selector,string"`
	Sender              string    `yaml:"sender" json:"sender"`
	Data                string    `yaml:"data" json:"data"`
	DataLength          uint64    `yaml:"data_length" json:"data_length"`
	TokenCount          uint8     `yaml:"token_count" json:"token_count"`
	ReceivedAt          time.Time `yaml:"received_at" json:"received_at"`
}

// ConfigOutput represents the output format for the receiver config
type ConfigOutput struct {
	Owner     string `yaml:"owner" json:"owner"`
	Router    string `yaml:"router" json:"router"`
	Recipient string `yaml:"recipient" json:"recipient"`
	ProgramID string `yaml:"program_id" json:"program_id"`
}

// BalanceOutput represents the output format for a token account
type BalanceOutput struct {
	Account   string `yaml:"account" json:"account"`
	Mint      string `yaml:"mint" json:"mint"`
	Authority string `yaml:"authority" json:"authority"`
	Amount    string `yaml:"amount" json:"amount"`
	Frozen    bool   `yaml:"frozen" json:"frozen"`
}

func latestMessageCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "latest-message",
		Short: "Show the most recently received message",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), homeFlag)
			if err != nil {
				return err
			}
			defer a.Close()

			latest, err := a.keeper.GetLatestMessage(cmd.Context())
			if err != nil {
				return err
			}

			output := LatestMessageOutput{
				MessageID:           latest.MessageID.String(),
				SourceChainSelector: latest.SourceChainSelector,
				Sender:              latest.Sender.String(),
				Data:                latest.Data.String(),
				DataLength:          latest.DataLength,
				TokenCount:          latest.TokenCount,
				ReceivedAt:          latest.ReceivedAt,
			}
			return printOutput(cmd.OutOrStdout(), output, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", OutputFormatYAML, "Output format (yaml|json)")
	return cmd
}

func showConfigCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "show-config",
		Short: "Show the receiver owner, router and recipient",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), homeFlag)
			if err != nil {
				return err
			}
			defer a.Close()

			cfg, err := a.keeper.GetConfig(cmd.Context())
			if err != nil {
				return err
			}

			output := ConfigOutput{
				Owner:     cfg.Owner.String(),
				Router:    cfg.Router.String(),
				Recipient: cfg.Recipient.String(),
				ProgramID: a.keeper.Params().ProgramID.String(),
			}
			return printOutput(cmd.OutOrStdout(), output, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", OutputFormatYAML, "Output format (yaml|json)")
	return cmd
}

func balanceCmd() *cobra.Command {
	var outputFormat, account, mint, wallet string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show a token account balance",
		Long: `Show a token account balance. Pass --account for a specific token account,
--mint alone for the program holding account of that mint, or --mint with
--wallet for the wallet's associated token account.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), homeFlag)
			if err != nil {
				return err
			}
			defer a.Close()

			address, err := resolveAccount(a, account, mint, wallet)
			if err != nil {
				return err
			}
			acc, err := a.ledger.Account(cmd.Context(), address)
			if err != nil {
				return err
			}

			output := BalanceOutput{
				Account:   acc.Address,
				Mint:      acc.Mint,
				Authority: acc.Authority,
				Amount:    acc.Amount,
				Frozen:    acc.Frozen,
			}
			return printOutput(cmd.OutOrStdout(), output, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", OutputFormatYAML, "Output format (yaml|json)")
	cmd.Flags().StringVar(&account, "account", "", "Token account (base58)")
	cmd.Flags().StringVar(&mint, "mint", "", "Token mint (base58)")
	cmd.Flags().StringVar(&wallet, "wallet", "", "Wallet owning the associated token account (base58)")
	return cmd
}

func resolveAccount(a *app, account, mint, wallet string) (solana.PublicKey, error) {
	if account != "" {
		return solana.PublicKeyFromBase58(account)
	}
	if mint == "" {
		return solana.PublicKey{}, fmt.Errorf("either --account or --mint is required")
	}
	mintKey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid mint: %w", err)
	}
	if wallet == "" {
		holding, _, err := a.keeper.HoldingAccount(mintKey)
		return holding, err
	}
	walletKey, err := solana.PublicKeyFromBase58(wallet)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid wallet: %w", err)
	}
	ata, _, err := solana.FindAssociatedTokenAddress(walletKey, mintKey)
	return ata, err
}

// printOutput prints the output in the specified format
func printOutput(w io.Writer, data interface{}, format string) error {
	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		return encoder.Encode(data)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
