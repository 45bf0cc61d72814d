package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/pushchain/ccip-receiver/ccipreceiver/api"
	"github.com/pushchain/ccip-receiver/ccipreceiver/config"
	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

func InitRootCmd(rootCmd *cobra.Command) {
	rootCmd.AddCommand(initConfigCmd())
	rootCmd.AddCommand(initializeCmd())
	rootCmd.AddCommand(receiveCmd())
	rootCmd.AddCommand(withdrawCmd())
	rootCmd.AddCommand(fundCmd())
	rootCmd.AddCommand(latestMessageCmd())
	rootCmd.AddCommand(showConfigCmd())
	rootCmd.AddCommand(balanceCmd())
	rootCmd.AddCommand(startCmd())
	rootCmd.AddCommand(versionCmd())
}

func initConfigCmd() *cobra.Command {
	var (
		logLevel  int
		logFormat string
		programID string
		port      int
	)

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the default node config to <home>/config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadDefaultConfig()
			if err != nil {
				return err
			}
			cfg.NodeHome = homeFlag

			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if cmd.Flags().Changed("program-id") {
				cfg.ProgramID = programID
			}
			if cmd.Flags().Changed("query-port") {
				cfg.QueryServerPort = port
			}

			if err := config.Save(cfg, homeFlag); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", homeFlag)
			return nil
		},
	}

	cmd.Flags().IntVar(&logLevel, "log-level", 1, "Log level (0=debug ... 5=panic)")
	cmd.Flags().StringVar(&logFormat, "log-format", "console", "Log format (json|console)")
	cmd.Flags().StringVar(&programID, "program-id", types.DefaultProgramID.String(), "Receiver program id (base58)")
	cmd.Flags().IntVar(&port, "query-port", 8080, "Query server port")
	return cmd
}

func initializeCmd() *cobra.Command {
	var owner, router, recipient string

	cmd := &cobra.Command{
		Use:   "initialize",
		Short: "Set the receiver owner, router and forwarding recipient",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerKey, err := solana.PublicKeyFromBase58(owner)
			if err != nil {
				return fmt.Errorf("invalid owner: %w", err)
			}
			routerKey, err := solana.PublicKeyFromBase58(router)
			if err != nil {
				return fmt.Errorf("invalid router: %w", err)
			}
			var recipientKey solana.PublicKey
			if recipient != "" {
				if recipientKey, err = solana.PublicKeyFromBase58(recipient); err != nil {
					return fmt.Errorf("invalid recipient: %w", err)
				}
			}

			a, err := newApp(cmd.Context(), homeFlag)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.keeper.Initialize(cmd.Context(), ownerKey, routerKey, recipientKey); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "receiver initialized")
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner wallet (base58)")
	cmd.Flags().StringVar(&router, "router", "", "CCIP router program (base58)")
	cmd.Flags().StringVar(&recipient, "recipient", "", "Forwarding recipient wallet (base58, default: owner)")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("router")
	return cmd
}

func receiveCmd() *cobra.Command {
	var caller, messageFile string
	var deriveAccounts bool

	cmd := &cobra.Command{
		Use:   "receive",
		Short: "Deliver a CCIP message from a JSON file as the given caller",
		RunE: func(cmd *cobra.Command, args []string) error {
			callerKey, err := solana.PublicKeyFromBase58(caller)
			if err != nil {
				return fmt.Errorf("invalid caller: %w", err)
			}

			raw, err := os.ReadFile(messageFile)
			if err != nil {
				return fmt.Errorf("failed to read message file: %w", err)
			}
			var file types.MessageFile
			if err := json.Unmarshal(raw, &file); err != nil {
				return fmt.Errorf("failed to parse message file: %w", err)
			}
			msg, err := file.ToMessage()
			if err != nil {
				return err
			}
			keys, err := file.RemainingAccountKeys()
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), homeFlag)
			if err != nil {
				return err
			}
			defer a.Close()

			if deriveAccounts {
				mints := make([]solana.PublicKey, len(msg.TokenTransfers))
				for i, t := range msg.TokenTransfers {
					mints[i] = t.Mint
				}
				if keys, err = a.keeper.RemainingAccountsFor(mints...); err != nil {
					return err
				}
			}

			remaining, err := a.ledger.AccountRefs(cmd.Context(), keys)
			if err != nil {
				return err
			}
			if err := a.keeper.CCIPReceive(cmd.Context(), callerKey, msg, remaining); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "message %s received\n", msg.MessageID)
			return nil
		},
	}

	cmd.Flags().StringVar(&caller, "caller", "", "Invoking program (base58)")
	cmd.Flags().StringVar(&messageFile, "message", "", "Path to the message JSON file")
	cmd.Flags().BoolVar(&deriveAccounts, "derive-accounts", false, "Derive remaining accounts from the message tokens instead of reading them from the file")
	_ = cmd.MarkFlagRequired("caller")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func withdrawCmd() *cobra.Command {
	var caller, mint string
	var amount uint64

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw tokens from a holding account to the owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			callerKey, err := solana.PublicKeyFromBase58(caller)
			if err != nil {
				return fmt.Errorf("invalid caller: %w", err)
			}
			mintKey, err := solana.PublicKeyFromBase58(mint)
			if err != nil {
				return fmt.Errorf("invalid mint: %w", err)
			}

			a, err := newApp(cmd.Context(), homeFlag)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.keeper.WithdrawTokens(cmd.Context(), callerKey, amount, mintKey); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "withdrew %d of %s\n", amount, mintKey)
			return nil
		},
	}

	cmd.Flags().StringVar(&caller, "caller", "", "Signer (base58), must be the owner")
	cmd.Flags().StringVar(&mint, "mint", "", "Token mint (base58)")
	cmd.Flags().Uint64Var(&amount, "amount", 0, "Amount in base units")
	_ = cmd.MarkFlagRequired("caller")
	_ = cmd.MarkFlagRequired("mint")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func fundCmd() *cobra.Command {
	var mint string
	var amount uint64

	cmd := &cobra.Command{
		Use:   "fund",
		Short: "Credit a program holding account (development only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			mintKey, err := solana.PublicKeyFromBase58(mint)
			if err != nil {
				return fmt.Errorf("invalid mint: %w", err)
			}

			a, err := newApp(cmd.Context(), homeFlag)
			if err != nil {
				return err
			}
			defer a.Close()

			params := a.keeper.Params()
			holding, err := a.ledger.OpenHoldingAccount(cmd.Context(), params.ProgramID, mintKey, params.TokenProgram)
			if err != nil {
				return err
			}
			if err := a.ledger.Credit(cmd.Context(), holding, amount); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "credited %d to holding account %s\n", amount, holding)
			return nil
		},
	}

	cmd.Flags().StringVar(&mint, "mint", "", "Token mint (base58)")
	cmd.Flags().Uint64Var(&amount, "amount", 0, "Amount in base units")
	_ = cmd.MarkFlagRequired("mint")
	return cmd
}

func startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the receiver query server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, homeFlag)
			if err != nil {
				return err
			}
			defer a.Close()

			server, err := api.NewServer(a.logger, a.cfg.QueryServerPort, a.keeper, a.ledger, a.registry)
			if err != nil {
				return err
			}
			if err := server.Start(); err != nil {
				return err
			}

			<-ctx.Done()
			a.logger.Info().Msg("shutting down")
			return server.Stop()
		},
	}
}
