package main

import (
	"github.com/spf13/cobra"

	"github.com/pushchain/ccip-receiver/ccipreceiver/constant"
)

var homeFlag string

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ccipreceiverd",
		Short:         "CCIP token-transfer receiver daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&homeFlag, "home", constant.DefaultNodeHome, "Node home directory")

	InitRootCmd(rootCmd) // add subcommands like `start` and `version`

	return rootCmd
}
