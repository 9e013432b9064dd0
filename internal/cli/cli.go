package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rootCmd = &cobra.Command{
		Use:   "indyres",
		Short: "resolve did:indy DIDs and DID URLs against an indy ledger",
	}
)

func Execute() error {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase verbosity")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	regCommands()

	return rootCmd.Execute()
}
