package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriLingo/internal/share"
)

var useCmd = &cobra.Command{
	Use:   "use [profile-name]",
	Short: "Switch to a profile and start the translator",
	Long:  `Make the named profile active, save the config, then open the translator with it.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		mustProfile(cfg, args[0])

		cfg.ActiveProfile = args[0]
		mustSave(cfg)

		runTUI(share.Params{})
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
