package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/refnav/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize refnav configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that picks a library, its section tree and spec files, and writes a .refnav.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
