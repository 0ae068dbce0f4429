/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackscout/stackscout/internal/profiles"
)

// profilesCmd lists the profiles available for collection
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List AWS profiles declared in the shared config file",
	Long: `List the profile names found in the AWS shared config file, one per line.

The output is suitable for composing a --profiles argument:

  stackscout --target proj --profiles "$(stackscout profiles | paste -sd, -)"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		if path == "" {
			var err error
			path, err = profiles.SharedConfigFile()
			if err != nil {
				return err
			}
		}

		names, err := profiles.List(path)
		if err != nil {
			return err
		}

		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	profilesCmd.Flags().String("file", "", "shared config file to read (default: ~/.aws/config)")
	rootCmd.AddCommand(profilesCmd)
}
