package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeisme/tunevault/pkg/internal/storage/kv"
)

var (
	kvCmd = &cobra.Command{
		Use:   "kv",
		Short: "Key-value cache related commands",
	}

	kvListCmd = &cobra.Command{
		Use:   "ls",
		Short: "list all registered kv backends",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Registered kv backends:")
			for _, kvType := range kv.GetRegisteredKVTypes() {
				fmt.Fprintln(cmd.OutOrStdout(), " - "+string(kvType))
			}
		},
	}
)

// registerKVCommands 注册缓存相关命令.
func registerKVCommands() {
	rootCmd.AddCommand(kvCmd)

	kvCmd.AddCommand(kvListCmd)
}
