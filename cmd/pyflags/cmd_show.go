package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pyflags/internal/args"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	RunE: func(cmd *cobra.Command, argv []string) error {
		_, _, store, err := openStore()
		if err != nil {
			return err
		}

		tokens := store.Args()
		cfg := args.Decode(tokens)

		for _, f := range args.Fields() {
			value := f.Value(cfg)
			switch f.Kind {
			case args.FieldBool:
				if value == "true" {
					value = "on"
				} else {
					value = "off"
				}
			default:
				if value == "" {
					value = "default"
				}
			}
			fmt.Printf("%-26s %s\n", f.Label, value)
		}

		fmt.Println()
		if len(tokens) == 0 {
			fmt.Println("pytest  (no extra arguments)")
		} else {
			fmt.Println("pytest " + strings.Join(tokens, " "))
		}
		return nil
	},
}
