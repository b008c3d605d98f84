package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewDelete(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <kind> <key>",
		Short: "delete a record by key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.Resource(cmd, args[0])
			if err != nil {
				return err
			}

			msg, err := res.Delete(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)
			return err
		},
	}
}
