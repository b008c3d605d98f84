package app

import (
	"github.com/spf13/cobra"
)

func NewGet(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <kind> [<key>]",
		Short: "list all records of a kind, or get one by key",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.Resource(cmd, args[0])
			if err != nil {
				return err
			}

			if len(args) == 1 {
				records, err := res.List(cmd.Context())
				if err != nil {
					return err
				}
				return output(cmd.OutOrStdout(), records)
			}

			record, err := res.Get(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), record)
		},
	}
}
