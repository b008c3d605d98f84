package app

import (
	"maps"

	"github.com/spf13/cobra"
	"github.com/ucsb-cs156/crudapi/pkg/rest/request/client"
)

func NewCreate(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "create <kind> {<name>=<value>}",
		Short: "create a record, all attributes are required",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := attributes(args[1:])
			if err != nil {
				return err
			}
			res, err := opts.Resource(cmd, args[0])
			if err != nil {
				return err
			}

			record, err := res.Create(cmd.Context(), attrs)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), record)
		},
	}
}

// NewUpdate fetches the record first so only the named attributes change.
func NewUpdate(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "update <kind> <key> {<name>=<value>}",
		Short: "change attributes of a record",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := attributes(args[2:])
			if err != nil {
				return err
			}
			res, err := opts.Resource(cmd, args[0])
			if err != nil {
				return err
			}

			current, err := res.Get(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			body := make(client.Record, len(current))
			maps.Copy(body, current)
			for k, v := range attrs {
				body[k] = v
			}

			record, err := res.Update(cmd.Context(), args[1], body)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), record)
		},
	}
}
