package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ucsb-cs156/crudapi/internal/config"
	"github.com/ucsb-cs156/crudapi/pkg/auth/jwt"
)

type Token struct {
	cmd   *cobra.Command
	name  string
	roles []string
}

// NewToken mints tokens offline with the server's configured secret.
func NewToken() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token --name <user> --role <role>",
		Short: "issue a bearer token",
		Args:  cobra.NoArgs,
	}
	cobra.CheckErr(config.RegisterFlags(cmd.Flags()))

	c := &Token{cmd: cmd}
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run() }
	flags := cmd.Flags()
	flags.StringVar(&c.name, "name", "", "user name carried by the token")
	flags.StringSliceVar(&c.roles, "role", []string{string(jwt.USER)}, "granted roles, USER or ADMIN")
	return cmd
}

func (c *Token) Run() error {
	if c.name == "" {
		return fmt.Errorf("--name is required")
	}

	cfg, err := config.Load(c.cmd.Flags())
	if err != nil {
		return err
	}

	roles := make([]jwt.Role, 0, len(c.roles))
	for _, r := range c.roles {
		role, err := jwt.ParseRole(r)
		if err != nil {
			return err
		}
		roles = append(roles, role)
	}

	token, expiresAt, err := jwt.NewAuthority([]byte(cfg.Auth.Secret), cfg.Auth.TokenTTL).Issue(c.name, roles...)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.cmd.OutOrStdout(), token)
	fmt.Fprintf(c.cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}
