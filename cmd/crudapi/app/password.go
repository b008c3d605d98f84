package app

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ucsb-cs156/crudapi/pkg/auth/jwt"
)

type HashPassword struct {
	cmd   *cobra.Command
	user  string
	roles []string
}

// NewHashPassword prints a bare hash, or with --user a complete AUTH_USERS
// line for a .env file. The line is single-quoted so the $ separators of the
// hash are not expanded as variables.
func NewHashPassword() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "bcrypt a password for AUTH_USERS, read from stdin when omitted",
		Args:  cobra.MaximumNArgs(1),
	}

	c := &HashPassword{cmd: cmd}
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVar(&c.user, "user", "", "print an AUTH_USERS entry for this user")
	flags.StringSliceVar(&c.roles, "role", []string{string(jwt.USER)}, "roles of the AUTH_USERS entry")
	return cmd
}

func (c *HashPassword) Run(args []string) error {
	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		scanner := bufio.NewScanner(c.cmd.InOrStdin())
		if scanner.Scan() {
			password = scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}
	if password == "" {
		return fmt.Errorf("empty password")
	}

	hash, err := jwt.HashPassword(password)
	if err != nil {
		return err
	}

	if c.user == "" {
		fmt.Fprintln(c.cmd.OutOrStdout(), hash)
		return nil
	}

	roles := ""
	for i, r := range c.roles {
		role, err := jwt.ParseRole(r)
		if err != nil {
			return err
		}
		if i > 0 {
			roles += "+"
		}
		roles += string(role)
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "AUTH_USERS='%s:%s:%s'\n", c.user, roles, hash)
	return nil
}
