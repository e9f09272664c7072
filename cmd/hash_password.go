package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/portfolio-simple/utils"
	"github.com/spf13/cobra"
)

var generatePassword bool

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
	Long: `Print a bcrypt hash for ADMIN_PASSWORD_HASH.

The password is taken from the argument, or the first line of stdin.
With --generate a random password is created and printed along with its hash.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHashPassword,
}

func init() {
	hashPasswordCmd.Flags().BoolVar(&generatePassword, "generate", false, "generate a random password")
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	var password string
	switch {
	case generatePassword:
		generated, err := utils.GenerateSecurePassword(20)
		if err != nil {
			return err
		}
		password = generated
		fmt.Fprintf(cmd.OutOrStdout(), "password: %s\n", password)
	case len(args) == 1:
		password = args[0]
	default:
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return errors.New("no password given on the command line or stdin")
		}
		password = strings.TrimRight(line, "\r\n")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
