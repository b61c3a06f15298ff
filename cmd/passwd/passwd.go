package passwd

import (
	"context"
	"fmt"
	"os"

	"github.com/paularlott/cli"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// Command returns the hash-password command for generating the dashboard
// login gate hash.
func Command() *cli.Command {
	return &cli.Command{
		Name:        "hash-password",
		Usage:       "Hash a dashboard password",
		Description: "Prompt for a password and print the bcrypt hash for ORBITD_PASSWORD_HASH",
		Run: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprint(os.Stderr, "Password: ")
			password, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
			if len(password) == 0 {
				return fmt.Errorf("password must not be empty")
			}

			fmt.Fprint(os.Stderr, "Confirm:  ")
			confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return fmt.Errorf("reading confirmation: %w", err)
			}
			if string(password) != string(confirm) {
				return fmt.Errorf("passwords do not match")
			}

			hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hashing password: %w", err)
			}

			fmt.Println(string(hash))
			return nil
		},
	}
}
