package commands

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// LoginCmd creates the login command
func LoginCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username>",
		Short: "Log in to the shift-plan service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := strings.TrimSpace(args[0])
			if username == "" {
				return fmt.Errorf("username must not be empty")
			}

			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}

			sess, err := app.Client.Login(app.Ctx, username, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			if err := app.Session.Set(sess.Token, sess.User); err != nil {
				return fmt.Errorf("failed to store session: %w", err)
			}

			app.Logger.Info("logged in", zap.String("username", sess.User.Username))
			fmt.Printf("Logged in as %s\n", sess.User.Username)
			return nil
		},
	}
}

// RegisterCmd creates the register command
func RegisterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "register <username>",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := strings.TrimSpace(args[0])
			if len(username) < 3 {
				return fmt.Errorf("username must be at least 3 characters")
			}

			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}
			if len(password) < 4 {
				return fmt.Errorf("password must be at least 4 characters")
			}
			confirm, err := readPassword("Confirm password: ")
			if err != nil {
				return err
			}
			if password != confirm {
				return fmt.Errorf("passwords do not match")
			}

			sess, err := app.Client.Register(app.Ctx, username, password)
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			if err := app.Session.Set(sess.Token, sess.User); err != nil {
				return fmt.Errorf("failed to store session: %w", err)
			}

			fmt.Printf("Registered and logged in as %s\n", sess.User.Username)
			return nil
		},
	}
}

// LogoutCmd creates the logout command. The local credential is cleared even
// when the backend call fails.
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Sync.Logout(app.Ctx)
			if err := app.Session.Clear(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

// readPassword reads a password from the terminal without echoing it
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}
