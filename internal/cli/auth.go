package cli

import (
	"fmt"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Abhinav6284/Planora/internal/demo"
	"github.com/Abhinav6284/Planora/internal/session"
)

func addLogin(topLevel *cobra.Command, a *app) {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the planora server",
		Example: `
planora login --email demo@planora.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return fmt.Errorf("--email is required")
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				b, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Fprintln(cmd.OutOrStdout())
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = string(b)
			}

			client, err := a.gatewayOnly()
			if err != nil {
				return err
			}
			res, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			sess := session.Session{Token: res.Token, User: res.User}
			if err := a.sessions.SaveToken(sess.Token); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			fmt.Fprintf(color.Output, "Logged in as %s <%s>\n", color.GreenString(sess.User.Name), sess.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")

	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.openSessions(); err != nil {
				return err
			}
			if err := a.sessions.Clear(); err != nil {
				return fmt.Errorf("clear session: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addWhoami(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the account the stored token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.local {
				u := demo.User()
				fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", u.Name, u.Email)
				return nil
			}
			client, err := a.gatewayOnly()
			if err != nil {
				return err
			}
			sess := &session.Session{}
			sess.Token, _ = a.sessions.Token()
			if !sess.Authenticated() {
				return fmt.Errorf("not logged in")
			}
			sess.User, err = client.Me(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", sess.User.Name, sess.User.Email)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
