package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	password      string
	registerEmail string
)

func passwordOrEnv() (string, error) {
	if password != "" {
		return password, nil
	}
	if p := os.Getenv("GYMLOG_PASSWORD"); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("password missing, use --password or GYMLOG_PASSWORD")
}

var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Log in and keep the session token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pass, err := passwordOrEnv()
		if err != nil {
			return err
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		if err := c.Login(cmd.Context(), args[0], pass); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		if err := writeToken(c.Token()); err != nil {
			return fmt.Errorf("store token: %w", err)
		}
		color.New(color.FgGreen, color.Bold).Printf("logged in as %s\n", args[0])
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register [username]",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pass, err := passwordOrEnv()
		if err != nil {
			return err
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		user, err := c.Register(cmd.Context(), args[0], registerEmail, pass)
		if err != nil {
			return fmt.Errorf("register failed: %w", err)
		}
		if err := writeToken(c.Token()); err != nil {
			return fmt.Errorf("store token: %w", err)
		}
		color.New(color.FgGreen, color.Bold).Printf("registered %s (id %d)\n", user.Username, user.ID)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		if err := c.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}
		if err := writeToken(""); err != nil {
			return fmt.Errorf("remove token: %w", err)
		}
		fmt.Println("logged out")
		return nil
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the logged in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		user, err := c.Me(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s (id %d)\n", color.CyanString(user.Username), user.ID)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{loginCmd, registerCmd} {
		cmd.Flags().StringVarP(&password, "password", "p", "", "password (env GYMLOG_PASSWORD)")
	}
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "optional email")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, meCmd)
}
