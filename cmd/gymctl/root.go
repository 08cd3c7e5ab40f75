package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/2beens/gymlog/pkg/gymclient"
)

var (
	apiURL    string
	tokenPath string
)

var rootCmd = &cobra.Command{
	Use:           "gymctl",
	Short:         "Command line client for the gymlog API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// optional, GYMLOG_URL and GYMLOG_TOKEN may also come from the shell
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		if !cmd.Flags().Changed("url") {
			if envURL := os.Getenv("GYMLOG_URL"); envURL != "" {
				apiURL = envURL
			}
		}
		return nil
	},
}

func init() {
	defaultTokenPath := ""
	if dir, err := os.UserConfigDir(); err == nil {
		defaultTokenPath = filepath.Join(dir, "gymctl", "token")
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "url", "http://localhost:9000", "gymlog API base url (env GYMLOG_URL)")
	rootCmd.PersistentFlags().StringVar(&tokenPath, "token-file", defaultTokenPath, "where the session token is kept")
}

func Execute() error {
	return rootCmd.Execute()
}

func newClient() (*gymclient.Client, error) {
	token := os.Getenv("GYMLOG_TOKEN")
	if token == "" {
		token = readToken()
	}
	return gymclient.New(apiURL, gymclient.WithToken(token))
}

func readToken() string {
	if tokenPath == "" {
		return ""
	}
	raw, err := os.ReadFile(tokenPath)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func writeToken(token string) error {
	if tokenPath == "" {
		return errors.New("no token file path, use --token-file")
	}
	if token == "" {
		if err := os.Remove(tokenPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(tokenPath), 0o700); err != nil {
		return err
	}
	return os.WriteFile(tokenPath, []byte(token+"\n"), 0o600)
}
