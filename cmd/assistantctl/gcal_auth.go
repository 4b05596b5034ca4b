package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"booking-assistant/pkg/gcalendar"
)

const oauthState = "state-token"

func newGcalAuthCommand() *cobra.Command {
	var (
		credentialsPath string
		tokenPath       string
	)

	cmd := &cobra.Command{
		Use:   "gcal-auth [credentials.json]",
		Short: "Authorize Google Calendar access and save token.json",
		Long: `Run once to authorize Google Calendar access with OAuth Desktop credentials.

Open the printed URL, sign in, paste the authorization code and the token is
saved for the server to use. Service account credentials need no token.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 1 {
				credentialsPath = args[0]
			}

			data, err := os.ReadFile(credentialsPath)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", credentialsPath, err)
			}
			oauthCfg, err := gcalendar.OAuthConfigFromJSON(data)
			if err != nil {
				return fmt.Errorf("%q is not an OAuth Desktop credentials file: %w", credentialsPath, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Step 1: open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, oauthCfg.AuthCodeURL(oauthState, oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "Step 2: paste the authorization code and press Enter: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && code == "" {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := oauthCfg.Exchange(ctx, strings.TrimSpace(code))
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nToken saved to %s. Restart the server to pick it up.\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&credentialsPath, "credentials", "google-credentials.json", "OAuth Desktop credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", gcalendar.DefaultTokenPath, "where to write the token")
	return cmd
}
