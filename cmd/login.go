package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var (
		interviewID string
		email       string
		accessCode  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Bootstrap the interview session and cache the credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if interviewID == "" {
				return errors.New("--interview is required")
			}
			if email == "" {
				return errors.New("--email is required")
			}

			bootstrap, err := app.backend.BootstrapSession(cmd.Context(), interviewID, email, accessCode)
			if err != nil {
				return err
			}

			if err := app.creds.Save(cmd.Context(), bootstrap.Credential); err != nil {
				return fmt.Errorf("cache credential: %w", err)
			}

			meta := bootstrap.Interview
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Session ready: %s (%s, %s)\n",
				meta.RoundName, meta.CandidateName, meta.RoundDuration)
			return nil
		},
	}

	cmd.Flags().StringVar(&interviewID, "interview", "", "Interview ID")
	cmd.Flags().StringVar(&email, "email", "", "Candidate email")
	cmd.Flags().StringVar(&accessCode, "code", "", "Access code from the invite")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the cached session credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.creds.Clear(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Session credential cleared")
			return nil
		},
	}
}
