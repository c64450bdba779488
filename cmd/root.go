package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ivc",
		Short:         "Interview client (ivc): run proctored AI interview sessions",
		Long:          "ivc runs the candidate side of a proctored AI interview: session bootstrap, camera and screen verification, the live session with its countdown and face checks, and integrity reporting.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newDevicesCmd(app),
		newSessionCmd(app),
	)

	return rootCmd
}
