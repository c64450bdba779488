package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirelens/interview-cli/internal/adapters/render/verify"
	"github.com/hirelens/interview-cli/internal/application"
	"github.com/hirelens/interview-cli/internal/log"
)

func newDevicesCmd(app *app) *cobra.Command {
	var requireScreen bool

	cmd := &cobra.Command{
		Use:   "devices",
		Short: "Run the camera and screen check without starting a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			flow, _ := application.NewFlowController(ctx, app.creds, app.devices, log.WithComponent("flow"))
			defer flow.Teardown()

			classifier := app.newClassifier()
			defer func() { _ = classifier.Close() }()

			monitor := application.NewFacePresenceMonitor(classifier, nil, nil, log.WithComponent("monitor"))
			verifier := application.NewDeviceVerifier(flow, monitor, requireScreen)
			defer verifier.Stop()

			verifier.Start(ctx)

			outcome, err := verify.Run(ctx, verifier, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if outcome == verify.OutcomeContinue {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Devices look good")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&requireScreen, "screen", false, "Also check screen sharing")

	return cmd
}
