package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	confws "github.com/hirelens/interview-cli/internal/adapters/conference/ws"
	"github.com/hirelens/interview-cli/internal/adapters/fullscreen/term"
	sessionview "github.com/hirelens/interview-cli/internal/adapters/render/session"
	"github.com/hirelens/interview-cli/internal/adapters/render/verify"
	"github.com/hirelens/interview-cli/internal/application"
	"github.com/hirelens/interview-cli/internal/domain"
	"github.com/hirelens/interview-cli/internal/log"
)

func newSessionCmd(app *app) *cobra.Command {
	var (
		interviewID string
		email       string
		accessCode  string
	)

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Run the full interview session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if interviewID == "" {
				return errors.New("--interview is required")
			}
			return runSession(cmd, app, interviewID, email, accessCode)
		},
	}

	cmd.Flags().StringVar(&interviewID, "interview", "", "Interview ID")
	cmd.Flags().StringVar(&email, "email", "", "Candidate email")
	cmd.Flags().StringVar(&accessCode, "code", "", "Access code from the invite")

	return cmd
}

func runSession(cmd *cobra.Command, app *app, interviewID, email, accessCode string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	flow, point := application.NewFlowController(ctx, app.creds, app.devices, log.WithComponent("flow"))
	defer flow.Teardown()

	// Bootstrap fetches the round metadata and a fresh credential; a resumed
	// flow still re-bootstraps so the metadata is current.
	bootstrap, err := app.backend.BootstrapSession(ctx, interviewID, email, accessCode)
	if err != nil {
		return err
	}
	meta := bootstrap.Interview

	if err := flow.SetCredential(ctx, bootstrap.Credential); err != nil {
		return err
	}

	if point == application.StartFresh {
		if err := flow.Transition(ctx, domain.FlowGuidelines); err != nil {
			return err
		}
	}

	printGuidelines(out, meta)
	if err := awaitEnter(in, out); err != nil {
		return err
	}

	if err := flow.Transition(ctx, domain.FlowVerificationInstructions); err != nil {
		return err
	}

	printVerificationInstructions(out, meta)
	if err := awaitEnter(in, out); err != nil {
		return err
	}

	// The device check runs before entering the verification states so that a
	// denied permission can be retried in place instead of failing the
	// transition.
	classifier := app.newClassifier()
	defer func() { _ = classifier.Close() }()

	monitor := application.NewFacePresenceMonitor(classifier, nil, nil, log.WithComponent("monitor"))
	verifier := application.NewDeviceVerifier(flow, monitor, meta.RequireScreen)
	verifier.Start(ctx)

	outcome, err := verify.Run(ctx, verifier, out)
	verifier.Stop()
	if err != nil {
		return err
	}
	if outcome != verify.OutcomeContinue {
		return nil
	}

	for _, state := range []domain.FlowState{
		domain.FlowVerificationReady,
		domain.FlowVerificationRecording,
		domain.FlowVerificationCompleted,
		domain.FlowInterviewActive,
	} {
		if err := flow.Transition(ctx, state); err != nil {
			return err
		}
	}

	conference := confws.New(log.WithComponent("conference"))
	pipeline := application.NewIntegrityPipeline(app.backend, nil, meta.InterviewID, log.WithComponent("integrity"))
	watcher := term.NewWatcher()

	session := application.NewActiveSession(flow, conference, classifier, watcher, pipeline, nil, meta, log.WithComponent("session"))
	if err := session.Start(ctx); err != nil {
		return err
	}

	runErr := sessionview.Run(ctx, session, watcher, meta, out)

	session.Stop()
	pipeline.Wait()
	if runErr != nil {
		return runErr
	}

	_, _ = fmt.Fprintln(out, "Interview complete.")
	return nil
}

func printGuidelines(out io.Writer, meta domain.InterviewMetadata) {
	_, _ = fmt.Fprintf(out, "\n%s — %s\n\n", meta.RoundName, meta.RoundDuration)
	_, _ = fmt.Fprintln(out, "Before you begin:")
	_, _ = fmt.Fprintln(out, "  - Find a quiet, well-lit room and sit facing the camera.")
	_, _ = fmt.Fprintln(out, "  - Stay in fullscreen for the whole interview.")
	_, _ = fmt.Fprintln(out, "  - Keep your face visible; obstructions are reported.")
	if meta.RequireScreen {
		_, _ = fmt.Fprintln(out, "  - This round requires sharing your screen.")
	}
}

func printVerificationInstructions(out io.Writer, meta domain.InterviewMetadata) {
	_, _ = fmt.Fprintln(out, "\nNext we check your camera"+screenSuffix(meta)+".")
	_, _ = fmt.Fprintln(out, "Your browser or OS may ask for permission; please allow it.")
}

func screenSuffix(meta domain.InterviewMetadata) string {
	if meta.RequireScreen {
		return " and screen sharing"
	}
	return ""
}

func awaitEnter(in *bufio.Reader, out io.Writer) error {
	_, _ = fmt.Fprint(out, "\nPress enter to continue... ")
	_, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
