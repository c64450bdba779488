package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hirelens/interview-cli/internal/domain"
	"github.com/hirelens/interview-cli/internal/log"
	"github.com/hirelens/interview-cli/internal/ports/mocks"
)

func validCredential() domain.Credential {
	return domain.Credential{Token: "tok-1", ServerURL: "wss://media.hirelens.test"}
}

func TestFlowControllerStartsFreshWithoutCachedCredential(t *testing.T) {
	creds := mocks.NewMockCredentialStore(t)
	devices := mocks.NewMockMediaDevices(t)
	creds.EXPECT().Load(mock.Anything).Return(domain.Credential{}, domain.ErrNoCredential)

	f, point := NewFlowController(context.Background(), creds, devices, log.WithComponent("test"))

	assert.Equal(t, StartFresh, point)
	assert.Equal(t, domain.FlowAuth, f.Current())
}

func TestFlowControllerResumesWithCachedCredential(t *testing.T) {
	creds := mocks.NewMockCredentialStore(t)
	devices := mocks.NewMockMediaDevices(t)
	creds.EXPECT().Load(mock.Anything).Return(validCredential(), nil)

	f, point := NewFlowController(context.Background(), creds, devices, log.WithComponent("test"))

	assert.Equal(t, StartResume, point)
	assert.Equal(t, domain.FlowGuidelines, f.Current())

	cred, err := f.Credential()
	require.NoError(t, err)
	assert.Equal(t, validCredential(), cred)
}

func TestFlowControllerRejectsIllegalTransition(t *testing.T) {
	creds := mocks.NewMockCredentialStore(t)
	devices := mocks.NewMockMediaDevices(t)
	creds.EXPECT().Load(mock.Anything).Return(domain.Credential{}, domain.ErrNoCredential)

	f, _ := NewFlowController(context.Background(), creds, devices, log.WithComponent("test"))

	err := f.Transition(context.Background(), domain.FlowInterviewActive)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.FlowAuth, f.Current())
}

func TestFlowControllerAcquiresDevicesEnteringVerification(t *testing.T) {
	creds := mocks.NewMockCredentialStore(t)
	devices := mocks.NewMockMediaDevices(t)
	creds.EXPECT().Load(mock.Anything).Return(validCredential(), nil)

	camera := &fakeStream{live: true}
	devices.EXPECT().AcquireCamera(mock.Anything).Return(camera, nil).Once()

	f, _ := NewFlowController(context.Background(), creds, devices, log.WithComponent("test"))
	ctx := context.Background()

	require.NoError(t, f.Transition(ctx, domain.FlowVerificationInstructions))
	assert.Nil(t, f.Camera())

	require.NoError(t, f.Transition(ctx, domain.FlowVerificationReady))
	assert.Same(t, camera, f.Camera().(*fakeStream))

	// Moving within device states must not re-acquire.
	require.NoError(t, f.Transition(ctx, domain.FlowVerificationRecording))
	require.NoError(t, f.Transition(ctx, domain.FlowVerificationCompleted))
}

func TestFlowControllerPermissionDenialBlocksTransition(t *testing.T) {
	creds := mocks.NewMockCredentialStore(t)
	devices := mocks.NewMockMediaDevices(t)
	creds.EXPECT().Load(mock.Anything).Return(validCredential(), nil)
	devices.EXPECT().AcquireCamera(mock.Anything).Return(nil, domain.ErrPermissionDenied).Once()

	f, _ := NewFlowController(context.Background(), creds, devices, log.WithComponent("test"))
	ctx := context.Background()

	require.NoError(t, f.Transition(ctx, domain.FlowVerificationInstructions))

	err := f.Transition(ctx, domain.FlowVerificationReady)
	require.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.Equal(t, domain.FlowVerificationInstructions, f.Current())

	// A retry after the candidate grants permission proceeds.
	camera := &fakeStream{live: true}
	devices.EXPECT().AcquireCamera(mock.Anything).Return(camera, nil).Once()
	require.NoError(t, f.Transition(ctx, domain.FlowVerificationReady))
}

func TestFlowControllerInterviewActiveRequiresCredential(t *testing.T) {
	creds := mocks.NewMockCredentialStore(t)
	devices := mocks.NewMockMediaDevices(t)
	creds.EXPECT().Load(mock.Anything).Return(domain.Credential{}, domain.ErrNoCredential)

	camera := &fakeStream{live: true}
	devices.EXPECT().AcquireCamera(mock.Anything).Return(camera, nil).Once()

	f, _ := NewFlowController(context.Background(), creds, devices, log.WithComponent("test"))
	ctx := context.Background()

	require.NoError(t, f.Transition(ctx, domain.FlowGuidelines))
	require.NoError(t, f.Transition(ctx, domain.FlowVerificationInstructions))
	require.NoError(t, f.Transition(ctx, domain.FlowVerificationReady))
	require.NoError(t, f.Transition(ctx, domain.FlowVerificationRecording))
	require.NoError(t, f.Transition(ctx, domain.FlowVerificationCompleted))

	err := f.Transition(ctx, domain.FlowInterviewActive)
	require.ErrorIs(t, err, domain.ErrNoCredential)
	assert.Equal(t, domain.FlowVerificationCompleted, f.Current())

	creds.EXPECT().Save(mock.Anything, validCredential()).Return(nil)
	require.NoError(t, f.SetCredential(ctx, validCredential()))
	require.NoError(t, f.Transition(ctx, domain.FlowInterviewActive))
}

func TestFlowControllerReleasesStreamsLeavingDeviceStates(t *testing.T) {
	creds := mocks.NewMockCredentialStore(t)
	devices := mocks.NewMockMediaDevices(t)
	creds.EXPECT().Load(mock.Anything).Return(validCredential(), nil)

	camera := &fakeStream{live: true}
	screen := &fakeStream{live: true}
	devices.EXPECT().AcquireCamera(mock.Anything).Return(camera, nil).Once()
	devices.EXPECT().AcquireScreen(mock.Anything).Return(screen, nil).Once()

	f, _ := NewFlowController(context.Background(), creds, devices, log.WithComponent("test"))
	ctx := context.Background()

	require.NoError(t, f.Transition(ctx, domain.FlowVerificationInstructions))
	require.NoError(t, f.Transition(ctx, domain.FlowVerificationReady))
	require.NoError(t, f.AcquireScreen(ctx))
	require.NoError(t, f.Transition(ctx, domain.FlowVerificationRecording))
	require.NoError(t, f.Transition(ctx, domain.FlowVerificationCompleted))
	require.NoError(t, f.Transition(ctx, domain.FlowInterviewActive))
	require.NoError(t, f.Transition(ctx, domain.FlowInterviewComplete))

	assert.True(t, camera.wasClosed())
	assert.True(t, screen.wasClosed())
	assert.Nil(t, f.Camera())
	assert.Nil(t, f.Screen())
}

func TestFlowControllerTeardownReleasesDevices(t *testing.T) {
	creds := mocks.NewMockCredentialStore(t)
	devices := mocks.NewMockMediaDevices(t)
	creds.EXPECT().Load(mock.Anything).Return(validCredential(), nil)

	camera := &fakeStream{live: true}
	devices.EXPECT().AcquireCamera(mock.Anything).Return(camera, nil).Once()

	f, _ := NewFlowController(context.Background(), creds, devices, log.WithComponent("test"))
	ctx := context.Background()

	require.NoError(t, f.Transition(ctx, domain.FlowVerificationInstructions))
	require.NoError(t, f.Transition(ctx, domain.FlowVerificationReady))

	f.Teardown()
	assert.True(t, camera.wasClosed())
}

func TestFlowControllerUnreadableCacheStartsFresh(t *testing.T) {
	creds := mocks.NewMockCredentialStore(t)
	devices := mocks.NewMockMediaDevices(t)
	creds.EXPECT().Load(mock.Anything).Return(domain.Credential{}, errors.New("corrupt cache"))

	_, point := NewFlowController(context.Background(), creds, devices, log.WithComponent("test"))
	assert.Equal(t, StartFresh, point)
}
