package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"clinica/internal/domain/service"
	mockSvc "clinica/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAsyncDispatcher_SendReturnsImmediately(t *testing.T) {
	inner := mockSvc.NewMockNotifier(t)
	dispatcher := newAsyncDispatcherWith(inner, discardLogger())

	delivered := make(chan *service.Notification, 1)
	inner.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.Notification")).
		Run(func(sendCtx context.Context, notification *service.Notification) {
			// The background send carries its own deadline, detached from the caller.
			_, hasDeadline := sendCtx.Deadline()
			assert.True(t, hasDeadline)
			delivered <- notification
		}).
		Return(nil)

	notification := &service.Notification{
		Kind:      service.NotificationReminder,
		Recipient: "paciente@example.com",
		Context:   map[string]string{"token": "deep-link-value"},
	}
	require.NoError(t, dispatcher.Send(context.Background(), notification))

	select {
	case got := <-delivered:
		assert.Equal(t, notification, got)
	case <-time.After(2 * time.Second):
		t.Fatal("notification never reached the transport")
	}
}

func TestAsyncDispatcher_DeliversAfterCallerContextEnds(t *testing.T) {
	inner := mockSvc.NewMockNotifier(t)
	dispatcher := newAsyncDispatcherWith(inner, discardLogger())

	delivered := make(chan struct{}, 1)
	inner.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.Notification")).
		Run(func(_ context.Context, _ *service.Notification) {
			delivered <- struct{}{}
		}).
		Return(nil)

	// A committed state change must still produce its notice even when the
	// triggering request is already gone.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, dispatcher.Send(ctx, &service.Notification{
		Kind:      service.NotificationAutoCancelNotice,
		Recipient: "paciente@example.com",
	}))

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("notification never reached the transport")
	}
}

func TestAsyncDispatcher_SwallowsTransportErrors(t *testing.T) {
	inner := mockSvc.NewMockNotifier(t)
	dispatcher := newAsyncDispatcherWith(inner, discardLogger())

	attempted := make(chan struct{}, 1)
	inner.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.Notification")).
		Run(func(_ context.Context, _ *service.Notification) {
			attempted <- struct{}{}
		}).
		Return(errors.New("webhook unreachable"))

	err := dispatcher.Send(context.Background(), &service.Notification{
		Kind:      service.NotificationActivationLink,
		Recipient: "paciente@example.com",
	})
	require.NoError(t, err)

	select {
	case <-attempted:
	case <-time.After(2 * time.Second):
		t.Fatal("notification never reached the transport")
	}
}
