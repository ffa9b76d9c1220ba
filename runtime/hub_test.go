package runtime

import (
	"candidate-notes/domain"
	"candidate-notes/errors"
	"candidate-notes/mocks"
	"candidate-notes/sink"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHub(t *testing.T) (*Hub, *mocks.MockIGatekeeper, *SessionRegistry, *RoomTable) {
	ctrl := gomock.NewController(t)
	gatekeeper := mocks.NewMockIGatekeeper(ctrl)
	sessions, rooms := newTestTable()
	return NewHub(testLogger(), gatekeeper, sessions, rooms), gatekeeper, sessions, rooms
}

func TestHub_OnConnect(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	hub, gatekeeper, sessions, _ := newTestHub(t)
	dana := domain.User{ID: "u-dana", Name: "dana"}
	gatekeeper.EXPECT().Validate(gomock.Any(), "good-token").Return(dana, nil)

	connID, user, err := hub.OnConnect(ctx, "good-token", "firefox", &recordingSink{})

	req.NoError(err)
	req.NotEmpty(connID)
	req.Equal(dana, user)
	req.Equal(1, sessions.Count(dana.ID))
}

func TestHub_OnConnect_Rejected_Leaves_No_State(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	hub, gatekeeper, sessions, _ := newTestHub(t)
	gatekeeper.EXPECT().Validate(gomock.Any(), "expired").Return(domain.User{}, errors.ErrInvalidCredential)

	connID, _, err := hub.OnConnect(ctx, "expired", "firefox", &recordingSink{})

	req.ErrorIs(err, errors.ErrAuthRejected)
	req.Empty(connID)
	req.Zero(sessions.OnlineUsers())
}

func TestHub_OnDisconnect_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	hub, gatekeeper, sessions, rooms := newTestHub(t)
	dana := domain.User{ID: "u-dana", Name: "dana"}
	gatekeeper.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(dana, nil).Times(2)
	connSink := sink.NewConnectionSink(testLogger(), 4, 10*time.Millisecond)

	c1, _, err := hub.OnConnect(ctx, "token", "tab-1", connSink)
	req.NoError(err)
	c2, _, err := hub.OnConnect(ctx, "token", "tab-2", &recordingSink{})
	req.NoError(err)
	req.NoError(hub.JoinCandidateRoom(c1, "42"))
	req.NoError(hub.JoinOwnRoom(c1, dana.ID))
	req.NoError(hub.JoinOwnRoom(c2, dana.ID))

	// When the first tab disconnects, then its transport reports the closure again
	hub.OnDisconnect(c1)
	hub.OnDisconnect(c1)

	// Then its sink is closed and its memberships are gone
	select {
	case <-connSink.Done():
	default:
		req.Fail("sink should be closed")
	}
	req.Empty(rooms.RoomsOf(c1))
	req.Empty(rooms.Members(domain.CandidateRoom("42")))

	// And the second tab still receives private events
	req.Equal(1, sessions.Count(dana.ID))
	req.Equal([]domain.ConnectionID{c2}, rooms.Members(domain.PrivateRoom(dana.ID)))
}

func TestHub_JoinOwnRoom_With_Foreign_Claim(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	hub, gatekeeper, _, rooms := newTestHub(t)
	mallory := domain.User{ID: "u-mallory", Name: "mallory"}
	gatekeeper.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(mallory, nil)
	conn, _, err := hub.OnConnect(ctx, "token", "curl", &recordingSink{})
	req.NoError(err)

	// When claiming another user's private room
	err = hub.JoinOwnRoom(conn, "u-dana")

	// Then it is refused and the connection stays alive
	req.ErrorIs(err, errors.ErrAuthorizationDenied)
	req.Empty(rooms.Members(domain.PrivateRoom("u-dana")))
	req.ErrorIs(hub.LeaveOwnRoom(conn, "u-dana"), errors.ErrAuthorizationDenied)
	req.NoError(hub.JoinCandidateRoom(conn, "42"))
}

func TestHub_JoinCandidateRoom_Empty_Id(t *testing.T) {
	req := require.New(t)
	hub, _, _, _ := newTestHub(t)

	req.ErrorIs(hub.JoinCandidateRoom("c", ""), errors.ErrInvalidRequest)
}

func TestHub_EvictUser(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	hub, gatekeeper, sessions, _ := newTestHub(t)
	dana := domain.User{ID: "u-dana", Name: "dana"}
	gatekeeper.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(dana, nil).Times(3)
	for i := 0; i < 3; i++ {
		_, _, err := hub.OnConnect(ctx, "token", "tab", &recordingSink{})
		req.NoError(err)
	}

	req.Equal(3, hub.EvictUser(dana.ID))
	req.Zero(sessions.Count(dana.ID))
}
