package domain

import "strings"

const (
	candidateRoomPrefix = "candidate:"
	privateRoomPrefix   = "user:"
)

// RoomID names a broadcast topic.
// A room exists only while at least one connection is joined to it.
type RoomID string

type RoomKind int

const (
	RoomUnknown RoomKind = iota
	RoomCandidate
	RoomPrivate
)

// CandidateRoom is the shared room where notes of a candidate are broadcast.
func CandidateRoom(candidateID string) RoomID {
	return RoomID(candidateRoomPrefix + candidateID)
}

// PrivateRoom is the room only connections owned by userID may join.
func PrivateRoom(userID UserID) RoomID {
	return RoomID(privateRoomPrefix + string(userID))
}

func (r RoomID) Kind() RoomKind {
	switch {
	case strings.HasPrefix(string(r), candidateRoomPrefix):
		return RoomCandidate
	case strings.HasPrefix(string(r), privateRoomPrefix):
		return RoomPrivate
	default:
		return RoomUnknown
	}
}

// Owner returns the identity owning a private room.
func (r RoomID) Owner() (UserID, bool) {
	owner, ok := strings.CutPrefix(string(r), privateRoomPrefix)
	if !ok || owner == "" {
		return "", false
	}
	return UserID(owner), true
}

func (r RoomID) String() string {
	return string(r)
}
