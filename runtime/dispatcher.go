package runtime

import (
	"candidate-notes/contract"
	"candidate-notes/domain"
	"candidate-notes/domain/event"
	"candidate-notes/domain/mention"
	"candidate-notes/errors"
	"candidate-notes/repositories"
	"context"
	stdErrors "errors"
	"log/slog"
	"sync"
)

// Dispatcher turns a freshly written note into real-time events: new_note for
// everyone watching the candidate, new_notification for every mentioned user.
type Dispatcher struct {
	log           *slog.Logger
	users         repositories.IUserRepository
	notes         repositories.INoteRepository
	notifications repositories.INotificationRepository
	populator     repositories.Populator
	broadcaster   contract.IBroadcaster
	sequencer     *keyedMutex
}

func NewDispatcher(log *slog.Logger, store repositories.Store, broadcaster contract.IBroadcaster) *Dispatcher {
	return &Dispatcher{
		log:           log,
		users:         store.Users,
		notes:         store.Notes,
		notifications: store.Notifications,
		populator:     repositories.NewPopulator(store),
		broadcaster:   broadcaster,
		sequencer:     newKeyedMutex(),
	}
}

// OnNoteCreated persists the note and fans it out. Only a failure to store or
// populate the note itself is returned; notification failures are logged and
// never affect other recipients. Every broadcast has completed on return.
// Once the note is committed, cancelling ctx no longer stops the fan-out.
func (d *Dispatcher) OnNoteCreated(ctx context.Context, draft domain.NoteDraft) (domain.PopulatedNote, error) {
	populated, err := d.publishNote(ctx, draft)
	if err != nil {
		return domain.PopulatedNote{}, err
	}
	ctx = context.WithoutCancel(ctx)

	names := mention.Extract(populated.Message)
	if len(names) == 0 {
		return populated, nil
	}

	notified := make(Set[domain.UserID])
	for _, name := range names {
		recipient, ok := d.resolve(ctx, name)
		if !ok {
			continue
		}
		// Two names may resolve to the same user
		if _, done := notified[recipient.ID]; done {
			continue
		}
		notified[recipient.ID] = struct{}{}
		d.notify(ctx, recipient, populated.Note)
	}
	return populated, nil
}

// publishNote stores, populates and broadcasts the note. Notes of the same
// candidate go through it one at a time so room members see them in commit order.
func (d *Dispatcher) publishNote(ctx context.Context, draft domain.NoteDraft) (domain.PopulatedNote, error) {
	unlock := d.sequencer.Lock(draft.CandidateID)
	defer unlock()

	note, err := d.notes.CreateNote(ctx, draft)
	if err != nil {
		d.log.Error("Failed to store note", "candidate_id", draft.CandidateID, "author_id", draft.AuthorID, "error", err)
		return domain.PopulatedNote{}, stdErrors.Join(errors.ErrPersistence, err)
	}
	// A committed note is delivered even if the writer went away
	ctx = context.WithoutCancel(ctx)

	populated, err := d.populator.PopulateNote(ctx, note)
	if err != nil {
		d.log.Error("Failed to populate note", "note_id", note.ID, "error", err)
		return domain.PopulatedNote{}, stdErrors.Join(errors.ErrPersistence, err)
	}

	delivered := d.broadcaster.Broadcast(ctx, domain.CandidateRoom(note.CandidateID), event.NewNote{
		CandidateID: note.CandidateID,
		Note:        populated,
	})
	d.log.Debug("Note broadcast",
		"note_id", note.ID,
		"candidate_id", note.CandidateID,
		"delivered", len(delivered))
	return populated, nil
}

func (d *Dispatcher) resolve(ctx context.Context, name string) (domain.User, bool) {
	user, err := d.users.FindUserByName(ctx, name)
	if stdErrors.Is(err, errors.ErrUserNotFound) {
		d.log.Debug("Mention does not match any user", "name", name)
		return domain.User{}, false
	}
	if err != nil {
		d.log.Error("Failed to resolve mention", "name", name, "error", err)
		return domain.User{}, false
	}
	return user, true
}

func (d *Dispatcher) notify(ctx context.Context, recipient domain.User, note domain.Note) {
	notification, err := d.notifications.CreateNotification(ctx, recipient.ID, note.ID)
	if err != nil {
		d.log.Error("Failed to store notification",
			"recipient_id", recipient.ID,
			"note_id", note.ID,
			"error", err)
		return
	}

	populated, err := d.populator.PopulateNotificationWithNote(ctx, notification, note)
	if err != nil {
		d.log.Error("Failed to populate notification",
			"notification_id", notification.ID,
			"error", err)
		return
	}

	delivered := d.broadcaster.Broadcast(ctx, domain.PrivateRoom(recipient.ID), event.NewNotification{
		RecipientID:  recipient.ID,
		Notification: populated,
	})
	d.log.Debug("Notification broadcast",
		"notification_id", notification.ID,
		"recipient_id", recipient.ID,
		"delivered", len(delivered))
}

// keyedMutex serializes callers sharing a key. Entries are dropped once no
// caller holds or waits for them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

func (k *keyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
