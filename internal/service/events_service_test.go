package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/internal/repository/mocks"
	"github.com/limbo/goalkeeper/internal/service"
	"github.com/limbo/goalkeeper/pkg/entity"
)

func TestCreateEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	eventsRepo := mocks.NewMockEventsRepositoryI(ctrl)
	es := service.NewEventsService(eventsRepo)
	ctx := context.Background()
	uid := uuid.New()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	guest := uuid.New()

	t.Run("default type", func(t *testing.T) {
		eventsRepo.EXPECT().Create(gomock.Any(), gomock.Any(), []uuid.UUID{guest}).
			DoAndReturn(func(_ context.Context, e *entity.Event, _ []uuid.UUID) error {
				assert.Equal(t, "personal", e.EventType)
				assert.Equal(t, uid, e.OrganizerID)
				e.ID = uuid.New()
				return nil
			})
		eventsRepo.EXPECT().ListAttendees(gomock.Any(), gomock.Any()).
			Return([]entity.User{{ID: uid}, {ID: guest}}, nil)
		event, err := es.CreateEvent(ctx, uid, service.CreateEventRequest{
			Title:       "standup",
			StartTime:   start,
			EndTime:     start.Add(15 * time.Minute),
			AttendeeIDs: []uuid.UUID{guest},
		})
		require.NoError(t, err)
		assert.Equal(t, "personal", event.EventType)
		assert.Len(t, event.Attendees, 2)
	})
	t.Run("end before start", func(t *testing.T) {
		_, err := es.CreateEvent(ctx, uid, service.CreateEventRequest{
			Title:     "standup",
			StartTime: start,
			EndTime:   start.Add(-time.Hour),
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("unknown team", func(t *testing.T) {
		teamID := uuid.New()
		eventsRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(errorvalues.ErrTeamNotFound)
		_, err := es.CreateEvent(ctx, uid, service.CreateEventRequest{
			Title:     "retro",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
			EventType: "team",
			TeamID:    &teamID,
		})
		assert.ErrorIs(t, err, errorvalues.ErrTeamNotFound)
	})
}

func TestEventAccess(t *testing.T) {
	ctx := context.Background()
	organizer := uuid.New()
	guest := uuid.New()
	eventID := uuid.New()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	stored := func() *entity.Event {
		return &entity.Event{ID: eventID, Title: "standup", StartTime: start, EndTime: start.Add(time.Hour), EventType: "team", OrganizerID: organizer}
	}
	setup := func(t *testing.T) (*mocks.MockEventsRepositoryI, *service.EventsService) {
		repo := mocks.NewMockEventsRepositoryI(gomock.NewController(t))
		return repo, service.NewEventsService(repo)
	}

	t.Run("get by stranger", func(t *testing.T) {
		repo, es := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), eventID).Return(stored(), nil)
		repo.EXPECT().IsAttendee(gomock.Any(), eventID, guest).Return(false, nil)
		_, err := es.GetEvent(ctx, eventID, guest)
		assert.ErrorIs(t, err, errorvalues.ErrForbidden)
	})
	t.Run("get by attendee", func(t *testing.T) {
		repo, es := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), eventID).Return(stored(), nil)
		repo.EXPECT().IsAttendee(gomock.Any(), eventID, guest).Return(true, nil)
		repo.EXPECT().ListAttendees(gomock.Any(), eventID).Return([]entity.User{{ID: organizer}, {ID: guest}}, nil)
		event, err := es.GetEvent(ctx, eventID, guest)
		require.NoError(t, err)
		assert.Equal(t, eventID, event.ID)
	})
	t.Run("missing event", func(t *testing.T) {
		repo, es := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), eventID).Return(nil, errorvalues.ErrEventNotFound)
		_, err := es.GetEvent(ctx, eventID, organizer)
		assert.ErrorIs(t, err, errorvalues.ErrEventNotFound)
	})
	t.Run("update by attendee", func(t *testing.T) {
		repo, es := setup(t)
		title := "sync"
		repo.EXPECT().GetByID(gomock.Any(), eventID).Return(stored(), nil)
		_, err := es.UpdateEvent(ctx, eventID, guest, service.UpdateEventRequest{Title: &title})
		assert.ErrorIs(t, err, errorvalues.ErrForbidden)
	})
	t.Run("update moves end before start", func(t *testing.T) {
		repo, es := setup(t)
		end := start.Add(-time.Minute)
		repo.EXPECT().GetByID(gomock.Any(), eventID).Return(stored(), nil)
		_, err := es.UpdateEvent(ctx, eventID, organizer, service.UpdateEventRequest{EndTime: &end})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("update keeps attendees", func(t *testing.T) {
		repo, es := setup(t)
		title := "sync"
		repo.EXPECT().GetByID(gomock.Any(), eventID).Return(stored(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), nil).Return(nil)
		repo.EXPECT().ListAttendees(gomock.Any(), eventID).Return([]entity.User{{ID: organizer}}, nil)
		event, err := es.UpdateEvent(ctx, eventID, organizer, service.UpdateEventRequest{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, title, event.Title)
	})
	t.Run("delete by attendee", func(t *testing.T) {
		repo, es := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), eventID).Return(stored(), nil)
		assert.ErrorIs(t, es.DeleteEvent(ctx, eventID, guest), errorvalues.ErrForbidden)
	})
	t.Run("delete by organizer", func(t *testing.T) {
		repo, es := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), eventID).Return(stored(), nil)
		repo.EXPECT().Delete(gomock.Any(), eventID).Return(nil)
		assert.NoError(t, es.DeleteEvent(ctx, eventID, organizer))
	})
}

func TestAttendance(t *testing.T) {
	ctx := context.Background()
	organizer := uuid.New()
	guest := uuid.New()
	eventID := uuid.New()
	stored := &entity.Event{ID: eventID, OrganizerID: organizer}
	setup := func(t *testing.T) (*mocks.MockEventsRepositoryI, *service.EventsService) {
		repo := mocks.NewMockEventsRepositoryI(gomock.NewController(t))
		return repo, service.NewEventsService(repo)
	}

	t.Run("attend", func(t *testing.T) {
		repo, es := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), eventID).Return(stored, nil)
		repo.EXPECT().AddAttendee(gomock.Any(), eventID, guest).Return(nil)
		repo.EXPECT().ListAttendees(gomock.Any(), eventID).Return([]entity.User{{ID: organizer}, {ID: guest}}, nil)
		event, err := es.Attend(ctx, eventID, guest)
		require.NoError(t, err)
		assert.Len(t, event.Attendees, 2)
	})
	t.Run("attend twice", func(t *testing.T) {
		repo, es := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), eventID).Return(stored, nil)
		repo.EXPECT().AddAttendee(gomock.Any(), eventID, guest).Return(errorvalues.ErrAlreadyAttending)
		_, err := es.Attend(ctx, eventID, guest)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyAttending)
	})
	t.Run("organizer can't leave", func(t *testing.T) {
		repo, es := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), eventID).Return(stored, nil)
		_, err := es.CancelAttendance(ctx, eventID, organizer)
		assert.ErrorIs(t, err, errorvalues.ErrOrganizerCannotLeave)
	})
	t.Run("cancel without attending", func(t *testing.T) {
		repo, es := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), eventID).Return(stored, nil)
		repo.EXPECT().RemoveAttendee(gomock.Any(), eventID, guest).Return(errorvalues.ErrNotAttending)
		_, err := es.CancelAttendance(ctx, eventID, guest)
		assert.ErrorIs(t, err, errorvalues.ErrNotAttending)
	})
}

func TestCalendarViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEventsRepositoryI(ctrl)
	es := service.NewEventsService(repo)
	ctx := context.Background()
	uid := uuid.New()
	// Thursday
	date := time.Date(2025, 3, 13, 17, 30, 0, 0, time.UTC)

	t.Run("day", func(t *testing.T) {
		repo.EXPECT().ListForUserStartingIn(gomock.Any(), uid,
			time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		).Return([]*entity.Event{}, nil)
		_, err := es.EventsForDay(ctx, uid, date)
		assert.NoError(t, err)
	})
	t.Run("week", func(t *testing.T) {
		repo.EXPECT().ListForUserStartingIn(gomock.Any(), uid,
			time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
		).Return([]*entity.Event{}, nil)
		_, err := es.EventsForWeek(ctx, uid, date)
		assert.NoError(t, err)
	})
	t.Run("month", func(t *testing.T) {
		repo.EXPECT().ListForUserStartingIn(gomock.Any(), uid,
			time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		).Return([]*entity.Event{{ID: uuid.New()}}, nil)
		events, err := es.EventsForMonth(ctx, uid, 2025, time.March, nil)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})
	t.Run("invalid month", func(t *testing.T) {
		_, err := es.EventsForMonth(ctx, uid, 2025, 13, time.UTC)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}
