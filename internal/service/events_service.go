package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/internal/repository"
	"github.com/limbo/goalkeeper/pkg/entity"
)

const defaultEventType = "personal"

type EventsService struct {
	eventsRepo repository.EventsRepositoryI
}

func NewEventsService(eventsRepo repository.EventsRepositoryI) *EventsService {
	if eventsRepo == nil {
		log.Fatal("on events service provided nil repos")
	}
	return &EventsService{
		eventsRepo: eventsRepo,
	}
}

type eventWindow struct {
	StartTime time.Time `validate:"required"`
	EndTime   time.Time `validate:"required,gtfield=StartTime"`
}

func (serv *EventsService) CreateEvent(ctx context.Context, userID uuid.UUID, req CreateEventRequest) (*entity.EventWithAttendees, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	eventType := req.EventType
	if eventType == "" {
		eventType = defaultEventType
	}
	event := &entity.Event{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		EventType:   eventType,
		Location:    req.Location,
		MeetingLink: req.MeetingLink,
		OrganizerID: userID,
		TeamID:      req.TeamID,
	}
	err := serv.eventsRepo.Create(ctx, event, req.AttendeeIDs)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTeamNotFound) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return serv.withAttendees(ctx, event)
}

func (serv *EventsService) ListEvents(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*entity.Event, error) {
	events, err := serv.eventsRepo.ListForUser(ctx, userID, from, to)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return events, nil
}

func (serv *EventsService) GetEvent(ctx context.Context, eventID, userID uuid.UUID) (*entity.EventWithAttendees, error) {
	event, err := serv.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != userID {
		attending, err := serv.eventsRepo.IsAttendee(ctx, eventID, userID)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		if !attending {
			return nil, errorvalues.ErrForbidden
		}
	}
	return serv.withAttendees(ctx, event)
}

func (serv *EventsService) UpdateEvent(ctx context.Context, eventID, userID uuid.UUID, req UpdateEventRequest) (*entity.EventWithAttendees, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	event, err := serv.organizedEvent(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = req.Description
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.EventType != nil {
		event.EventType = *req.EventType
	}
	if req.Location != nil {
		event.Location = req.Location
	}
	if req.MeetingLink != nil {
		event.MeetingLink = req.MeetingLink
	}
	if req.TeamID != nil {
		event.TeamID = req.TeamID
	}
	if err = validateStruct(eventWindow{StartTime: event.StartTime, EndTime: event.EndTime}); err != nil {
		return nil, err
	}
	err = serv.eventsRepo.Update(ctx, event, req.AttendeeIDs)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEventNotFound) || errors.Is(err, errorvalues.ErrTeamNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return serv.withAttendees(ctx, event)
}

func (serv *EventsService) DeleteEvent(ctx context.Context, eventID, userID uuid.UUID) error {
	if _, err := serv.organizedEvent(ctx, eventID, userID); err != nil {
		return err
	}
	err := serv.eventsRepo.Delete(ctx, eventID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEventNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (serv *EventsService) Attend(ctx context.Context, eventID, userID uuid.UUID) (*entity.EventWithAttendees, error) {
	event, err := serv.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	err = serv.eventsRepo.AddAttendee(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlreadyAttending) || errors.Is(err, errorvalues.ErrEventNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return serv.withAttendees(ctx, event)
}

func (serv *EventsService) CancelAttendance(ctx context.Context, eventID, userID uuid.UUID) (*entity.EventWithAttendees, error) {
	event, err := serv.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID == userID {
		return nil, errorvalues.ErrOrganizerCannotLeave
	}
	err = serv.eventsRepo.RemoveAttendee(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotAttending) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return serv.withAttendees(ctx, event)
}

func (serv *EventsService) EventsForDay(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.Event, error) {
	from, to := DayRange(date)
	return serv.startingIn(ctx, userID, from, to)
}

func (serv *EventsService) EventsForWeek(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.Event, error) {
	from, to := WeekRange(date)
	return serv.startingIn(ctx, userID, from, to)
}

func (serv *EventsService) EventsForMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month, loc *time.Location) ([]*entity.Event, error) {
	if month < time.January || month > time.December {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("month must be in range 1..12"))
	}
	if loc == nil {
		loc = time.UTC
	}
	from, to := MonthRange(year, month, loc)
	return serv.startingIn(ctx, userID, from, to)
}

func (serv *EventsService) startingIn(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Event, error) {
	events, err := serv.eventsRepo.ListForUserStartingIn(ctx, userID, from, to)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return events, nil
}

func (serv *EventsService) loadEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error) {
	event, err := serv.eventsRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEventNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return event, nil
}

func (serv *EventsService) organizedEvent(ctx context.Context, eventID, userID uuid.UUID) (*entity.Event, error) {
	event, err := serv.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != userID {
		return nil, errorvalues.ErrForbidden
	}
	return event, nil
}

func (serv *EventsService) withAttendees(ctx context.Context, event *entity.Event) (*entity.EventWithAttendees, error) {
	attendees, err := serv.eventsRepo.ListAttendees(ctx, event.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &entity.EventWithAttendees{
		Event:     *event,
		Attendees: attendees,
	}, nil
}
