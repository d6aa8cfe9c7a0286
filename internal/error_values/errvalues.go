package errorvalues

import "errors"

var (
	ErrUserExists   = errors.New("such user already exists")
	ErrUserNotFound = errors.New("user doesn't exists")
	ErrInvalidToken = errors.New("invalid token")
	ErrValidation   = errors.New("validation failed")

	ErrGoalNotFound = errors.New("goal doesn't exist")

	ErrTeamNotFound        = errors.New("team doesn't exist")
	ErrNotTeamMember       = errors.New("user is not a member of the team")
	ErrAlreadyMember       = errors.New("user is already a member of the team")
	ErrTargetNotMember     = errors.New("user to remove is not a member of the team")
	ErrCannotRemoveCreator = errors.New("cannot remove the team creator")

	ErrEventNotFound        = errors.New("event doesn't exist")
	ErrAlreadyAttending     = errors.New("already attending this event")
	ErrNotAttending         = errors.New("not attending this event")
	ErrOrganizerCannotLeave = errors.New("organizer cannot cancel attendance")

	// Actor is known but lacks rights for the operation
	ErrForbidden = errors.New("not enough permissions")
)
