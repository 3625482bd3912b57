// services/errors.go - Typed business errors for the team workflow
package services

// ServiceError carries a stable machine-readable code plus the HTTP status the
// handlers should answer with. The code strings are part of the API contract
// and must not change between releases.
type ServiceError struct {
	Code    string
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

var (
	ErrNameInvalid        = &ServiceError{Code: "NAME_INVALID", Status: 400, Message: "team name must be 3-40 characters"}
	ErrEventNotFound      = &ServiceError{Code: "EVENT_NOT_FOUND", Status: 404, Message: "event not found"}
	ErrEventNotActive     = &ServiceError{Code: "EVENT_NOT_ACTIVE", Status: 400, Message: "event is not active"}
	ErrEventMismatch      = &ServiceError{Code: "EVENT_MISMATCH", Status: 400, Message: "team is scoped to a different event"}
	ErrCodeInvalid        = &ServiceError{Code: "CODE_INVALID", Status: 400, Message: "join code is malformed"}
	ErrTeamNotFound       = &ServiceError{Code: "TEAM_NOT_FOUND", Status: 404, Message: "team not found"}
	ErrCannotJoinOwn      = &ServiceError{Code: "CANNOT_JOIN_OWN_TEAM", Status: 400, Message: "leader cannot join own team"}
	ErrAlreadyInEvent     = &ServiceError{Code: "ALREADY_IN_EVENT_TEAM", Status: 409, Message: "you already have a team for this event"}
	ErrAlreadyInAnother   = &ServiceError{Code: "ALREADY_IN_ANOTHER_TEAM", Status: 409, Message: "leave your current team before joining another"}
	ErrTeamFull           = &ServiceError{Code: "TEAM_FULL", Status: 409, Message: "team has no open slots"}
	ErrForbidden          = &ServiceError{Code: "FORBIDDEN", Status: 403, Message: "only the team leader may do that"}
	ErrNotInTeam          = &ServiceError{Code: "NOT_IN_TEAM", Status: 400, Message: "no matching membership"}
	ErrLeaderCannotLeave  = &ServiceError{Code: "LEADER_CANNOT_LEAVE", Status: 400, Message: "team leader cannot leave the team"}
	ErrNotATeamMember     = &ServiceError{Code: "NOT_A_TEAM_MEMBER", Status: 403, Message: "you are not an accepted member of this team"}
	ErrTeamNotEligible    = &ServiceError{Code: "TEAM_NOT_ELIGIBLE", Status: 400, Message: "team size is outside the allowed range for registration"}
	ErrAlreadyRegistered  = &ServiceError{Code: "ALREADY_REGISTERED", Status: 409, Message: "team already registered for this event"}
	ErrCodeSpaceExhausted = &ServiceError{Code: "SLUG_COLLISION_RETRY_EXHAUSTED", Status: 500, Message: "could not allocate a unique team code"}
)
