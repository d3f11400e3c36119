package groups

import (
	"wahlfang/contexts/election-management/live-update-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/live-update-service/domain/errors"
	livev1 "wahlfang/contracts/gen/live/v1"
)

// GroupOf derives the notification group of a principal. Voters and
// spectators share their session's group; managers get a private group.
func GroupOf(principal entities.Principal) (string, error) {
	if !principal.Valid() {
		return "", domainerrors.ErrInvalidPrincipal
	}
	switch principal.Kind {
	case entities.PrincipalVoter, entities.PrincipalSpectator:
		return livev1.SessionGroup(principal.SessionID), nil
	case entities.PrincipalManager:
		return livev1.ManagerGroup(principal.ManagerID), nil
	default:
		return "", domainerrors.ErrInvalidPrincipal
	}
}

// Authorize checks that the principal may connect on the audience's
// endpoint.
func Authorize(principal entities.Principal, audience entities.Audience) error {
	switch audience {
	case entities.AudienceVoter:
		if principal.Kind == entities.PrincipalVoter || principal.Kind == entities.PrincipalSpectator {
			return nil
		}
	case entities.AudienceManager:
		if principal.Kind == entities.PrincipalManager {
			return nil
		}
	}
	return domainerrors.ErrWrongAudience
}
