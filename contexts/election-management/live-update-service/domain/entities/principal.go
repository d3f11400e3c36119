package entities

type PrincipalKind string

const (
	PrincipalVoter     PrincipalKind = "voter"
	PrincipalManager   PrincipalKind = "manager"
	PrincipalSpectator PrincipalKind = "spectator"
)

// Principal is an authenticated identity. Kind is the tag; only the ids
// belonging to that kind are set:
//
//	voter:     VoterID, SessionID
//	manager:   ManagerID
//	spectator: SessionID
type Principal struct {
	Kind      PrincipalKind
	VoterID   int64
	ManagerID int64
	SessionID int64
}

func VoterPrincipal(voterID int64, sessionID int64) Principal {
	return Principal{Kind: PrincipalVoter, VoterID: voterID, SessionID: sessionID}
}

func ManagerPrincipal(managerID int64) Principal {
	return Principal{Kind: PrincipalManager, ManagerID: managerID}
}

func SpectatorPrincipal(sessionID int64) Principal {
	return Principal{Kind: PrincipalSpectator, SessionID: sessionID}
}

func (p Principal) Valid() bool {
	switch p.Kind {
	case PrincipalVoter:
		return p.VoterID > 0 && p.SessionID > 0
	case PrincipalManager:
		return p.ManagerID > 0
	case PrincipalSpectator:
		return p.SessionID > 0
	default:
		return false
	}
}

// SubjectID is the id the principal is known by in issued tokens.
func (p Principal) SubjectID() int64 {
	switch p.Kind {
	case PrincipalVoter:
		return p.VoterID
	case PrincipalManager:
		return p.ManagerID
	default:
		return p.SessionID
	}
}
