package entities

type ActorKind string

const (
	ActorManager   ActorKind = "manager"
	ActorVoter     ActorKind = "voter"
	ActorSpectator ActorKind = "spectator"
)

// Actor is the authenticated caller of a use case. ID is the manager or
// voter id; SessionID is set for voters and spectators.
type Actor struct {
	Kind      ActorKind
	ID        int64
	SessionID int64
}

func ManagerActor(managerID int64) Actor {
	return Actor{Kind: ActorManager, ID: managerID}
}

func VoterActor(voterID int64, sessionID int64) Actor {
	return Actor{Kind: ActorVoter, ID: voterID, SessionID: sessionID}
}

func SpectatorActor(sessionID int64) Actor {
	return Actor{Kind: ActorSpectator, SessionID: sessionID}
}
