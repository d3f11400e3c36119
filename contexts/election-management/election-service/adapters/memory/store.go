package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"wahlfang/contexts/election-management/election-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/election-service/domain/errors"
	"wahlfang/contexts/election-management/election-service/ports"
)

// Store is the in-memory repository used by tests and DATABASE_DRIVER=memory.
type Store struct {
	mu sync.RWMutex

	sessions     map[int64]entities.Session
	elections    map[int64]entities.Election
	voters       map[int64]entities.Voter
	applications map[int64]entities.Application
	managers     map[int64]entities.Manager

	nextID   int64
	position map[int64]int
}

func NewStore() *Store {
	return &Store{
		sessions:     make(map[int64]entities.Session),
		elections:    make(map[int64]entities.Election),
		voters:       make(map[int64]entities.Voter),
		applications: make(map[int64]entities.Application),
		managers:     make(map[int64]entities.Manager),
		position:     make(map[int64]int),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) CreateSession(_ context.Context, session entities.Session) (entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.SessionID = s.id()
	session.ManagerIDs = slices.Clone(session.ManagerIDs)
	s.sessions[session.SessionID] = session
	return cloneSession(session), nil
}

func (s *Store) UpdateSession(_ context.Context, session entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.SessionID]; !ok {
		return domainerrors.ErrSessionNotFound
	}
	s.sessions[session.SessionID] = cloneSession(session)
	return nil
}

func (s *Store) DeleteSession(_ context.Context, sessionID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return domainerrors.ErrSessionNotFound
	}
	for id, election := range s.elections {
		if election.SessionID == sessionID {
			s.deleteElectionLocked(id)
		}
	}
	for id, voter := range s.voters {
		if voter.SessionID == sessionID {
			delete(s.voters, id)
		}
	}
	delete(s.sessions, sessionID)
	return nil
}

func (s *Store) GetSession(_ context.Context, sessionID int64) (entities.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return entities.Session{}, domainerrors.ErrSessionNotFound
	}
	return cloneSession(session), nil
}

func (s *Store) GetSessionBySpectatorToken(_ context.Context, token string) (entities.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token = strings.TrimSpace(token)
	for _, session := range s.sessions {
		if token != "" && session.SpectatorToken == token {
			return cloneSession(session), nil
		}
	}
	return entities.Session{}, domainerrors.ErrSessionNotFound
}

func (s *Store) ListSessionsByManager(_ context.Context, managerID int64) ([]entities.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Session, 0)
	for _, session := range s.sessions {
		if session.ManagedBy(managerID) {
			items = append(items, cloneSession(session))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].SessionID < items[j].SessionID })
	return items, nil
}

func (s *Store) CreateElection(_ context.Context, election entities.Election) (entities.Election, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[election.SessionID]; !ok {
		return entities.Election{}, domainerrors.ErrSessionNotFound
	}
	election.ElectionID = s.id()
	election = cloneElection(election)
	s.elections[election.ElectionID] = election
	return cloneElection(election), nil
}

func (s *Store) UpdateElection(_ context.Context, election entities.Election) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elections[election.ElectionID]; !ok {
		return domainerrors.ErrElectionNotFound
	}
	s.elections[election.ElectionID] = cloneElection(election)
	return nil
}

func (s *Store) DeleteElection(_ context.Context, electionID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elections[electionID]; !ok {
		return domainerrors.ErrElectionNotFound
	}
	s.deleteElectionLocked(electionID)
	return nil
}

func (s *Store) deleteElectionLocked(electionID int64) {
	for id, app := range s.applications {
		if app.ElectionID == electionID {
			delete(s.applications, id)
		}
	}
	delete(s.position, electionID)
	delete(s.elections, electionID)
}

func (s *Store) GetElection(_ context.Context, electionID int64) (entities.Election, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	election, ok := s.elections[electionID]
	if !ok {
		return entities.Election{}, domainerrors.ErrElectionNotFound
	}
	return cloneElection(election), nil
}

func (s *Store) ListElectionsBySession(_ context.Context, sessionID int64) ([]entities.Election, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Election, 0)
	for _, election := range s.elections {
		if election.SessionID == sessionID {
			items = append(items, cloneElection(election))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ElectionID < items[j].ElectionID })
	return items, nil
}

func (s *Store) CreateVoter(_ context.Context, voter entities.Voter) (entities.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[voter.SessionID]; !ok {
		return entities.Voter{}, domainerrors.ErrSessionNotFound
	}
	voter.VoterID = s.id()
	voter = cloneVoter(voter)
	s.voters[voter.VoterID] = voter
	return cloneVoter(voter), nil
}

func (s *Store) UpdateVoter(_ context.Context, voter entities.Voter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.voters[voter.VoterID]; !ok {
		return domainerrors.ErrVoterNotFound
	}
	s.voters[voter.VoterID] = cloneVoter(voter)
	return nil
}

func (s *Store) DeleteVoter(_ context.Context, voterID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.voters[voterID]; !ok {
		return domainerrors.ErrVoterNotFound
	}
	for id, app := range s.applications {
		if app.VoterID != nil && *app.VoterID == voterID {
			app.VoterID = nil
			s.applications[id] = app
		}
	}
	delete(s.voters, voterID)
	return nil
}

func (s *Store) GetVoter(_ context.Context, voterID int64) (entities.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	voter, ok := s.voters[voterID]
	if !ok {
		return entities.Voter{}, domainerrors.ErrVoterNotFound
	}
	return cloneVoter(voter), nil
}

func (s *Store) GetVoterByTokenHash(_ context.Context, tokenHash string) (entities.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, voter := range s.voters {
		if tokenHash != "" && voter.TokenHash == tokenHash {
			return cloneVoter(voter), nil
		}
	}
	return entities.Voter{}, domainerrors.ErrVoterNotFound
}

func (s *Store) ListVotersBySession(_ context.Context, sessionID int64) ([]entities.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Voter, 0)
	for _, voter := range s.voters {
		if voter.SessionID == sessionID {
			items = append(items, cloneVoter(voter))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].VoterID < items[j].VoterID })
	return items, nil
}

func (s *Store) CreateApplication(_ context.Context, app entities.Application) (entities.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elections[app.ElectionID]; !ok {
		return entities.Application{}, domainerrors.ErrElectionNotFound
	}
	if app.VoterID != nil {
		for _, existing := range s.applications {
			if existing.ElectionID == app.ElectionID && existing.VoterID != nil && *existing.VoterID == *app.VoterID {
				return entities.Application{}, domainerrors.ErrApplicationExists
			}
		}
	}
	app.ApplicationID = s.id()
	s.position[app.ElectionID]++
	app.Position = s.position[app.ElectionID]
	app = cloneApplication(app)
	s.applications[app.ApplicationID] = app
	return cloneApplication(app), nil
}

func (s *Store) UpdateApplication(_ context.Context, app entities.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.applications[app.ApplicationID]
	if !ok {
		return domainerrors.ErrApplicationNotFound
	}
	current.DisplayName = app.DisplayName
	current.Email = app.Email
	current.Text = app.Text
	current.UpdatedAt = app.UpdatedAt
	s.applications[app.ApplicationID] = current
	return nil
}

func (s *Store) DeleteApplication(_ context.Context, applicationID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.applications[applicationID]; !ok {
		return domainerrors.ErrApplicationNotFound
	}
	delete(s.applications, applicationID)
	return nil
}

func (s *Store) GetApplication(_ context.Context, applicationID int64) (entities.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	app, ok := s.applications[applicationID]
	if !ok {
		return entities.Application{}, domainerrors.ErrApplicationNotFound
	}
	return cloneApplication(app), nil
}

func (s *Store) GetApplicationByVoter(_ context.Context, electionID int64, voterID int64) (entities.Application, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, app := range s.applications {
		if app.ElectionID == electionID && app.VoterID != nil && *app.VoterID == voterID {
			return cloneApplication(app), true, nil
		}
	}
	return entities.Application{}, false, nil
}

func (s *Store) ListApplicationsByElection(_ context.Context, electionID int64) ([]entities.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Application, 0)
	for _, app := range s.applications {
		if app.ElectionID == electionID {
			items = append(items, cloneApplication(app))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	return items, nil
}

func (s *Store) CreateManager(_ context.Context, manager entities.Manager) (entities.Manager, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.managers {
		if strings.EqualFold(existing.Username, manager.Username) || strings.EqualFold(existing.Email, manager.Email) {
			return entities.Manager{}, domainerrors.ErrDuplicateManager
		}
	}
	manager.ManagerID = s.id()
	s.managers[manager.ManagerID] = manager
	return manager, nil
}

func (s *Store) GetManager(_ context.Context, managerID int64) (entities.Manager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	manager, ok := s.managers[managerID]
	if !ok {
		return entities.Manager{}, domainerrors.ErrManagerNotFound
	}
	return manager, nil
}

func (s *Store) GetManagerByLogin(_ context.Context, identifier string) (entities.Manager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	identifier = strings.TrimSpace(identifier)
	for _, manager := range s.managers {
		if strings.EqualFold(manager.Username, identifier) || strings.EqualFold(manager.Email, identifier) {
			return manager, nil
		}
	}
	return entities.Manager{}, domainerrors.ErrManagerNotFound
}

func (s *Store) RecordBallot(
	_ context.Context,
	voterID int64,
	electionID int64,
	choices []entities.BallotChoice,
	now time.Time,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	voter, ok := s.voters[voterID]
	if !ok {
		return domainerrors.ErrVoterNotFound
	}
	if voter.HasVoted(electionID) {
		return domainerrors.ErrAlreadyVoted
	}
	for _, choice := range choices {
		app, ok := s.applications[choice.ApplicationID]
		if !ok || app.ElectionID != electionID {
			return domainerrors.ErrApplicationNotFound
		}
	}
	for _, choice := range choices {
		app := s.applications[choice.ApplicationID]
		switch choice.Choice {
		case entities.ChoiceAccept:
			app.VotesAccept++
		case entities.ChoiceReject:
			app.VotesReject++
		default:
			app.VotesAbstention++
		}
		app.UpdatedAt = now
		s.applications[choice.ApplicationID] = app
	}
	voter.VotedElections = append(slices.Clone(voter.VotedElections), electionID)
	voter.UpdatedAt = now
	s.voters[voterID] = voter
	return nil
}

// SetVotes overwrites the counters of an application. Test seeding only.
func (s *Store) SetVotes(applicationID int64, accept int, reject int, abstention int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[applicationID]
	if !ok {
		return
	}
	app.VotesAccept = accept
	app.VotesReject = reject
	app.VotesAbstention = abstention
	s.applications[applicationID] = app
}

func cloneSession(session entities.Session) entities.Session {
	session.ManagerIDs = slices.Clone(session.ManagerIDs)
	return session
}

func cloneElection(election entities.Election) entities.Election {
	if election.MaxWinners != nil {
		value := *election.MaxWinners
		election.MaxWinners = &value
	}
	return election
}

func cloneVoter(voter entities.Voter) entities.Voter {
	voter.VotedElections = slices.Clone(voter.VotedElections)
	return voter
}

func cloneApplication(app entities.Application) entities.Application {
	if app.VoterID != nil {
		value := *app.VoterID
		app.VoterID = &value
	}
	return app
}

var _ ports.Repository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
