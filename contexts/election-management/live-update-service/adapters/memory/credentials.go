package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"wahlfang/contexts/election-management/live-update-service/ports"
)

type voterEntry struct {
	record     ports.VoterRecord
	accessCode string
}

type managerEntry struct {
	record   ports.ManagerRecord
	login    []string
	password string
}

// CredentialStore keeps plaintext credentials in memory. It exists for
// tests and local runs without persistence.
type CredentialStore struct {
	mu         sync.RWMutex
	voters     map[int64]voterEntry
	managers   map[int64]managerEntry
	spectators map[string]int64
	sessions   map[int64]struct{}
}

func NewCredentialStore() *CredentialStore {
	return &CredentialStore{
		voters:     make(map[int64]voterEntry),
		managers:   make(map[int64]managerEntry),
		spectators: make(map[string]int64),
		sessions:   make(map[int64]struct{}),
	}
}

func (s *CredentialStore) AddVoter(voterID int64, sessionID int64, accessCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voters[voterID] = voterEntry{
		record:     ports.VoterRecord{VoterID: voterID, SessionID: sessionID},
		accessCode: accessCode,
	}
}

func (s *CredentialStore) RevokeVoter(voterID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.voters[voterID]
	if !ok {
		return
	}
	entry.record.Revoked = true
	s.voters[voterID] = entry
}

func (s *CredentialStore) DeleteVoter(voterID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.voters, voterID)
}

func (s *CredentialStore) AddManager(managerID int64, username string, email string, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.managers[managerID] = managerEntry{
		record:   ports.ManagerRecord{ManagerID: managerID},
		login:    []string{username, strings.ToLower(email)},
		password: password,
	}
}

func (s *CredentialStore) AddSpectatorToken(sessionID int64, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spectators[token] = sessionID
	s.sessions[sessionID] = struct{}{}
}

// DeleteSession drops the session together with its spectator tokens.
func (s *CredentialStore) DeleteSession(sessionID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	for token, owner := range s.spectators {
		if owner == sessionID {
			delete(s.spectators, token)
		}
	}
}

func (s *CredentialStore) VerifyVoterToken(_ context.Context, accessCode string) (ports.VoterRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, entry := range s.voters {
		if entry.accessCode == accessCode {
			return entry.record, true, nil
		}
	}
	return ports.VoterRecord{}, false, nil
}

func (s *CredentialStore) VerifyManagerPassword(_ context.Context, identifier string, password string) (ports.ManagerRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, entry := range s.managers {
		for _, login := range entry.login {
			if login != "" && strings.EqualFold(login, identifier) && entry.password == password {
				return entry.record, true, nil
			}
		}
	}
	return ports.ManagerRecord{}, false, nil
}

func (s *CredentialStore) VerifySpectatorToken(_ context.Context, token string) (ports.SessionRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessionID, ok := s.spectators[token]
	if !ok {
		return ports.SessionRecord{}, false, nil
	}
	return ports.SessionRecord{SessionID: sessionID}, true, nil
}

func (s *CredentialStore) LookupVoter(_ context.Context, voterID int64) (ports.VoterRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.voters[voterID]
	return entry.record, ok, nil
}

func (s *CredentialStore) LookupManager(_ context.Context, managerID int64) (ports.ManagerRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.managers[managerID]
	return entry.record, ok, nil
}

func (s *CredentialStore) LookupSession(_ context.Context, sessionID int64) (ports.SessionRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return ports.SessionRecord{}, false, nil
	}
	return ports.SessionRecord{SessionID: sessionID}, true, nil
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
