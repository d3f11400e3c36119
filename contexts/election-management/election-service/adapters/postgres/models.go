package postgresadapter

import (
	"strings"
	"time"

	"wahlfang/contexts/election-management/election-service/domain/entities"
)

type managerModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username;uniqueIndex;size:150"`
	Email        string    `gorm:"column:email;uniqueIndex;size:254"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (managerModel) TableName() string {
	return "election_managers"
}

func managerModelFromEntity(manager entities.Manager) managerModel {
	return managerModel{
		ID:           manager.ManagerID,
		Username:     strings.TrimSpace(manager.Username),
		Email:        strings.ToLower(strings.TrimSpace(manager.Email)),
		PasswordHash: manager.PasswordHash,
		CreatedAt:    manager.CreatedAt.UTC(),
	}
}

func (m managerModel) toEntity() entities.Manager {
	return entities.Manager{
		ManagerID:    m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

type sessionModel struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Title          string    `gorm:"column:title;size:256"`
	MeetingLink    string    `gorm:"column:meeting_link"`
	SpectatorToken string    `gorm:"column:spectator_token;uniqueIndex;size:64"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (sessionModel) TableName() string {
	return "sessions"
}

func sessionModelFromEntity(session entities.Session) sessionModel {
	return sessionModel{
		ID:             session.SessionID,
		Title:          strings.TrimSpace(session.Title),
		MeetingLink:    strings.TrimSpace(session.MeetingLink),
		SpectatorToken: strings.TrimSpace(session.SpectatorToken),
		CreatedAt:      session.CreatedAt.UTC(),
		UpdatedAt:      session.UpdatedAt.UTC(),
	}
}

func (m sessionModel) toEntity() entities.Session {
	return entities.Session{
		SessionID:      m.ID,
		Title:          m.Title,
		MeetingLink:    m.MeetingLink,
		SpectatorToken: m.SpectatorToken,
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}

type sessionManagerModel struct {
	SessionID int64 `gorm:"column:session_id;primaryKey;autoIncrement:false"`
	ManagerID int64 `gorm:"column:manager_id;primaryKey;autoIncrement:false;index"`
}

func (sessionManagerModel) TableName() string {
	return "session_managers"
}

type electionModel struct {
	ID                int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SessionID         int64     `gorm:"column:session_id;index"`
	Title             string    `gorm:"column:title;size:512"`
	Status            string    `gorm:"column:status;size:16"`
	CanApply          bool      `gorm:"column:can_apply"`
	MaxWinners        *int      `gorm:"column:max_winners"`
	DisableAbstention bool      `gorm:"column:disable_abstention"`
	Publication       string    `gorm:"column:publication;size:16"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (electionModel) TableName() string {
	return "elections"
}

func electionModelFromEntity(election entities.Election) electionModel {
	row := electionModel{
		ID:                election.ElectionID,
		SessionID:         election.SessionID,
		Title:             strings.TrimSpace(election.Title),
		Status:            string(election.Status),
		CanApply:          election.CanApply,
		DisableAbstention: election.DisableAbstention,
		Publication:       string(election.Publication),
		CreatedAt:         election.CreatedAt.UTC(),
		UpdatedAt:         election.UpdatedAt.UTC(),
	}
	if election.MaxWinners != nil {
		value := *election.MaxWinners
		row.MaxWinners = &value
	}
	if row.Publication == "" {
		row.Publication = string(entities.PublicationUnpublished)
	}
	return row
}

func (m electionModel) toEntity() entities.Election {
	election := entities.Election{
		ElectionID:        m.ID,
		SessionID:         m.SessionID,
		Title:             m.Title,
		Status:            entities.ElectionStatus(m.Status),
		CanApply:          m.CanApply,
		DisableAbstention: m.DisableAbstention,
		Publication:       entities.ResultPublication(m.Publication),
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
	if m.MaxWinners != nil {
		value := *m.MaxWinners
		election.MaxWinners = &value
	}
	return election
}

type voterModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SessionID int64     `gorm:"column:session_id;index"`
	Name      string    `gorm:"column:name;size:256"`
	Email     string    `gorm:"column:email;size:254"`
	TokenHash string    `gorm:"column:token_hash;uniqueIndex;size:64"`
	Revoked   bool      `gorm:"column:revoked"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (voterModel) TableName() string {
	return "voters"
}

func voterModelFromEntity(voter entities.Voter) voterModel {
	return voterModel{
		ID:        voter.VoterID,
		SessionID: voter.SessionID,
		Name:      strings.TrimSpace(voter.Name),
		Email:     strings.TrimSpace(voter.Email),
		TokenHash: voter.TokenHash,
		Revoked:   voter.Revoked,
		CreatedAt: voter.CreatedAt.UTC(),
		UpdatedAt: voter.UpdatedAt.UTC(),
	}
}

func (m voterModel) toEntity(marks []voterVoteModel) entities.Voter {
	voter := entities.Voter{
		VoterID:        m.ID,
		SessionID:      m.SessionID,
		Name:           m.Name,
		Email:          m.Email,
		TokenHash:      m.TokenHash,
		Revoked:        m.Revoked,
		VotedElections: make([]int64, 0, len(marks)),
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
	for _, mark := range marks {
		voter.VotedElections = append(voter.VotedElections, mark.ElectionID)
	}
	return voter
}

// voterVoteModel marks that a voter cast a ballot in an election.
type voterVoteModel struct {
	VoterID    int64     `gorm:"column:voter_id;primaryKey;autoIncrement:false"`
	ElectionID int64     `gorm:"column:election_id;primaryKey;autoIncrement:false;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (voterVoteModel) TableName() string {
	return "voter_votes"
}

type applicationModel struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ElectionID      int64     `gorm:"column:election_id;uniqueIndex:idx_application_voter,priority:1;index"`
	VoterID         *int64    `gorm:"column:voter_id;uniqueIndex:idx_application_voter,priority:2"`
	DisplayName     string    `gorm:"column:display_name;size:256"`
	Email           string    `gorm:"column:email;size:254"`
	Text            string    `gorm:"column:text"`
	VotesAccept     int       `gorm:"column:votes_accept"`
	VotesReject     int       `gorm:"column:votes_reject"`
	VotesAbstention int       `gorm:"column:votes_abstention"`
	Position        int       `gorm:"column:position"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (applicationModel) TableName() string {
	return "applications"
}

func applicationModelFromEntity(app entities.Application) applicationModel {
	row := applicationModel{
		ID:              app.ApplicationID,
		ElectionID:      app.ElectionID,
		DisplayName:     strings.TrimSpace(app.DisplayName),
		Email:           strings.TrimSpace(app.Email),
		Text:            app.Text,
		VotesAccept:     app.VotesAccept,
		VotesReject:     app.VotesReject,
		VotesAbstention: app.VotesAbstention,
		Position:        app.Position,
		CreatedAt:       app.CreatedAt.UTC(),
		UpdatedAt:       app.UpdatedAt.UTC(),
	}
	if app.VoterID != nil {
		value := *app.VoterID
		row.VoterID = &value
	}
	return row
}

func (m applicationModel) toEntity() entities.Application {
	app := entities.Application{
		ApplicationID:   m.ID,
		ElectionID:      m.ElectionID,
		DisplayName:     m.DisplayName,
		Email:           m.Email,
		Text:            m.Text,
		VotesAccept:     m.VotesAccept,
		VotesReject:     m.VotesReject,
		VotesAbstention: m.VotesAbstention,
		Position:        m.Position,
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
	if m.VoterID != nil {
		value := *m.VoterID
		app.VoterID = &value
	}
	return app
}
