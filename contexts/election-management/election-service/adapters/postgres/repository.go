package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"wahlfang/contexts/election-management/election-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/election-service/domain/errors"
	"wahlfang/contexts/election-management/election-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates or updates every table the repository uses.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&managerModel{},
		&sessionModel{},
		&sessionManagerModel{},
		&electionModel{},
		&voterModel{},
		&voterVoteModel{},
		&applicationModel{},
	)
}

func (r *Repository) CreateSession(ctx context.Context, session entities.Session) (entities.Session, error) {
	row := sessionModelFromEntity(session)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return replaceSessionManagers(tx, row.ID, session.ManagerIDs)
	})
	if err != nil {
		return entities.Session{}, r.logError("election_repo_create_session_failed", err)
	}
	created := row.toEntity()
	created.ManagerIDs = append([]int64(nil), session.ManagerIDs...)
	return created, nil
}

func (r *Repository) UpdateSession(ctx context.Context, session entities.Session) error {
	row := sessionModelFromEntity(session)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&sessionModel{}).
			Where("id = ?", session.SessionID).
			Updates(map[string]any{
				"title":        row.Title,
				"meeting_link": row.MeetingLink,
				"updated_at":   row.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrSessionNotFound
		}
		return replaceSessionManagers(tx, session.SessionID, session.ManagerIDs)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionNotFound) {
			return err
		}
		return r.logError("election_repo_update_session_failed", err, "session_id", session.SessionID)
	}
	return nil
}

// DeleteSession removes the session with its elections, applications,
// voters and ballot markers.
func (r *Repository) DeleteSession(ctx context.Context, sessionID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		electionIDs := tx.Model(&electionModel{}).Select("id").Where("session_id = ?", sessionID)
		voterIDs := tx.Model(&voterModel{}).Select("id").Where("session_id = ?", sessionID)
		if err := tx.Where("election_id IN (?)", electionIDs).Delete(&applicationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("voter_id IN (?)", voterIDs).Delete(&voterVoteModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", sessionID).Delete(&electionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", sessionID).Delete(&voterModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", sessionID).Delete(&sessionManagerModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", sessionID).Delete(&sessionModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrSessionNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionNotFound) {
			return err
		}
		return r.logError("election_repo_delete_session_failed", err, "session_id", sessionID)
	}
	return nil
}

func (r *Repository) GetSession(ctx context.Context, sessionID int64) (entities.Session, error) {
	var row sessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Session{}, domainerrors.ErrSessionNotFound
		}
		return entities.Session{}, r.logError("election_repo_get_session_failed", err, "session_id", sessionID)
	}
	return r.withManagers(ctx, row)
}

func (r *Repository) GetSessionBySpectatorToken(ctx context.Context, token string) (entities.Session, error) {
	var row sessionModel
	if err := r.db.WithContext(ctx).Where("spectator_token = ?", strings.TrimSpace(token)).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Session{}, domainerrors.ErrSessionNotFound
		}
		return entities.Session{}, r.logError("election_repo_get_session_by_token_failed", err)
	}
	return r.withManagers(ctx, row)
}

func (r *Repository) ListSessionsByManager(ctx context.Context, managerID int64) ([]entities.Session, error) {
	var rows []sessionModel
	if err := r.db.WithContext(ctx).
		Where("id IN (?)", r.db.Model(&sessionManagerModel{}).Select("session_id").Where("manager_id = ?", managerID)).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("election_repo_list_sessions_failed", err, "manager_id", managerID)
	}
	items := make([]entities.Session, 0, len(rows))
	for _, row := range rows {
		session, err := r.withManagers(ctx, row)
		if err != nil {
			return nil, err
		}
		items = append(items, session)
	}
	return items, nil
}

func (r *Repository) withManagers(ctx context.Context, row sessionModel) (entities.Session, error) {
	var links []sessionManagerModel
	if err := r.db.WithContext(ctx).Where("session_id = ?", row.ID).Order("manager_id ASC").Find(&links).Error; err != nil {
		return entities.Session{}, r.logError("election_repo_list_session_managers_failed", err, "session_id", row.ID)
	}
	session := row.toEntity()
	session.ManagerIDs = make([]int64, 0, len(links))
	for _, link := range links {
		session.ManagerIDs = append(session.ManagerIDs, link.ManagerID)
	}
	return session, nil
}

func replaceSessionManagers(tx *gorm.DB, sessionID int64, managerIDs []int64) error {
	if err := tx.Where("session_id = ?", sessionID).Delete(&sessionManagerModel{}).Error; err != nil {
		return err
	}
	if len(managerIDs) == 0 {
		return nil
	}
	links := make([]sessionManagerModel, 0, len(managerIDs))
	for _, managerID := range managerIDs {
		links = append(links, sessionManagerModel{SessionID: sessionID, ManagerID: managerID})
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}

func (r *Repository) CreateElection(ctx context.Context, election entities.Election) (entities.Election, error) {
	row := electionModelFromEntity(election)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Election{}, r.logError("election_repo_create_election_failed", err, "session_id", election.SessionID)
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateElection(ctx context.Context, election entities.Election) error {
	row := electionModelFromEntity(election)
	result := r.db.WithContext(ctx).Model(&electionModel{}).
		Where("id = ?", election.ElectionID).
		Updates(map[string]any{
			"title":              row.Title,
			"status":             row.Status,
			"can_apply":          row.CanApply,
			"max_winners":        row.MaxWinners,
			"disable_abstention": row.DisableAbstention,
			"publication":        row.Publication,
			"updated_at":         row.UpdatedAt,
		})
	if result.Error != nil {
		return r.logError("election_repo_update_election_failed", result.Error, "election_id", election.ElectionID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrElectionNotFound
	}
	return nil
}

func (r *Repository) DeleteElection(ctx context.Context, electionID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("election_id = ?", electionID).Delete(&applicationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("election_id = ?", electionID).Delete(&voterVoteModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", electionID).Delete(&electionModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrElectionNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrElectionNotFound) {
			return err
		}
		return r.logError("election_repo_delete_election_failed", err, "election_id", electionID)
	}
	return nil
}

func (r *Repository) GetElection(ctx context.Context, electionID int64) (entities.Election, error) {
	var row electionModel
	if err := r.db.WithContext(ctx).Where("id = ?", electionID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Election{}, domainerrors.ErrElectionNotFound
		}
		return entities.Election{}, r.logError("election_repo_get_election_failed", err, "election_id", electionID)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListElectionsBySession(ctx context.Context, sessionID int64) ([]entities.Election, error) {
	var rows []electionModel
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, r.logError("election_repo_list_elections_failed", err, "session_id", sessionID)
	}
	items := make([]entities.Election, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CreateVoter(ctx context.Context, voter entities.Voter) (entities.Voter, error) {
	row := voterModelFromEntity(voter)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Voter{}, r.logError("election_repo_create_voter_failed", err, "session_id", voter.SessionID)
	}
	return row.toEntity(nil), nil
}

func (r *Repository) UpdateVoter(ctx context.Context, voter entities.Voter) error {
	row := voterModelFromEntity(voter)
	result := r.db.WithContext(ctx).Model(&voterModel{}).
		Where("id = ?", voter.VoterID).
		Updates(map[string]any{
			"name":       row.Name,
			"email":      row.Email,
			"token_hash": row.TokenHash,
			"revoked":    row.Revoked,
			"updated_at": row.UpdatedAt,
		})
	if result.Error != nil {
		return r.logError("election_repo_update_voter_failed", result.Error, "voter_id", voter.VoterID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrVoterNotFound
	}
	return nil
}

func (r *Repository) DeleteVoter(ctx context.Context, voterID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&applicationModel{}).Where("voter_id = ?", voterID).Update("voter_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("voter_id = ?", voterID).Delete(&voterVoteModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", voterID).Delete(&voterModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrVoterNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrVoterNotFound) {
			return err
		}
		return r.logError("election_repo_delete_voter_failed", err, "voter_id", voterID)
	}
	return nil
}

func (r *Repository) GetVoter(ctx context.Context, voterID int64) (entities.Voter, error) {
	return r.findVoter(ctx, "id = ?", voterID)
}

func (r *Repository) GetVoterByTokenHash(ctx context.Context, tokenHash string) (entities.Voter, error) {
	if strings.TrimSpace(tokenHash) == "" {
		return entities.Voter{}, domainerrors.ErrVoterNotFound
	}
	return r.findVoter(ctx, "token_hash = ?", tokenHash)
}

func (r *Repository) findVoter(ctx context.Context, query string, arg any) (entities.Voter, error) {
	var row voterModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Voter{}, domainerrors.ErrVoterNotFound
		}
		return entities.Voter{}, r.logError("election_repo_get_voter_failed", err)
	}
	var marks []voterVoteModel
	if err := r.db.WithContext(ctx).Where("voter_id = ?", row.ID).Order("election_id ASC").Find(&marks).Error; err != nil {
		return entities.Voter{}, r.logError("election_repo_list_voter_votes_failed", err, "voter_id", row.ID)
	}
	return row.toEntity(marks), nil
}

func (r *Repository) ListVotersBySession(ctx context.Context, sessionID int64) ([]entities.Voter, error) {
	var rows []voterModel
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, r.logError("election_repo_list_voters_failed", err, "session_id", sessionID)
	}
	var marks []voterVoteModel
	if err := r.db.WithContext(ctx).
		Where("voter_id IN (?)", r.db.Model(&voterModel{}).Select("id").Where("session_id = ?", sessionID)).
		Find(&marks).Error; err != nil {
		return nil, r.logError("election_repo_list_voter_votes_failed", err, "session_id", sessionID)
	}
	byVoter := make(map[int64][]voterVoteModel)
	for _, mark := range marks {
		byVoter[mark.VoterID] = append(byVoter[mark.VoterID], mark)
	}
	items := make([]entities.Voter, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity(byVoter[row.ID]))
	}
	return items, nil
}

func (r *Repository) CreateApplication(ctx context.Context, app entities.Application) (entities.Application, error) {
	row := applicationModelFromEntity(app)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPosition int
		if err := tx.Model(&applicationModel{}).
			Where("election_id = ?", app.ElectionID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPosition).Error; err != nil {
			return err
		}
		row.Position = maxPosition + 1
		return tx.Create(&row).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return entities.Application{}, domainerrors.ErrApplicationExists
		}
		return entities.Application{}, r.logError("election_repo_create_application_failed", err, "election_id", app.ElectionID)
	}
	return row.toEntity(), nil
}

// UpdateApplication only writes the descriptive fields. Counters move
// through RecordBallot.
func (r *Repository) UpdateApplication(ctx context.Context, app entities.Application) error {
	result := r.db.WithContext(ctx).Model(&applicationModel{}).
		Where("id = ?", app.ApplicationID).
		Updates(map[string]any{
			"display_name": strings.TrimSpace(app.DisplayName),
			"email":        strings.TrimSpace(app.Email),
			"text":         app.Text,
			"updated_at":   app.UpdatedAt.UTC(),
		})
	if result.Error != nil {
		return r.logError("election_repo_update_application_failed", result.Error, "application_id", app.ApplicationID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrApplicationNotFound
	}
	return nil
}

func (r *Repository) DeleteApplication(ctx context.Context, applicationID int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", applicationID).Delete(&applicationModel{})
	if result.Error != nil {
		return r.logError("election_repo_delete_application_failed", result.Error, "application_id", applicationID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrApplicationNotFound
	}
	return nil
}

func (r *Repository) GetApplication(ctx context.Context, applicationID int64) (entities.Application, error) {
	var row applicationModel
	if err := r.db.WithContext(ctx).Where("id = ?", applicationID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Application{}, domainerrors.ErrApplicationNotFound
		}
		return entities.Application{}, r.logError("election_repo_get_application_failed", err, "application_id", applicationID)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetApplicationByVoter(ctx context.Context, electionID int64, voterID int64) (entities.Application, bool, error) {
	var row applicationModel
	err := r.db.WithContext(ctx).
		Where("election_id = ?", electionID).
		Where("voter_id = ?", voterID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Application{}, false, nil
		}
		return entities.Application{}, false, r.logError("election_repo_get_application_by_voter_failed", err,
			"election_id", electionID,
			"voter_id", voterID,
		)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListApplicationsByElection(ctx context.Context, electionID int64) ([]entities.Application, error) {
	var rows []applicationModel
	if err := r.db.WithContext(ctx).
		Where("election_id = ?", electionID).
		Order("position ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("election_repo_list_applications_failed", err, "election_id", electionID)
	}
	items := make([]entities.Application, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CreateManager(ctx context.Context, manager entities.Manager) (entities.Manager, error) {
	var existing int64
	if err := r.db.WithContext(ctx).Model(&managerModel{}).
		Where("LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)", manager.Username, manager.Email).
		Count(&existing).Error; err != nil {
		return entities.Manager{}, r.logError("election_repo_count_managers_failed", err)
	}
	if existing > 0 {
		return entities.Manager{}, domainerrors.ErrDuplicateManager
	}
	row := managerModelFromEntity(manager)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Manager{}, domainerrors.ErrDuplicateManager
		}
		return entities.Manager{}, r.logError("election_repo_create_manager_failed", err, "username", manager.Username)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetManager(ctx context.Context, managerID int64) (entities.Manager, error) {
	var row managerModel
	if err := r.db.WithContext(ctx).Where("id = ?", managerID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Manager{}, domainerrors.ErrManagerNotFound
		}
		return entities.Manager{}, r.logError("election_repo_get_manager_failed", err, "manager_id", managerID)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetManagerByLogin(ctx context.Context, identifier string) (entities.Manager, error) {
	identifier = strings.TrimSpace(identifier)
	var row managerModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)", identifier, identifier).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Manager{}, domainerrors.ErrManagerNotFound
		}
		return entities.Manager{}, r.logError("election_repo_get_manager_by_login_failed", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) RecordBallot(
	ctx context.Context,
	voterID int64,
	electionID int64,
	choices []entities.BallotChoice,
	now time.Time,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var voted int64
		if err := tx.Model(&voterVoteModel{}).
			Where("voter_id = ? AND election_id = ?", voterID, electionID).
			Count(&voted).Error; err != nil {
			return err
		}
		if voted > 0 {
			return domainerrors.ErrAlreadyVoted
		}
		for _, choice := range choices {
			column := "votes_abstention"
			switch choice.Choice {
			case entities.ChoiceAccept:
				column = "votes_accept"
			case entities.ChoiceReject:
				column = "votes_reject"
			}
			result := tx.Model(&applicationModel{}).
				Where("id = ? AND election_id = ?", choice.ApplicationID, electionID).
				Updates(map[string]any{
					column:       gorm.Expr(column + " + 1"),
					"updated_at": now.UTC(),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domainerrors.ErrApplicationNotFound
			}
		}
		if err := tx.Create(&voterVoteModel{VoterID: voterID, ElectionID: electionID, CreatedAt: now.UTC()}).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrAlreadyVoted
			}
			return err
		}
		return tx.Model(&voterModel{}).Where("id = ?", voterID).Update("updated_at", now.UTC()).Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyVoted) || errors.Is(err, domainerrors.ErrApplicationNotFound) {
			return err
		}
		return r.logError("election_repo_record_ballot_failed", err,
			"voter_id", voterID,
			"election_id", electionID,
		)
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "election-management/election-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("election repository operation failed", fields...)
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.Repository = (*Repository)(nil)
