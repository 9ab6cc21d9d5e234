package database

import (
	"fmt"
	"time"

	"github.com/pselab/journal-club-bot/internal/domain/contract"
	"github.com/pselab/journal-club-bot/internal/domain/entity"
)

type presentationRepo struct {
	db dbConn
}

func newPresentationRepo(db dbConn) contract.PresentationRepo {
	return &presentationRepo{db: db}
}

func (r *presentationRepo) Create(presentation *entity.Presentation) error {
	query := `
		INSERT INTO presentations (member_id, slack_user_id, display_name, presented_at)
		VALUES (?, ?, ?, ?)
	`

	presentedAt := presentation.PresentedAt
	if presentedAt.IsZero() {
		presentedAt = time.Now().UTC()
	}

	result, err := r.db.Exec(query,
		presentation.MemberID,
		presentation.SlackUserID,
		presentation.DisplayName,
		presentedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create presentation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	presentation.ID = id
	presentation.PresentedAt = presentedAt
	return nil
}

func (r *presentationRepo) GetPresentedIDs() (map[string]bool, error) {
	query := `SELECT slack_user_id FROM presentations`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get presented ids: %w", err)
	}
	defer rows.Close()

	presented := make(map[string]bool)
	for rows.Next() {
		var slackUserID string
		if err := rows.Scan(&slackUserID); err != nil {
			return nil, fmt.Errorf("failed to scan presented id: %w", err)
		}
		presented[slackUserID] = true
	}

	return presented, nil
}

func (r *presentationRepo) GetRecent(limit int) ([]*entity.Presentation, error) {
	query := `
		SELECT id, member_id, slack_user_id, display_name, presented_at
		FROM presentations
		ORDER BY presented_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get presentations: %w", err)
	}
	defer rows.Close()

	var presentations []*entity.Presentation
	for rows.Next() {
		presentation := &entity.Presentation{}
		err := rows.Scan(
			&presentation.ID,
			&presentation.MemberID,
			&presentation.SlackUserID,
			&presentation.DisplayName,
			&presentation.PresentedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan presentation: %w", err)
		}
		presentations = append(presentations, presentation)
	}

	return presentations, nil
}

func (r *presentationRepo) DeleteAll() error {
	query := `DELETE FROM presentations`

	_, err := r.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to reset presentations: %w", err)
	}

	return nil
}
