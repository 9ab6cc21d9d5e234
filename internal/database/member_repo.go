package database

import (
	"database/sql"
	"fmt"

	"github.com/pselab/journal-club-bot/internal/domain/contract"
	"github.com/pselab/journal-club-bot/internal/domain/entity"
)

type memberRepo struct {
	db dbConn
}

func newMemberRepo(db dbConn) contract.MemberRepo {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(member *entity.Member) error {
	query := `
		INSERT INTO members (slack_user_id, slack_user_name, display_name, birthday, opt_in)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		member.SlackUserID,
		member.SlackUserName,
		member.DisplayName,
		nullString(member.Birthday),
		member.OptIn,
	)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	member.ID = id
	return nil
}

func (r *memberRepo) GetBySlackID(slackUserID string) (*entity.Member, error) {
	member := &entity.Member{}
	query := `
		SELECT id, slack_user_id, slack_user_name, display_name, COALESCE(birthday, ''), opt_in, joined_at
		FROM members
		WHERE slack_user_id = ?
	`

	err := r.db.QueryRow(query, slackUserID).Scan(
		&member.ID,
		&member.SlackUserID,
		&member.SlackUserName,
		&member.DisplayName,
		&member.Birthday,
		&member.OptIn,
		&member.JoinedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

func (r *memberRepo) GetAll() ([]*entity.Member, error) {
	query := `
		SELECT id, slack_user_id, slack_user_name, display_name, COALESCE(birthday, ''), opt_in, joined_at
		FROM members
		ORDER BY joined_at ASC
	`
	return r.queryMembers(query)
}

func (r *memberRepo) GetOptedIn() ([]*entity.Member, error) {
	query := `
		SELECT id, slack_user_id, slack_user_name, display_name, COALESCE(birthday, ''), opt_in, joined_at
		FROM members
		WHERE opt_in = 1
		ORDER BY joined_at ASC
	`
	return r.queryMembers(query)
}

func (r *memberRepo) queryMembers(query string, args ...interface{}) ([]*entity.Member, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []*entity.Member
	for rows.Next() {
		member := &entity.Member{}
		err := rows.Scan(
			&member.ID,
			&member.SlackUserID,
			&member.SlackUserName,
			&member.DisplayName,
			&member.Birthday,
			&member.OptIn,
			&member.JoinedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	return members, nil
}

func (r *memberRepo) SetOptIn(slackUserID string, optIn bool) error {
	query := `UPDATE members SET opt_in = ? WHERE slack_user_id = ?`

	_, err := r.db.Exec(query, optIn, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to update member opt-in: %w", err)
	}

	return nil
}

func (r *memberRepo) Delete(memberID int64) error {
	query := `DELETE FROM members WHERE id = ?`

	_, err := r.db.Exec(query, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	return nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
