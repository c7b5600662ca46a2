package repository

import (
	"database/sql"
	"encoding/json"
	"tripdraft/internal/model"
)

type GuideRepository struct {
	db *sql.DB
}

func NewGuideRepository(db *sql.DB) *GuideRepository {
	return &GuideRepository{db: db}
}

func (r *GuideRepository) SaveRequest(guide *model.Guide) error {
	return r.db.QueryRow(`
		INSERT INTO guide(topic, subject, freshness, minimum_links, status)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, guide.Topic, guide.Subject, guide.Freshness, guide.MinimumLinks, model.StatusPending).Scan(&guide.ID, &guide.CreatedAt)
}

func (r *GuideRepository) GetByID(id int64) (*model.Guide, error) {
	var g model.Guide
	var sourcesJSON []byte
	var content, modelUsed sql.NullString
	var completedAt sql.NullTime
	err := r.db.QueryRow(`
		SELECT id, topic, subject, freshness, minimum_links, status, content, sources, model_used, created_at, completed_at
		FROM guide
		WHERE id = $1
	`, id).Scan(&g.ID, &g.Topic, &g.Subject, &g.Freshness, &g.MinimumLinks, &g.Status, &content, &sourcesJSON, &modelUsed, &g.CreatedAt, &completedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	g.Content = content.String
	g.ModelUsed = modelUsed.String
	if completedAt.Valid {
		g.CompletedAt = completedAt.Time
	}
	if len(sourcesJSON) > 0 {
		if err := json.Unmarshal(sourcesJSON, &g.Sources); err != nil {
			return nil, err
		}
	}

	return &g, nil
}

func (r *GuideRepository) GetFeed(limit, offset int) ([]model.Guide, error) {
	rows, err := r.db.Query(`
		SELECT id, topic, subject, freshness, minimum_links, status, created_at
		FROM guide
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guides []model.Guide
	for rows.Next() {
		var g model.Guide
		err := rows.Scan(&g.ID, &g.Topic, &g.Subject, &g.Freshness, &g.MinimumLinks, &g.Status, &g.CreatedAt)
		if err != nil {
			return nil, err
		}
		guides = append(guides, g)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return guides, nil
}

func (r *GuideRepository) GetFeedTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM guide`).Scan(&total)
	return total, err
}

func (r *GuideRepository) UpdateStatus(id int64, status string) error {
	_, err := r.db.Exec(`
		UPDATE guide SET status = $1 WHERE id = $2
	`, status, id)
	return err
}

// SaveCompletedWithVerdict stores the generated content and its
// verification outcome in one transaction and marks the guide completed.
func (r *GuideRepository) SaveCompletedWithVerdict(guide *model.Guide, verdict *model.GuideVerdict) error {
	sources, err := json.Marshal(guide.Sources)
	if err != nil {
		return err
	}
	issues, err := json.Marshal(verdict.Issues)
	if err != nil {
		return err
	}
	styleIssues, err := json.Marshal(verdict.StyleIssues)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE guide
		SET status = $1, content = $2, sources = $3, model_used = $4, completed_at = NOW()
		WHERE id = $5
	`, model.StatusCompleted, guide.Content, sources, guide.ModelUsed, guide.ID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO guide_verdict(guide_id, passed, inconclusive, issues, style_valid, style_issues)
		VALUES($1, $2, $3, $4, $5, $6)
	`, guide.ID, verdict.Passed, verdict.Inconclusive, issues, verdict.StyleValid, styleIssues)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *GuideRepository) GetVerdictByGuideID(guideID int64) (*model.GuideVerdict, error) {
	var v model.GuideVerdict
	var issuesJSON, styleIssuesJSON []byte
	err := r.db.QueryRow(`
		SELECT guide_id, passed, inconclusive, issues, style_valid, style_issues, created_at
		FROM guide_verdict
		WHERE guide_id = $1
	`, guideID).Scan(&v.GuideID, &v.Passed, &v.Inconclusive, &issuesJSON, &v.StyleValid, &styleIssuesJSON, &v.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if len(issuesJSON) > 0 {
		if err := json.Unmarshal(issuesJSON, &v.Issues); err != nil {
			return nil, err
		}
	}
	if len(styleIssuesJSON) > 0 {
		if err := json.Unmarshal(styleIssuesJSON, &v.StyleIssues); err != nil {
			return nil, err
		}
	}

	return &v, nil
}

func (r *GuideRepository) GetErrorCount(guideID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM processing_error WHERE guide_id = $1
	`, guideID).Scan(&count)
	return count, err
}

func (r *GuideRepository) SaveError(guideID int64, message, errorType string) error {
	_, err := r.db.Exec(`
		INSERT INTO processing_error(guide_id, error_message, error_type)
		VALUES($1, $2, $3)
	`, guideID, message, errorType)
	return err
}
