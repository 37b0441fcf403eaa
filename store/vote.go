package store

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/emilsberzins2000/AnonForum/models"
)

// CastVote upserts the (voter, targetType, targetID) ballot, overwriting
// any prior value: a repeat vote replaces, it does not accumulate. When the
// target is a post, the post's score is recomputed as the sum of all votes
// currently recorded against it, inside the same transaction as the upsert,
// so concurrent votes can never leave a score that reflects a stale vote
// set. Votes on comments are recorded but never aggregated into a score.
// The target is not checked for existence.
func (s *ForumStore) CastVote(voter, targetType string, targetID uint, value int) error {
	if voter == "" {
		return validationf("voter identity cannot be empty")
	}
	if targetType != models.TargetPost && targetType != models.TargetComment {
		return validationf("target type must be %q or %q", models.TargetPost, models.TargetComment)
	}
	if targetID == 0 {
		return validationf("target id must be a positive integer")
	}
	if value != 1 && value != -1 {
		return validationf("vote value must be -1 or +1")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		vote := models.Vote{
			VoterAnon:  voter,
			TargetType: targetType,
			TargetID:   targetID,
			Value:      value,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_anon"},
				{Name: "target_type"},
				{Name: "target_id"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{"value": value}),
		}).Create(&vote).Error; err != nil {
			return err
		}

		if targetType != models.TargetPost {
			return nil
		}

		var score int64
		if err := tx.Model(&models.Vote{}).
			Where("target_type = ? AND target_id = ?", models.TargetPost, targetID).
			Select("COALESCE(SUM(value), 0)").
			Scan(&score).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", targetID).
			UpdateColumn("score", score).Error
	})
	if err != nil {
		return &StorageError{Op: "cast vote", Err: err}
	}
	return nil
}
