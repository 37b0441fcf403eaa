package models

// Vote target types.
const (
	TargetPost    = "post"
	TargetComment = "comment"
)

// Vote records one ballot per (voter, target). VoterAnon is the session's
// anon token, or the caller's network address when no session exists. The
// target is referenced by type and id without a foreign key, so votes may
// point at targets that no longer exist.
type Vote struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	VoterAnon  string `gorm:"column:user_anon;size:64;not null;uniqueIndex:idx_votes_voter_target" json:"-"`
	TargetType string `gorm:"size:16;not null;uniqueIndex:idx_votes_voter_target" json:"target_type"`
	TargetID   uint   `gorm:"not null;uniqueIndex:idx_votes_voter_target" json:"target_id"`
	Value      int    `gorm:"not null" json:"value"`
}
