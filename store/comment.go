package store

import "github.com/emilsberzins2000/AnonForum/models"

// CreateComment stores a new comment on the given post. userID is nil for
// guest authors. The body is trimmed and truncated to 1000 runes; an empty
// result or a non-positive postID is a ValidationError. The post itself is
// not checked for existence: dangling comments are an accepted relaxed
// policy of this schema.
func (s *ForumStore) CreateComment(userID *uint, postID uint, body string) (uint, error) {
	if postID == 0 {
		return 0, validationf("post id must be a positive integer")
	}
	body = normalize(body, MaxCommentBody)
	if body == "" {
		return 0, validationf("comment body cannot be empty")
	}

	comment := models.Comment{PostID: postID, UserID: userID, Body: body}
	if err := s.db.Create(&comment).Error; err != nil {
		return 0, wrapWriteErr("create comment", err)
	}
	return comment.ID, nil
}
