package store

import (
	"time"

	"github.com/emilsberzins2000/AnonForum/models"
)

// PostView is a post annotated with its author's display name and the full
// ordered list of its comments, as returned by ListPostsWithComments.
type PostView struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Body        string        `json:"body"`
	Score       int           `json:"score"`
	CreatedAt   time.Time     `json:"created_at"`
	DisplayName *string       `json:"display_name"`
	Comments    []CommentView `json:"comments"`
}

// CommentView is a comment annotated with its author's display name.
type CommentView struct {
	ID          uint      `json:"id"`
	PostID      uint      `json:"post_id"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
	DisplayName *string   `json:"display_name"`
}

// CreatePost stores a new post with score 0. userID is nil for guest
// authors. Title and body are trimmed and truncated to 200/4000 runes; an
// empty result in either is a ValidationError.
func (s *ForumStore) CreatePost(userID *uint, title, body string) (uint, error) {
	title = normalize(title, MaxTitle)
	body = normalize(body, MaxBody)
	if title == "" {
		return 0, validationf("title cannot be empty")
	}
	if body == "" {
		return 0, validationf("body cannot be empty")
	}

	post := models.Post{UserID: userID, Title: title, Body: body}
	if err := s.db.Create(&post).Error; err != nil {
		return 0, wrapWriteErr("create post", err)
	}
	return post.ID, nil
}

// ListPostsWithComments materializes every post, newest first (created_at
// descending, id descending on ties), with its comments oldest first
// (created_at ascending, id ascending on ties). Guest authorship surfaces
// as a nil display name. There is no pagination.
func (s *ForumStore) ListPostsWithComments() ([]PostView, error) {
	var posts []models.Post
	if err := s.db.Preload("User").
		Order("created_at DESC, id DESC").
		Find(&posts).Error; err != nil {
		return nil, &StorageError{Op: "list posts", Err: err}
	}

	views := make([]PostView, 0, len(posts))
	byID := make(map[uint]int, len(posts))
	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		views = append(views, PostView{
			ID:          p.ID,
			Title:       p.Title,
			Body:        p.Body,
			Score:       p.Score,
			CreatedAt:   p.CreatedAt,
			DisplayName: displayNameOf(p.User),
			Comments:    []CommentView{},
		})
		byID[p.ID] = len(views) - 1
		ids = append(ids, p.ID)
	}

	if len(ids) == 0 {
		return views, nil
	}

	var comments []models.Comment
	if err := s.db.Preload("User").
		Where("post_id IN ?", ids).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, &StorageError{Op: "list comments", Err: err}
	}

	for _, c := range comments {
		idx, ok := byID[c.PostID]
		if !ok {
			continue
		}
		views[idx].Comments = append(views[idx].Comments, CommentView{
			ID:          c.ID,
			PostID:      c.PostID,
			Body:        c.Body,
			CreatedAt:   c.CreatedAt,
			DisplayName: displayNameOf(c.User),
		})
	}

	return views, nil
}

func displayNameOf(u *models.User) *string {
	if u == nil {
		return nil
	}
	name := u.DisplayName
	return &name
}
