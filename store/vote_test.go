package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/emilsberzins2000/AnonForum/models"
)

func postScore(t *testing.T, s *ForumStore, postID uint) int {
	t.Helper()
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		t.Fatalf("load post %d: %v", postID, err)
	}
	return post.Score
}

func TestCastVoteLastWriteWins(t *testing.T) {
	s := newTestStore(t)

	postID, err := s.CreatePost(nil, "title", "body")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if err := s.CastVote("voter-1", models.TargetPost, postID, 1); err != nil {
		t.Fatalf("CastVote +1: %v", err)
	}
	if got := postScore(t, s, postID); got != 1 {
		t.Fatalf("expected score 1 after upvote, got %d", got)
	}

	if err := s.CastVote("voter-1", models.TargetPost, postID, -1); err != nil {
		t.Fatalf("CastVote -1: %v", err)
	}

	var votes []models.Vote
	if err := s.db.Where("user_anon = ?", "voter-1").Find(&votes).Error; err != nil {
		t.Fatalf("load votes: %v", err)
	}
	if len(votes) != 1 {
		t.Fatalf("expected exactly one vote row, got %d", len(votes))
	}
	if votes[0].Value != -1 {
		t.Fatalf("expected final value -1, got %d", votes[0].Value)
	}
	if got := postScore(t, s, postID); got != -1 {
		t.Fatalf("expected score -1 after replacement, got %d", got)
	}
}

func TestCastVoteSumAcrossIdentities(t *testing.T) {
	s := newTestStore(t)

	postID, err := s.CreatePost(nil, "title", "body")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if err := s.CastVote("alice", models.TargetPost, postID, 1); err != nil {
		t.Fatalf("CastVote alice: %v", err)
	}
	if err := s.CastVote("bob", models.TargetPost, postID, 1); err != nil {
		t.Fatalf("CastVote bob: %v", err)
	}
	if got := postScore(t, s, postID); got != 2 {
		t.Fatalf("expected score 2, got %d", got)
	}

	if err := s.CastVote("bob", models.TargetPost, postID, -1); err != nil {
		t.Fatalf("CastVote bob flip: %v", err)
	}
	if got := postScore(t, s, postID); got != 0 {
		t.Fatalf("expected score 0 after flip, got %d", got)
	}
}

func TestCastVoteOnCommentIsRecordedNotScored(t *testing.T) {
	s := newTestStore(t)

	postID, err := s.CreatePost(nil, "title", "body")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	commentID, err := s.CreateComment(nil, postID, "a comment")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	if err := s.CastVote("alice", models.TargetComment, commentID, 1); err != nil {
		t.Fatalf("CastVote on comment: %v", err)
	}

	var count int64
	s.db.Model(&models.Vote{}).Where("target_type = ?", models.TargetComment).Count(&count)
	if count != 1 {
		t.Fatalf("expected one comment vote row, got %d", count)
	}
	// Comment votes never feed any score, and a comment vote sharing the
	// post's id must not leak into the post's score.
	if got := postScore(t, s, postID); got != 0 {
		t.Fatalf("expected post score untouched, got %d", got)
	}
}

func TestCastVoteSeparatesTargetTypes(t *testing.T) {
	s := newTestStore(t)

	postID, err := s.CreatePost(nil, "title", "body")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	// Same identity, same numeric id, different target types: two rows.
	if err := s.CastVote("alice", models.TargetPost, postID, 1); err != nil {
		t.Fatalf("CastVote post: %v", err)
	}
	if err := s.CastVote("alice", models.TargetComment, postID, -1); err != nil {
		t.Fatalf("CastVote comment: %v", err)
	}

	var count int64
	s.db.Model(&models.Vote{}).Count(&count)
	if count != 2 {
		t.Fatalf("expected two vote rows, got %d", count)
	}
	if got := postScore(t, s, postID); got != 1 {
		t.Fatalf("expected post score 1, got %d", got)
	}
}

func TestCastVoteValidation(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name       string
		voter      string
		targetType string
		targetID   uint
		value      int
	}{
		{"bad target type", "v", "user", 1, 1},
		{"zero target id", "v", models.TargetPost, 0, 1},
		{"zero value", "v", models.TargetPost, 1, 0},
		{"out of range value", "v", models.TargetPost, 1, 2},
		{"empty voter", "", models.TargetPost, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.CastVote(tt.voter, tt.targetType, tt.targetID, tt.value)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}

	var count int64
	s.db.Model(&models.Vote{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no persisted votes, found %d", count)
	}
}

func TestCastVoteConcurrentVoters(t *testing.T) {
	s := newTestStore(t)

	// sqlite permits one writer at a time; a single connection keeps the
	// driver from returning busy errors while goroutines interleave.
	sqlDB, err := s.db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	postID, err := s.CreatePost(nil, "title", "body")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	const voters = 10
	errCh := make(chan error, voters)
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			voter := fmt.Sprintf("voter-%d", i)
			// Everyone upvotes first, then odd voters flip to -1, so the
			// score must reflect each voter's last value only.
			if err := s.CastVote(voter, models.TargetPost, postID, 1); err != nil {
				errCh <- err
				return
			}
			if i%2 == 1 {
				if err := s.CastVote(voter, models.TargetPost, postID, -1); err != nil {
					errCh <- err
				}
			}
		}(i)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("concurrent CastVote: %v", err)
	}

	var count int64
	s.db.Model(&models.Vote{}).Count(&count)
	if count != voters {
		t.Fatalf("expected %d vote rows, got %d", voters, count)
	}
	if got := postScore(t, s, postID); got != 0 {
		t.Fatalf("expected score 0 from 5 up and 5 down, got %d", got)
	}
}

func TestCastVoteAcceptsDanglingTarget(t *testing.T) {
	s := newTestStore(t)

	// Votes may point at targets that do not exist.
	if err := s.CastVote("alice", models.TargetComment, 424242, 1); err != nil {
		t.Fatalf("expected dangling vote to be accepted, got %v", err)
	}
}
