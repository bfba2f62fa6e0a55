package service

import (
	"testing"

	"KizombaTok.com/cmd/model"
)

func comment(id, parentId int64, createdAt string) *model.Comment {
	return &model.Comment{CommentId: id, ParentId: parentId, CreatedAt: createdAt}
}

func TestBuildCommentTree(t *testing.T) {
	t.Run("replies attach to root oldest first", func(t *testing.T) {
		// 入参为时间倒序 与DAL一致
		input := []*model.Comment{
			comment(4, 1, "2024-01-01 00:00:40"),
			comment(3, 0, "2024-01-01 00:00:30"),
			comment(2, 1, "2024-01-01 00:00:20"),
			comment(1, 0, "2024-01-01 00:00:10"),
		}
		threads := BuildCommentTree(input)
		if len(threads) != 2 {
			t.Fatalf("expected 2 threads, got %d", len(threads))
		}
		if threads[0].Root.CommentId != 3 || threads[1].Root.CommentId != 1 {
			t.Errorf("expected roots [3 1], got [%d %d]", threads[0].Root.CommentId, threads[1].Root.CommentId)
		}
		replies := threads[1].Replies
		if len(replies) != 2 || replies[0].CommentId != 2 || replies[1].CommentId != 4 {
			t.Errorf("expected replies [2 4] under root 1, got %v", replies)
		}
	})

	t.Run("deep nesting collapses to root ancestor", func(t *testing.T) {
		input := []*model.Comment{
			comment(3, 2, "2024-01-01 00:00:30"),
			comment(2, 1, "2024-01-01 00:00:20"),
			comment(1, 0, "2024-01-01 00:00:10"),
		}
		threads := BuildCommentTree(input)
		if len(threads) != 1 {
			t.Fatalf("expected 1 thread, got %d", len(threads))
		}
		replies := threads[0].Replies
		if len(replies) != 2 || replies[0].CommentId != 2 || replies[1].CommentId != 3 {
			t.Errorf("expected replies [2 3], got %v", replies)
		}
	})

	t.Run("broken parent chain becomes root", func(t *testing.T) {
		input := []*model.Comment{
			comment(5, 99, "2024-01-01 00:00:50"),
		}
		threads := BuildCommentTree(input)
		if len(threads) != 1 || threads[0].Root.CommentId != 5 {
			t.Fatalf("expected orphan promoted to root, got %v", threads)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if threads := BuildCommentTree(nil); len(threads) != 0 {
			t.Errorf("expected no threads, got %d", len(threads))
		}
	})
}
