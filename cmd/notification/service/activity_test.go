package service

import (
	"testing"

	"KizombaTok.com/cmd/model"
	"KizombaTok.com/pkg/constants"
)

func TestBuildActivities(t *testing.T) {
	t.Run("follow id scheme", func(t *testing.T) {
		follows := []*model.Follow{
			{FollowerId: 7, FollowingId: 1, CreatedAt: "2024-01-01 00:00:10"},
		}
		got := BuildFollowActivities(follows)
		if len(got) != 1 {
			t.Fatalf("expected 1 activity, got %d", len(got))
		}
		if got[0].Id != "follow-7-2024-01-01 00:00:10" {
			t.Errorf("unexpected follow id: %s", got[0].Id)
		}
		if got[0].Kind != constants.ActivityKindFollow || got[0].ActorId != 7 {
			t.Errorf("unexpected follow activity: %+v", got[0])
		}
	})

	t.Run("like and comment carry post reference", func(t *testing.T) {
		likes := BuildLikeActivities([]*model.Reaction{
			{ReactionId: 11, PostId: 5, UserId: 2, CreatedAt: "2024-01-01 00:00:20"},
		})
		if likes[0].Id != "like-11" || likes[0].PostId != 5 {
			t.Errorf("unexpected like activity: %+v", likes[0])
		}

		comments := BuildCommentActivities([]*model.Comment{
			{CommentId: 13, PostId: 5, UserId: 3, Content: "nice moves", CreatedAt: "2024-01-01 00:00:30"},
		})
		if comments[0].Id != "comment-13" || comments[0].Excerpt != "nice moves" {
			t.Errorf("unexpected comment activity: %+v", comments[0])
		}
	})
}

func TestMergeActivities(t *testing.T) {
	follows := BuildFollowActivities([]*model.Follow{
		{FollowerId: 7, CreatedAt: "2024-01-01 00:00:10"},
	})
	likes := BuildLikeActivities([]*model.Reaction{
		{ReactionId: 11, PostId: 5, UserId: 2, CreatedAt: "2024-01-01 00:00:30"},
	})
	comments := BuildCommentActivities([]*model.Comment{
		{CommentId: 13, PostId: 5, UserId: 3, CreatedAt: "2024-01-01 00:00:20"},
	})

	merged := MergeActivities(follows, likes, comments)

	t.Run("length is sum of inputs", func(t *testing.T) {
		if len(merged) != 3 {
			t.Fatalf("expected 3 activities, got %d", len(merged))
		}
	})

	t.Run("newest first across sources", func(t *testing.T) {
		if merged[0].Id != "like-11" || merged[1].Id != "comment-13" || merged[2].Id != "follow-7-2024-01-01 00:00:10" {
			t.Errorf("unexpected merge order: [%s %s %s]", merged[0].Id, merged[1].Id, merged[2].Id)
		}
	})

	t.Run("ties break on id for stable output", func(t *testing.T) {
		a := BuildLikeActivities([]*model.Reaction{
			{ReactionId: 2, CreatedAt: "2024-01-01 00:00:10"},
			{ReactionId: 1, CreatedAt: "2024-01-01 00:00:10"},
		})
		got := MergeActivities(a)
		if got[0].Id != "like-1" || got[1].Id != "like-2" {
			t.Errorf("unexpected tie order: [%s %s]", got[0].Id, got[1].Id)
		}
	})

	t.Run("empty sources", func(t *testing.T) {
		if got := MergeActivities(nil, nil, nil); len(got) != 0 {
			t.Errorf("expected empty merge, got %d", len(got))
		}
	})
}

func TestFilterActivities(t *testing.T) {
	merged := MergeActivities(
		BuildFollowActivities([]*model.Follow{{FollowerId: 7, CreatedAt: "2024-01-01 00:00:10"}}),
		BuildLikeActivities([]*model.Reaction{{ReactionId: 11, CreatedAt: "2024-01-01 00:00:20"}}),
	)

	t.Run("empty kind keeps everything", func(t *testing.T) {
		if got := FilterActivities(merged, ""); len(got) != 2 {
			t.Errorf("expected 2 activities, got %d", len(got))
		}
	})

	t.Run("kind keeps only matches", func(t *testing.T) {
		got := FilterActivities(merged, constants.ActivityKindLike)
		if len(got) != 1 || got[0].Id != "like-11" {
			t.Errorf("unexpected filter result: %+v", got)
		}
	})

	t.Run("unknown kind yields empty", func(t *testing.T) {
		if got := FilterActivities(merged, "mention"); len(got) != 0 {
			t.Errorf("expected empty result, got %d", len(got))
		}
	})
}
