package service

import (
	"context"

	"KizombaTok.com/cmd/interaction/dal/db"
	postdb "KizombaTok.com/cmd/post/dal/db"
	relationdb "KizombaTok.com/cmd/relation/dal/db"
	"KizombaTok.com/pkg/errno"
)

type SummaryService struct {
	ctx context.Context
}

func NewSummaryService(ctx context.Context) *SummaryService {
	return &SummaryService{ctx: ctx}
}

// PostSummary 帖子卡片上的互动汇总
type PostSummary struct {
	LikeCount      int64 `json:"like_count"`
	CommentCount   int64 `json:"comment_count"`
	Liked          bool  `json:"liked"`
	FollowedAuthor bool  `json:"followed_author"`
}

// Summary viewerId为0时只返回计数
func (s *SummaryService) Summary(postId, viewerId int64) (*PostSummary, error) {
	post, err := postdb.GetPost(s.ctx, postId)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("post not found")
	}

	likeCount, err := db.GetPostReactionCount(s.ctx, postId)
	if err != nil {
		return nil, err
	}
	commentCount, err := db.GetPostCommentCount(s.ctx, postId)
	if err != nil {
		return nil, err
	}

	summary := &PostSummary{LikeCount: likeCount, CommentCount: commentCount}
	if viewerId != 0 {
		summary.Liked, err = db.HasReaction(s.ctx, postId, viewerId)
		if err != nil {
			return nil, err
		}
		if viewerId != post.UserId {
			summary.FollowedAuthor, err = relationdb.HasFollow(s.ctx, viewerId, post.UserId)
			if err != nil {
				return nil, err
			}
		}
	}
	return summary, nil
}
