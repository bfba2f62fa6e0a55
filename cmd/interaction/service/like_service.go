package service

import (
	"context"
	"time"

	"KizombaTok.com/cmd/interaction/dal/db"
	"KizombaTok.com/cmd/model"
	postdb "KizombaTok.com/cmd/post/dal/db"
	"KizombaTok.com/pkg/constants"
	"KizombaTok.com/pkg/errno"
	"KizombaTok.com/pkg/mq"
	"github.com/google/uuid"
)

type LikeService struct {
	ctx context.Context
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{ctx: ctx}
}

type LikeResult struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

// ToggleLike 点赞或取消点赞帖子 新增点赞时通知作者
func (s *LikeService) ToggleLike(userId, postId int64) (*LikeResult, error) {
	post, err := postdb.GetPost(s.ctx, postId)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("post not found")
	}

	liked, err := db.HasReaction(s.ctx, postId, userId)
	if err != nil {
		return nil, err
	}
	if liked {
		if err := db.DeleteReaction(s.ctx, postId, userId); err != nil {
			return nil, err
		}
	} else {
		reaction := &model.Reaction{
			PostId:    postId,
			UserId:    userId,
			CreatedAt: time.Now().Format(constants.DataFormate),
		}
		if err := db.CreateReaction(s.ctx, reaction); err != nil {
			return nil, err
		}
		if post.UserId != userId {
			mq.PublishActivity(s.ctx, &mq.ActivityEvent{
				EventID:    uuid.NewString(),
				Kind:       constants.ActivityKindLike,
				ActorID:    userId,
				ReceiverID: post.UserId,
				PostID:     postId,
				Timestamp:  time.Now().Unix(),
			})
		}
	}

	count, err := db.GetPostReactionCount(s.ctx, postId)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Liked: !liked, Count: count}, nil
}

// ToggleCommentLike 点赞或取消点赞评论 评论点赞不发活动事件
func (s *LikeService) ToggleCommentLike(userId, commentId int64) (*LikeResult, error) {
	comment, err := db.GetComment(s.ctx, commentId)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("comment not found")
	}

	liked, err := db.HasCommentReaction(s.ctx, commentId, userId)
	if err != nil {
		return nil, err
	}
	if liked {
		if err := db.DeleteCommentReaction(s.ctx, commentId, userId); err != nil {
			return nil, err
		}
	} else {
		reaction := &model.CommentReaction{
			CommentId: commentId,
			UserId:    userId,
			CreatedAt: time.Now().Format(constants.DataFormate),
		}
		if err := db.CreateCommentReaction(s.ctx, reaction); err != nil {
			return nil, err
		}
	}

	count, err := db.GetCommentReactionCount(s.ctx, commentId)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Liked: !liked, Count: count}, nil
}
