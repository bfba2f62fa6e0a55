package service

import (
	"context"
	"time"

	"KizombaTok.com/cmd/model"
	"KizombaTok.com/cmd/relation/dal/db"
	userdb "KizombaTok.com/cmd/user/dal/db"
	"KizombaTok.com/pkg/constants"
	"KizombaTok.com/pkg/errno"
	"KizombaTok.com/pkg/mq"
	"github.com/google/uuid"
)

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

type FollowResult struct {
	Following bool `json:"following"`
}

// ToggleFollow 关注或取关 不允许关注自己 新增关注时通知对方
func (s *RelationService) ToggleFollow(followerId, followingId int64) (*FollowResult, error) {
	if followerId == followingId {
		return nil, errno.RequestErr.WithMessage("cannot follow yourself")
	}
	target, err := userdb.GetUser(s.ctx, followingId)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("user not found")
	}

	following, err := db.HasFollow(s.ctx, followerId, followingId)
	if err != nil {
		return nil, err
	}
	if following {
		if err := db.DeleteFollow(s.ctx, followerId, followingId); err != nil {
			return nil, err
		}
		return &FollowResult{Following: false}, nil
	}

	follow := &model.Follow{
		FollowerId:  followerId,
		FollowingId: followingId,
		CreatedAt:   time.Now().Format(constants.DataFormate),
	}
	if err := db.CreateFollow(s.ctx, follow); err != nil {
		return nil, err
	}
	mq.PublishActivity(s.ctx, &mq.ActivityEvent{
		EventID:    uuid.NewString(),
		Kind:       constants.ActivityKindFollow,
		ActorID:    followerId,
		ReceiverID: followingId,
		Timestamp:  time.Now().Unix(),
	})
	return &FollowResult{Following: true}, nil
}

func (s *RelationService) IsFollowing(followerId, followingId int64) (bool, error) {
	return db.HasFollow(s.ctx, followerId, followingId)
}
