package service

import (
	"context"
	"time"

	"KizombaTok.com/cmd/model"
	"KizombaTok.com/cmd/notification/dal/db"
	"KizombaTok.com/cmd/notification/infras/redis"
	relationdb "KizombaTok.com/cmd/relation/dal/db"
	userdb "KizombaTok.com/cmd/user/dal/db"
	"KizombaTok.com/pkg/constants"
	"KizombaTok.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type NotificationService struct {
	ctx context.Context
}

func NewNotificationService(ctx context.Context) *NotificationService {
	return &NotificationService{ctx: ctx}
}

// Activities 活动中心 三路事件各取最近若干条后归并
// kind 非空时只保留指定类别
func (s *NotificationService) Activities(userId int64, kind string) ([]*Activity, error) {
	follows, err := relationdb.GetRecentFollowers(s.ctx, userId, constants.ActivityFetchLimit)
	if err != nil {
		return nil, err
	}
	reactions, err := db.GetReactionsOnUserPosts(s.ctx, userId, constants.ActivityFetchLimit)
	if err != nil {
		return nil, err
	}
	comments, err := db.GetCommentsOnUserPosts(s.ctx, userId, constants.ActivityFetchLimit)
	if err != nil {
		return nil, err
	}

	merged := MergeActivities(
		BuildFollowActivities(follows),
		BuildLikeActivities(reactions),
		BuildCommentActivities(comments),
	)
	merged = FilterActivities(merged, kind)

	if err := s.attachActors(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *NotificationService) attachActors(activities []*Activity) error {
	uids := make([]int64, 0, len(activities))
	seen := make(map[int64]struct{}, len(activities))
	for _, a := range activities {
		if _, ok := seen[a.ActorId]; ok {
			continue
		}
		seen[a.ActorId] = struct{}{}
		uids = append(uids, a.ActorId)
	}
	users, err := userdb.GetUsersByIds(s.ctx, uids)
	if err != nil {
		return err
	}
	for _, a := range activities {
		a.Actor = users[a.ActorId]
	}
	return nil
}

// UnreadCount 未读角标 带短时缓存
func (s *NotificationService) UnreadCount(userId int64) (int64, error) {
	cached, hit, err := redis.GetCachedUnread(s.ctx, userId)
	if err != nil {
		hlog.Errorf("Unread cache read failed: %v", err)
	} else if hit {
		return cached, nil
	}

	count, err := db.CountUnread(s.ctx, userId)
	if err != nil {
		return 0, err
	}
	if err := redis.SetCachedUnread(s.ctx, userId, count); err != nil {
		hlog.Errorf("Unread cache write failed: %v", err)
	}
	return count, nil
}

// MarkAllRead 打开收件箱时清零
func (s *NotificationService) MarkAllRead(userId int64) error {
	if err := db.MarkAllRead(s.ctx, userId); err != nil {
		return err
	}
	if err := redis.InvalidateUnread(s.ctx, userId); err != nil {
		hlog.Errorf("Unread cache invalidate failed: %v", err)
	}
	return nil
}

// HandleActivityEvent 消费MQ事件落站内信 消费端注入给consumer
func HandleActivityEvent(ctx context.Context, event *mq.ActivityEvent) error {
	message := &model.Message{
		UserId:    event.ReceiverID,
		SenderId:  event.ActorID,
		Kind:      event.Kind,
		Content:   event.Excerpt,
		PostId:    event.PostID,
		Read:      false,
		CreatedAt: time.Unix(event.Timestamp, 0).Format(constants.DataFormate),
	}
	if err := db.InsertMessage(ctx, message); err != nil {
		return err
	}
	if err := redis.InvalidateUnread(ctx, event.ReceiverID); err != nil {
		hlog.Errorf("Unread cache invalidate failed: %v", err)
	}
	return nil
}
