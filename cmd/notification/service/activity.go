package service

import (
	"fmt"
	"sort"

	"KizombaTok.com/cmd/model"
	"KizombaTok.com/pkg/constants"
)

// Activity 活动中心的一条记录 三类事件归一后的形态
type Activity struct {
	Id        string      `json:"id"`
	Kind      string      `json:"kind"`
	ActorId   int64       `json:"-"`
	Actor     *model.User `json:"actor"`
	PostId    int64       `json:"post_id,omitempty"`
	Excerpt   string      `json:"excerpt,omitempty"`
	CreatedAt string      `json:"created_at"`
}

// BuildFollowActivities 关注记录转活动 没有自增主键 用关注者加时间拼ID
func BuildFollowActivities(follows []*model.Follow) []*Activity {
	activities := make([]*Activity, 0, len(follows))
	for _, f := range follows {
		activities = append(activities, &Activity{
			Id:        fmt.Sprintf("follow-%d-%s", f.FollowerId, f.CreatedAt),
			Kind:      constants.ActivityKindFollow,
			ActorId:   f.FollowerId,
			CreatedAt: f.CreatedAt,
		})
	}
	return activities
}

func BuildLikeActivities(reactions []*model.Reaction) []*Activity {
	activities := make([]*Activity, 0, len(reactions))
	for _, r := range reactions {
		activities = append(activities, &Activity{
			Id:        fmt.Sprintf("like-%d", r.ReactionId),
			Kind:      constants.ActivityKindLike,
			ActorId:   r.UserId,
			PostId:    r.PostId,
			CreatedAt: r.CreatedAt,
		})
	}
	return activities
}

func BuildCommentActivities(comments []*model.Comment) []*Activity {
	activities := make([]*Activity, 0, len(comments))
	for _, c := range comments {
		activities = append(activities, &Activity{
			Id:        fmt.Sprintf("comment-%d", c.CommentId),
			Kind:      constants.ActivityKindComment,
			ActorId:   c.UserId,
			PostId:    c.PostId,
			Excerpt:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}
	return activities
}

// MergeActivities 多路归并 整体按时间倒序做一次排序 平级按ID保证稳定输出
func MergeActivities(groups ...[]*Activity) []*Activity {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	merged := make([]*Activity, 0, total)
	for _, g := range groups {
		merged = append(merged, g...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].CreatedAt != merged[j].CreatedAt {
			return merged[i].CreatedAt > merged[j].CreatedAt
		}
		return merged[i].Id < merged[j].Id
	})
	return merged
}

// FilterActivities 按类别过滤 kind为空表示全部
func FilterActivities(activities []*Activity, kind string) []*Activity {
	if kind == "" {
		return activities
	}
	filtered := make([]*Activity, 0, len(activities))
	for _, a := range activities {
		if a.Kind == kind {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
