package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"KizombaTok.com/cmd/interaction/dal/db"
	"KizombaTok.com/cmd/interaction/infras/redis"
	"KizombaTok.com/cmd/model"
	postdb "KizombaTok.com/cmd/post/dal/db"
	userdb "KizombaTok.com/cmd/user/dal/db"
	"KizombaTok.com/pkg/constants"
	"KizombaTok.com/pkg/errno"
	"KizombaTok.com/pkg/mq"
	"KizombaTok.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

const (
	maxCommentRunes       = 500
	maxCommentsPerMinute  = 10
	activityExcerptLength = 80
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

type PostCommentRequest struct {
	UserId   int64
	PostId   int64
	ParentId int64
	Content  string
}

// PostComment 发评论 支持回复 频控超限直接拒绝
// 帖子作者收到活动事件 自己评自己的帖子不触发
func (s *CommentService) PostComment(req *PostCommentRequest) (*model.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, errno.ParamErr.WithMessage("comment cannot be empty")
	}
	if utf8.RuneCountInString(content) > maxCommentRunes {
		return nil, errno.ParamErr.WithMessage("comment exceeds 500 characters")
	}

	post, err := postdb.GetPost(s.ctx, req.PostId)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("post not found")
	}
	if req.ParentId != 0 {
		parent, err := db.GetComment(s.ctx, req.ParentId)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.PostId != req.PostId {
			return nil, errno.RequestErr.WithMessage("parent comment not found on this post")
		}
	}

	rate, err := redis.IncrCommentRate(s.ctx, req.UserId)
	if err != nil {
		// 缓存不可用时降级到库内计数
		hlog.Errorf("Comment rate limit cache unavailable: %v", err)
		since := time.Now().Add(-time.Minute).Format(constants.DataFormate)
		rate, err = db.CountRecentCommentsByUser(s.ctx, req.UserId, since)
		if err != nil {
			return nil, err
		}
		rate++
	}
	if rate > maxCommentsPerMinute {
		return nil, errno.RequestErr.WithMessage("commenting too fast, slow down")
	}

	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		PostId:    req.PostId,
		UserId:    req.UserId,
		ParentId:  req.ParentId,
		Content:   content,
		CreatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := db.CreateComment(s.ctx, comment); err != nil {
		return nil, err
	}

	if post.UserId != req.UserId {
		mq.PublishActivity(s.ctx, &mq.ActivityEvent{
			EventID:    uuid.NewString(),
			Kind:       constants.ActivityKindComment,
			ActorID:    req.UserId,
			ReceiverID: post.UserId,
			PostID:     post.PostId,
			CommentID:  comment.CommentId,
			Excerpt:    excerpt(content),
			Timestamp:  time.Now().Unix(),
		})
	}
	return comment, nil
}

// excerpt 站内信里展示的评论摘要
func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= activityExcerptLength {
		return content
	}
	return string(runes[:activityExcerptLength]) + "..."
}

// CommentInfo 评论树节点 补全作者与点赞信息
type CommentInfo struct {
	Comment   *model.Comment `json:"comment"`
	Author    *model.User    `json:"author"`
	LikeCount int64          `json:"like_count"`
	Liked     bool           `json:"liked"`
	Replies   []*CommentInfo `json:"replies"`
}

// ListComments 评论区 单层树 viewerId为0表示未登录
func (s *CommentService) ListComments(postId, viewerId int64) ([]*CommentInfo, error) {
	comments, err := db.GetCommentsByPost(s.ctx, postId)
	if err != nil {
		return nil, err
	}
	threads := BuildCommentTree(comments)

	uids := make([]int64, 0, len(comments))
	seen := make(map[int64]struct{}, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.UserId]; ok {
			continue
		}
		seen[c.UserId] = struct{}{}
		uids = append(uids, c.UserId)
	}
	users, err := userdb.GetUsersByIds(s.ctx, uids)
	if err != nil {
		return nil, err
	}

	result := make([]*CommentInfo, 0, len(threads))
	for _, thread := range threads {
		root, err := s.buildCommentInfo(thread.Root, users, viewerId)
		if err != nil {
			return nil, err
		}
		for _, reply := range thread.Replies {
			info, err := s.buildCommentInfo(reply, users, viewerId)
			if err != nil {
				return nil, err
			}
			root.Replies = append(root.Replies, info)
		}
		result = append(result, root)
	}
	return result, nil
}

func (s *CommentService) buildCommentInfo(c *model.Comment, users map[int64]*model.User, viewerId int64) (*CommentInfo, error) {
	likeCount, err := db.GetCommentReactionCount(s.ctx, c.CommentId)
	if err != nil {
		return nil, err
	}
	liked := false
	if viewerId != 0 {
		liked, err = db.HasCommentReaction(s.ctx, c.CommentId, viewerId)
		if err != nil {
			return nil, err
		}
	}
	return &CommentInfo{
		Comment:   c,
		Author:    users[c.UserId],
		LikeCount: likeCount,
		Liked:     liked,
		Replies:   []*CommentInfo{},
	}, nil
}
