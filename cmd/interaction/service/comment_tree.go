package service

import (
	"sort"

	"KizombaTok.com/cmd/model"
)

// CommentThread 单层评论树 回复挂在根评论下
type CommentThread struct {
	Root    *model.Comment
	Replies []*model.Comment
}

// BuildCommentTree 把平铺的评论组装成单层树
// 根评论保持入参顺序(最新在前) 回复沿父链归并到根祖先 组内最早在前
// 父链断裂的评论按根评论处理
func BuildCommentTree(comments []*model.Comment) []*CommentThread {
	byId := make(map[int64]*model.Comment, len(comments))
	for _, c := range comments {
		byId[c.CommentId] = c
	}

	threads := make([]*CommentThread, 0, len(comments))
	threadByRoot := make(map[int64]*CommentThread, len(comments))
	replyGroups := make(map[int64][]*model.Comment)

	for _, c := range comments {
		rootId := rootAncestor(c, byId)
		if rootId == c.CommentId {
			thread := &CommentThread{Root: c, Replies: []*model.Comment{}}
			threads = append(threads, thread)
			threadByRoot[c.CommentId] = thread
			continue
		}
		replyGroups[rootId] = append(replyGroups[rootId], c)
	}

	for rootId, replies := range replyGroups {
		thread, ok := threadByRoot[rootId]
		if !ok {
			continue
		}
		thread.Replies = replies
	}
	for _, thread := range threads {
		sort.SliceStable(thread.Replies, func(i, j int) bool {
			ri, rj := thread.Replies[i], thread.Replies[j]
			if ri.CreatedAt != rj.CreatedAt {
				return ri.CreatedAt < rj.CreatedAt
			}
			return ri.CommentId < rj.CommentId
		})
	}
	return threads
}

// rootAncestor 沿父链上溯到根 父节点缺失时当前节点就是根
func rootAncestor(c *model.Comment, byId map[int64]*model.Comment) int64 {
	cur := c
	for cur.ParentId != 0 {
		parent, ok := byId[cur.ParentId]
		if !ok {
			break
		}
		cur = parent
	}
	return cur.CommentId
}
