package service

import (
	"sort"

	"KizombaTok.com/cmd/model"
)

// SecondaryKey 同热度帖子的平级排序依据
type SecondaryKey int

const (
	ByCreatedAt SecondaryKey = iota
	ByViews
)

// ReuseCounts 统计每个原帖的翻跳次数 sound_id 指向原帖
// 自引用(sound_id等于自己的post_id)同样计入
func ReuseCounts(posts []*model.Post) map[int64]int64 {
	counts := make(map[int64]int64, len(posts))
	for _, post := range posts {
		if post.SoundId != 0 {
			counts[post.SoundId]++
		}
	}
	return counts
}

// RankPosts 按翻跳次数倒序排序 平级时按次级键倒序 排序稳定
// pinId 非零且命中时将该帖置顶 其余顺序不变 不修改入参
func RankPosts(posts []*model.Post, secondary SecondaryKey, pinId int64) []*model.Post {
	ranked := make([]*model.Post, len(posts))
	copy(ranked, posts)

	counts := ReuseCounts(ranked)
	sort.SliceStable(ranked, func(i, j int) bool {
		ci, cj := counts[ranked[i].PostId], counts[ranked[j].PostId]
		if ci != cj {
			return ci > cj
		}
		switch secondary {
		case ByViews:
			return ranked[i].Views > ranked[j].Views
		default:
			return ranked[i].CreatedAt > ranked[j].CreatedAt
		}
	})

	if pinId == 0 {
		return ranked
	}
	for i, post := range ranked {
		if post.PostId == pinId {
			pinned := make([]*model.Post, 0, len(ranked))
			pinned = append(pinned, post)
			pinned = append(pinned, ranked[:i]...)
			pinned = append(pinned, ranked[i+1:]...)
			return pinned
		}
	}
	return ranked
}

// DedupePosts 合并两组检索结果 按首次出现去重 first 整体排在 second 之前
func DedupePosts(first, second []*model.Post) []*model.Post {
	seen := make(map[int64]struct{}, len(first)+len(second))
	merged := make([]*model.Post, 0, len(first)+len(second))
	for _, post := range append(append([]*model.Post{}, first...), second...) {
		if _, ok := seen[post.PostId]; ok {
			continue
		}
		seen[post.PostId] = struct{}{}
		merged = append(merged, post)
	}
	return merged
}
