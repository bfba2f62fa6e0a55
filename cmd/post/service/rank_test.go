package service

import (
	"testing"

	"KizombaTok.com/cmd/model"
)

func post(id, soundId, views int64, createdAt string) *model.Post {
	return &model.Post{PostId: id, SoundId: soundId, Views: views, CreatedAt: createdAt}
}

func ids(posts []*model.Post) []int64 {
	out := make([]int64, len(posts))
	for i, p := range posts {
		out[i] = p.PostId
	}
	return out
}

func equalIds(a []int64, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestReuseCounts(t *testing.T) {
	posts := []*model.Post{
		post(1, 0, 3, "2024-01-01 00:00:10"),
		post(2, 1, 0, "2024-01-01 00:00:20"),
		post(3, 1, 0, "2024-01-01 00:00:30"),
	}
	counts := ReuseCounts(posts)
	if counts[1] != 2 {
		t.Errorf("expected reuse count 2 for post 1, got %d", counts[1])
	}
	if counts[2] != 0 || counts[3] != 0 {
		t.Errorf("expected zero reuse for posts 2 and 3, got %d and %d", counts[2], counts[3])
	}

	t.Run("self reference counts", func(t *testing.T) {
		selfRef := []*model.Post{post(7, 7, 0, "2024-01-01 00:00:00")}
		if got := ReuseCounts(selfRef)[7]; got != 1 {
			t.Errorf("expected self reference to count, got %d", got)
		}
	})
}

func TestRankPosts(t *testing.T) {
	a := post(1, 0, 3, "2024-01-01 00:00:10")
	b := post(2, 1, 0, "2024-01-01 00:00:20")
	c := post(3, 1, 0, "2024-01-01 00:00:30")

	t.Run("reuse count dominates then newest first", func(t *testing.T) {
		got := RankPosts([]*model.Post{a, b, c}, ByCreatedAt, 0)
		if !equalIds(ids(got), []int64{1, 3, 2}) {
			t.Errorf("expected [1 3 2], got %v", ids(got))
		}
	})

	t.Run("views as secondary key", func(t *testing.T) {
		x := post(10, 0, 5, "2024-01-01 00:00:01")
		y := post(11, 0, 50, "2024-01-01 00:00:02")
		got := RankPosts([]*model.Post{x, y}, ByViews, 0)
		if !equalIds(ids(got), []int64{11, 10}) {
			t.Errorf("expected [11 10], got %v", ids(got))
		}
	})

	t.Run("pin moves target to front keeping rest", func(t *testing.T) {
		got := RankPosts([]*model.Post{a, b, c}, ByCreatedAt, 2)
		if !equalIds(ids(got), []int64{2, 1, 3}) {
			t.Errorf("expected [2 1 3], got %v", ids(got))
		}
	})

	t.Run("pin of unknown id is a no-op", func(t *testing.T) {
		got := RankPosts([]*model.Post{a, b, c}, ByCreatedAt, 999)
		if !equalIds(ids(got), []int64{1, 3, 2}) {
			t.Errorf("expected [1 3 2], got %v", ids(got))
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		input := []*model.Post{a, b, c}
		RankPosts(input, ByCreatedAt, 0)
		if !equalIds(ids(input), []int64{1, 2, 3}) {
			t.Errorf("input order changed: %v", ids(input))
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := RankPosts([]*model.Post{a, b, c}, ByCreatedAt, 0)
		twice := RankPosts(once, ByCreatedAt, 0)
		if !equalIds(ids(once), ids(twice)) {
			t.Errorf("ranking not idempotent: %v vs %v", ids(once), ids(twice))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := RankPosts(nil, ByCreatedAt, 0); len(got) != 0 {
			t.Errorf("expected empty result, got %v", ids(got))
		}
	})
}

func TestDedupePosts(t *testing.T) {
	p2 := post(2, 0, 0, "")
	p5 := post(5, 0, 0, "")
	p9 := post(9, 0, 0, "")

	t.Run("first appearance wins", func(t *testing.T) {
		got := DedupePosts([]*model.Post{p5, p9}, []*model.Post{p9, p2, p5})
		if !equalIds(ids(got), []int64{5, 9, 2}) {
			t.Errorf("expected [5 9 2], got %v", ids(got))
		}
	})

	t.Run("no duplicates in either side", func(t *testing.T) {
		got := DedupePosts([]*model.Post{p2}, []*model.Post{p5})
		if !equalIds(ids(got), []int64{2, 5}) {
			t.Errorf("expected [2 5], got %v", ids(got))
		}
	})

	t.Run("both sides empty", func(t *testing.T) {
		if got := DedupePosts(nil, nil); len(got) != 0 {
			t.Errorf("expected empty result, got %v", ids(got))
		}
	})
}
