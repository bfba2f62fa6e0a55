package service

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"KizombaTok.com/cmd/model"
	"KizombaTok.com/cmd/post/dal/db"
	"KizombaTok.com/pkg/constants"
	"KizombaTok.com/pkg/errno"
	"KizombaTok.com/pkg/oss"
	"KizombaTok.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type PublishService struct {
	ctx context.Context
}

func NewPublishService(ctx context.Context) *PublishService {
	return &PublishService{ctx: ctx}
}

type PublishRequest struct {
	UserId      int64
	Content     string
	MediaType   string
	ContentType string
	FilePath    string
	SoundId     int64
}

// Publish 发布帖子 视频抽首帧做封面 素材传对象存储后落库
func (s *PublishService) Publish(req *PublishRequest) (*model.Post, error) {
	if req.MediaType != constants.MediaTypeVideo && req.MediaType != constants.MediaTypeImage {
		return nil, errno.ParamErr.WithMessage("unsupported media type")
	}
	if len(strings.TrimSpace(req.Content)) == 0 {
		return nil, errno.ParamErr.WithMessage("content is required")
	}
	if req.SoundId != 0 {
		original, err := db.GetPost(s.ctx, req.SoundId)
		if err != nil {
			return nil, err
		}
		if original == nil {
			return nil, errno.RecordNotFoundErr.WithMessage("sound source post not found")
		}
	}

	postId := utils.GenerateID()
	pid := strconv.FormatInt(postId, 10)
	mediaUrl, err := oss.UploadPostMedia(s.ctx, req.FilePath, pid, req.ContentType)
	if err != nil {
		return nil, err
	}

	var thumbnailUrl string
	if req.MediaType == constants.MediaTypeVideo {
		thumbnailUrl, err = s.uploadThumbnail(req.FilePath, pid)
		if err != nil {
			// 封面失败不阻塞发布 前端回退到视频首帧
			hlog.Errorf("Failed to generate thumbnail for post %d: %v", postId, err)
			thumbnailUrl = ""
		}
	}

	post := &model.Post{
		PostId:       postId,
		UserId:       req.UserId,
		Content:      req.Content,
		MediaUrl:     mediaUrl,
		MediaType:    req.MediaType,
		ThumbnailUrl: thumbnailUrl,
		SoundId:      req.SoundId,
		Views:        0,
		CreatedAt:    time.Now().Format(constants.DataFormate),
	}
	if err := db.InsertPost(s.ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PublishService) uploadThumbnail(videoPath string, pid string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "kizombatok-cover-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tmpDir)

	coverPath, err := utils.GetVideoThumbnail(videoPath, tmpDir)
	if err != nil {
		return "", err
	}
	return oss.UploadPostCover(s.ctx, coverPath, pid)
}
