package oss

import (
	"bytes"
	"context"
	"fmt"

	"KizombaTok.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
)

// 存储桶常量
const (
	BucketAvatars = "kizombatok-avatars" // 用户头像
	BucketMedia   = "kizombatok-media"   // 帖子视频与图片
	BucketCovers  = "kizombatok-covers"  // 视频封面
)

const defaultRegion = "us-east-1"

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: defaultRegion})
		if err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
		hlog.Infof("Created bucket: %s", bucketName)
	}
	return nil
}

func publicURL(bucketName, objectName string) string {
	scheme := "http"
	if config.ConfigInfo.Minio.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, config.ConfigInfo.Minio.PublicHost, bucketName, objectName)
}

// UploadAvatar 上传头像 先删除旧头像再写入新头像
func UploadAvatar(ctx context.Context, data []byte, uid string, contentType string) (string, error) {
	if err := ensureBucket(ctx, BucketAvatars); err != nil {
		return "", err
	}

	var suffix string
	switch contentType {
	case "image/jpeg", "image/jpg":
		suffix = ".jpg"
	case "image/png":
		suffix = ".png"
	default:
		return "", fmt.Errorf("unsupported image format: %s", contentType)
	}

	deleteAvatar(ctx, uid)

	objectName := "avatar/" + uid + suffix
	_, err := minioClient.PutObject(ctx, BucketAvatars, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		hlog.Errorf("Failed to upload avatar: %v", err)
		return "", err
	}
	return publicURL(BucketAvatars, objectName), nil
}

func deleteAvatar(ctx context.Context, uid string) {
	keys := []string{
		"avatar/" + uid + ".jpg",
		"avatar/" + uid + ".png",
	}
	for _, key := range keys {
		err := minioClient.RemoveObject(ctx, BucketAvatars, key, minio.RemoveObjectOptions{})
		if err != nil {
			hlog.Infof("remove old avatar %s: %v", key, err)
		}
	}
}

// UploadPostMedia 上传帖子的视频或图片文件 返回公开URL
func UploadPostMedia(ctx context.Context, path, pid, contentType string) (string, error) {
	if err := ensureBucket(ctx, BucketMedia); err != nil {
		return "", err
	}

	var suffix string
	switch contentType {
	case "video/mp4":
		suffix = ".mp4"
	case "video/webm":
		suffix = ".webm"
	case "image/jpeg", "image/jpg":
		suffix = ".jpg"
	case "image/png":
		suffix = ".png"
	default:
		return "", fmt.Errorf("unsupported media format: %s", contentType)
	}

	objectName := "post/" + pid + "/media" + suffix
	_, err := minioClient.FPutObject(ctx, BucketMedia, objectName, path,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		hlog.Info(err)
		return "", err
	}
	return publicURL(BucketMedia, objectName), nil
}

// UploadPostCover 上传视频封面
func UploadPostCover(ctx context.Context, path, pid string) (string, error) {
	if err := ensureBucket(ctx, BucketCovers); err != nil {
		return "", err
	}
	objectName := "post/" + pid + "/cover.jpg"
	_, err := minioClient.FPutObject(ctx, BucketCovers, objectName, path,
		minio.PutObjectOptions{ContentType: "image/jpeg"})
	if err != nil {
		hlog.Info(err)
		return "", err
	}
	return publicURL(BucketCovers, objectName), nil
}
