// Package media 封装媒体库（S3 兼容对象存储）操作：上传、销毁、按ID查询元数据，
// 以及作为标签侧信道的对象标签读写.
//
// 对象标识（public ID）在上传时由本客户端代表媒体库分配（ULID），对象键为
// "<storeType>/<publicID>"；owner 与 project 作为对象用户元数据一并写入，
// 供对账任务在关联记录缺失时重建.
package media

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"
	"time"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/tags"
	"github.com/oklog/ulid"

	"github.com/yeisme/tunevault/pkg/configs"
	"github.com/yeisme/tunevault/pkg/internal/model"
	nlog "github.com/yeisme/tunevault/pkg/log"
)

const (
	metaOwnerKey   = "owner"
	metaProjectKey = "project"
)

// Client 包装 MinIO 客户端.
type Client struct {
	*minio.Client

	cfg configs.MediaConfig
}

// Resource 媒体库返回的对象元数据.
type Resource struct {
	PublicID     string
	ResourceType string
	ByteSize     int64
	ContentType  string
	SecureURL    string
	ETag         string
	CreatedAt    time.Time
	Owner        string
	Project      string
	Tags         []string
}

// New 初始化媒体库客户端，若 bucket 不存在则尝试创建.
func New(ctx context.Context, cfg *configs.MediaConfig) (*Client, error) {
	endpoint := cfg.Endpoint
	useSSL := cfg.UseSSL
	// 允许用户传完整 schema endpoint（http:// 或 https://）
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
		if u.Scheme == "https" {
			useSSL = true
		}
	}

	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	cli.SetAppInfo("tunevault", configs.AppVersion)

	exists, err := cli.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.BucketName, err)
	}

	if !exists {
		if err := cli.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.BucketName, err)
		}

		nlog.Logger().Info().Str("bucket", cfg.BucketName).Msg("bucket created")
	}

	nlog.Logger().Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.BucketName).Msg("media store connected")

	return &Client{Client: cli, cfg: *cfg}, nil
}

// NewPublicID 代表媒体库分配一个新的对象标识.
func NewPublicID() string {
	id := ulid.MustNew(ulid.Timestamp(time.Now().UTC()), crand.Reader)
	return strings.ToLower(id.String())
}

// objectKey 计算对象键：按资源类型分前缀.
func objectKey(kind model.Kind, publicID string) string {
	return kind.StoreType() + "/" + publicID
}

// secureURL 对象的直接访问URL.
func (c *Client) secureURL(kind model.Kind, publicID string) string {
	return fmt.Sprintf("%s/%s/%s", c.cfg.GetEndpointURL(), c.cfg.BucketName, objectKey(kind, publicID))
}

// tagsToMap 标签集合编码为对象标签映射.
func tagsToMap(tagList []string) map[string]string {
	m := make(map[string]string, len(tagList))
	for _, t := range tagList {
		if t == "" {
			continue
		}

		m[t] = ""
	}

	return m
}

// mapToTags 对象标签映射解码为有序标签集合.
func mapToTags(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for t := range m {
		out = append(out, t)
	}

	sort.Strings(out)

	return out
}

// Upload 从内存流上传对象并附加标签与 owner/project 元数据，返回分配的元数据.
func (c *Client) Upload(ctx context.Context, kind model.Kind, reader io.Reader, size int64,
	contentType string, tagList []string, owner, project string,
) (*Resource, error) {
	publicID := NewPublicID()
	key := objectKey(kind, publicID)

	info, err := c.PutObject(ctx, c.cfg.BucketName, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
		UserTags:    tagsToMap(tagList),
		UserMetadata: map[string]string{
			metaOwnerKey:   owner,
			metaProjectKey: project,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	return c.uploadedResource(kind, publicID, info, contentType, tagList, owner, project), nil
}

// UploadFile 从本地文件路径上传对象（FPutObject 接口），其余语义与 Upload 相同.
func (c *Client) UploadFile(ctx context.Context, kind model.Kind, path string,
	contentType string, tagList []string, owner, project string,
) (*Resource, error) {
	publicID := NewPublicID()
	key := objectKey(kind, publicID)

	info, err := c.FPutObject(ctx, c.cfg.BucketName, key, path, minio.PutObjectOptions{
		ContentType: contentType,
		UserTags:    tagsToMap(tagList),
		UserMetadata: map[string]string{
			metaOwnerKey:   owner,
			metaProjectKey: project,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	return c.uploadedResource(kind, publicID, info, contentType, tagList, owner, project), nil
}

func (c *Client) uploadedResource(kind model.Kind, publicID string, info minio.UploadInfo,
	contentType string, tagList []string, owner, project string,
) *Resource {
	return &Resource{
		PublicID:     publicID,
		ResourceType: kind.StoreType(),
		ByteSize:     info.Size,
		ContentType:  contentType,
		SecureURL:    c.secureURL(kind, publicID),
		ETag:         strings.Trim(info.ETag, "\""),
		CreatedAt:    time.Now().UTC(),
		Owner:        owner,
		Project:      project,
		Tags:         model.DedupTags(tagList),
	}
}

// Destroy 从媒体库删除对象.
func (c *Client) Destroy(ctx context.Context, kind model.Kind, publicID string) error {
	key := objectKey(kind, publicID)
	if err := c.RemoveObject(ctx, c.cfg.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("destroy %s: %w", key, err)
	}

	return nil
}

// Resource 按ID查询对象元数据（不含标签，标签经 Tags 单独取权威值）.
func (c *Client) Resource(ctx context.Context, kind model.Kind, publicID string) (*Resource, error) {
	key := objectKey(kind, publicID)

	info, err := c.StatObject(ctx, c.cfg.BucketName, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", key, err)
	}

	return c.resourceFromInfo(kind, publicID, info), nil
}

func (c *Client) resourceFromInfo(kind model.Kind, publicID string, info minio.ObjectInfo) *Resource {
	return &Resource{
		PublicID:     publicID,
		ResourceType: kind.StoreType(),
		ByteSize:     info.Size,
		ContentType:  info.ContentType,
		SecureURL:    c.secureURL(kind, publicID),
		ETag:         strings.Trim(info.ETag, "\""),
		CreatedAt:    info.LastModified.UTC(),
		Owner:        metaValue(info.UserMetadata, metaOwnerKey),
		Project:      metaValue(info.UserMetadata, metaProjectKey),
	}
}

// metaValue 读取用户元数据，兼容服务端返回的大小写差异.
func metaValue(meta minio.StringMap, key string) string {
	if v, ok := meta[key]; ok {
		return v
	}

	title := strings.ToUpper(key[:1]) + key[1:]
	if v, ok := meta[title]; ok {
		return v
	}

	return ""
}

// Tags 读取对象的权威标签集合.
func (c *Client) Tags(ctx context.Context, kind model.Kind, publicID string) ([]string, error) {
	key := objectKey(kind, publicID)

	t, err := c.GetObjectTagging(ctx, c.cfg.BucketName, key, minio.GetObjectTaggingOptions{})
	if err != nil {
		return nil, fmt.Errorf("get tags %s: %w", key, err)
	}

	return mapToTags(t.ToMap()), nil
}

// AddTags 以集合并集语义向对象追加标签，返回更新后的标签集合.
func (c *Client) AddTags(ctx context.Context, kind model.Kind, publicID string, tagList []string) ([]string, error) {
	key := objectKey(kind, publicID)

	existing, err := c.GetObjectTagging(ctx, c.cfg.BucketName, key, minio.GetObjectTaggingOptions{})
	if err != nil {
		return nil, fmt.Errorf("get tags %s: %w", key, err)
	}

	merged := existing.ToMap()
	if merged == nil {
		merged = map[string]string{}
	}

	for _, t := range tagList {
		if t == "" {
			continue
		}

		merged[t] = ""
	}

	if err := c.putTagMap(ctx, key, merged); err != nil {
		return nil, err
	}

	return mapToTags(merged), nil
}

// RemoveTags 删除对象上所有精确匹配的标签；不存在的标签按无操作处理.
func (c *Client) RemoveTags(ctx context.Context, kind model.Kind, publicID string, tagList []string) ([]string, error) {
	key := objectKey(kind, publicID)

	existing, err := c.GetObjectTagging(ctx, c.cfg.BucketName, key, minio.GetObjectTaggingOptions{})
	if err != nil {
		return nil, fmt.Errorf("get tags %s: %w", key, err)
	}

	remaining := existing.ToMap()
	for _, t := range tagList {
		delete(remaining, t)
	}

	if err := c.putTagMap(ctx, key, remaining); err != nil {
		return nil, err
	}

	return mapToTags(remaining), nil
}

func (c *Client) putTagMap(ctx context.Context, key string, m map[string]string) error {
	if len(m) == 0 {
		if err := c.RemoveObjectTagging(ctx, c.cfg.BucketName, key, minio.RemoveObjectTaggingOptions{}); err != nil {
			return fmt.Errorf("clear tags %s: %w", key, err)
		}

		return nil
	}

	t, err := tags.NewTags(m, true)
	if err != nil {
		return fmt.Errorf("encode tags %s: %w", key, err)
	}

	if err := c.PutObjectTagging(ctx, c.cfg.BucketName, key, t, minio.PutObjectTaggingOptions{}); err != nil {
		return fmt.Errorf("put tags %s: %w", key, err)
	}

	return nil
}

// ListResources 列出一种资源的全部对象，含 owner/project 元数据与标签，供对账使用.
func (c *Client) ListResources(ctx context.Context, kind model.Kind) ([]Resource, error) {
	prefix := kind.StoreType() + "/"
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: true}

	var out []Resource

	for obj := range c.ListObjects(ctx, c.cfg.BucketName, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}

		if strings.HasSuffix(obj.Key, "/") {
			continue
		}

		publicID := strings.TrimPrefix(obj.Key, prefix)

		info, err := c.StatObject(ctx, c.cfg.BucketName, obj.Key, minio.StatObjectOptions{})
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", obj.Key, err)
		}

		res := c.resourceFromInfo(kind, publicID, info)

		tagList, err := c.Tags(ctx, kind, publicID)
		if err != nil {
			return nil, err
		}

		res.Tags = tagList
		out = append(out, *res)
	}

	return out, nil
}

// HealthCheck 简单的健康检查，通过列出桶来验证连接.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.ListBuckets(ctx)
	return err
}

// GetConfig 返回媒体存储配置.
func (c *Client) GetConfig() configs.MediaConfig {
	return c.cfg
}
