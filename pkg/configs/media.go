package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// MediaConfig 媒体对象存储配置（S3 兼容端点，MinIO）.
// 媒体库既保存二进制对象，也通过对象标签保存每个对象的标签集合.
type MediaConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	BucketName      string `mapstructure:"bucket_name"`
	Region          string `mapstructure:"region"`
}

const (
	DefaultMediaEndpoint        = "localhost:9000" // 默认媒体存储端点
	DefaultMediaAccessKeyID     = "minioadmin"     // 默认访问密钥ID
	DefaultMediaSecretAccessKey = "minioadmin"     // 默认秘密访问密钥
	DefaultMediaUseSSL          = false            // 默认是否使用SSL
	DefaultMediaBucketName      = "tunevault"      // 默认存储桶名称
	DefaultMediaRegion          = "us-east-1"      // 默认区域
)

// GetEndpointURL 获取完整的端点URL.
func (c *MediaConfig) GetEndpointURL() string {
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s", scheme, c.Endpoint)
}

// setDefaults 设置媒体存储配置的默认值.
func (c *MediaConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("media.endpoint", DefaultMediaEndpoint)
	v.SetDefault("media.access_key_id", DefaultMediaAccessKeyID)
	v.SetDefault("media.secret_access_key", DefaultMediaSecretAccessKey)
	v.SetDefault("media.use_ssl", DefaultMediaUseSSL)
	v.SetDefault("media.bucket_name", DefaultMediaBucketName)
	v.SetDefault("media.region", DefaultMediaRegion)
}
