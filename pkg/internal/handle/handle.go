// Package handle 提供HTTP请求处理器的实现.
package handle

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/tunevault/pkg/configs"
	"github.com/yeisme/tunevault/pkg/rule"
)

func DefaultHandler(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"message": "Not Implemented"})
}

// resolveOwner 提取资源所有者标识：认证代理注入的请求头优先，
// 开发模式允许 query/form 的 user 参数兜底（auth.dev_allow_query）.
func resolveOwner(c *gin.Context) (string, error) {
	owner := strings.TrimSpace(c.GetHeader("X-Auth-Request-Email"))
	if owner == "" {
		owner = strings.TrimSpace(c.GetHeader("X-Forwarded-Email"))
	}

	if owner == "" && configs.GetConfig().Auth.DevAllowQuery {
		owner = strings.TrimSpace(c.Query("user"))
		if owner == "" {
			owner = strings.TrimSpace(c.PostForm("user"))
		}
	}

	if err := rule.ValidateVar(owner, "required,max=255"); err != nil {
		return "", err
	}

	return owner, nil
}
