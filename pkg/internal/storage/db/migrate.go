package db

import (
	"fmt"

	"github.com/yeisme/tunevault/pkg/internal/model"
)

// MigrateAssociations 为全部资源种类建表.
// 两张集合表共用同一行结构，按 Kind 的集合名分别映射.
func (c *Client) MigrateAssociations() error {
	for _, k := range model.Kinds() {
		if err := c.Table(k.Collection()).AutoMigrate(&model.Association{}); err != nil {
			return fmt.Errorf("migrate %s table: %w", k.Collection(), err)
		}
	}

	return nil
}
