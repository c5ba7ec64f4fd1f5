package configs_test

import (
	"testing"

	"github.com/yeisme/tunevault/pkg/configs"
)

// TestGetDSN 测试各数据库类型的 DSN 生成.
func TestGetDSN(t *testing.T) {
	pg := configs.DBConfig{
		Type:     configs.PostgreSQL,
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		Database: "music_branches",
		SSLMode:  "disable",
	}

	want := "host=localhost port=5432 user=postgres password=secret dbname=music_branches sslmode=disable"
	if got := pg.GetDSN(); got != want {
		t.Errorf("postgres dsn mismatch: got %q, want %q", got, want)
	}

	my := configs.DBConfig{
		Type:     configs.MySQL,
		Host:     "db",
		Port:     3306,
		User:     "root",
		Password: "secret",
		Database: "music_branches",
	}

	want = "root:secret@tcp(db:3306)/music_branches?charset=utf8mb4&parseTime=True&loc=Local"
	if got := my.GetDSN(); got != want {
		t.Errorf("mysql dsn mismatch: got %q, want %q", got, want)
	}

	lite := configs.DBConfig{Type: configs.SQLite, Database: "music_branches"}
	if got := lite.GetDSN(); got != "file:music_branches.db" {
		t.Errorf("sqlite dsn mismatch: got %q", got)
	}

	// 未知类型返回空串
	unknown := configs.DBConfig{Type: configs.DBType("oracle")}
	if got := unknown.GetDSN(); got != "" {
		t.Errorf("expected empty dsn for unknown type, got %q", got)
	}
}

// TestGetDBType 测试数据库类型别名的归一化.
func TestGetDBType(t *testing.T) {
	cases := []struct {
		dbType configs.DBType
		want   string
	}{
		{configs.PostgreSQL, "PostgreSQL"},
		{configs.Pg, "PostgreSQL"},
		{configs.MariaDB, "MySQL"},
		{configs.SQLite, "SQLite"},
		{configs.DBType("oracle"), "Unknown"},
	}

	for _, tc := range cases {
		c := configs.DBConfig{Type: tc.dbType}
		if got := c.GetDBType(); got != tc.want {
			t.Errorf("GetDBType(%q) = %q, want %q", tc.dbType, got, tc.want)
		}
	}
}
