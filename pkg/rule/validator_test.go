package rule_test

import (
	"testing"

	"github.com/yeisme/tunevault/pkg/rule"
)

// uploadForm 用于测试 ValidateStruct.
type uploadForm struct {
	User    string `rule:"required,max=255"`
	Project string `rule:"required,max=255"`
}

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	engine := rule.Engine()
	if engine == nil {
		t.Error("Engine() returned nil")
	}
}

// TestValidateStruct 测试 ValidateStruct 对有效和无效结构体的验证.
func TestValidateStruct(t *testing.T) {
	// 有效结构体
	valid := uploadForm{User: "ann@example.com", Project: "demo"}

	err := rule.ValidateStruct(valid)
	if err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	// 无效结构体：缺少 User
	missingUser := uploadForm{User: "", Project: "demo"}

	err = rule.ValidateStruct(missingUser)
	if err == nil {
		t.Error("Expected error for invalid struct (missing user), got nil")
	}

	// 无效结构体：缺少 Project
	missingProject := uploadForm{User: "ann@example.com", Project: ""}

	err = rule.ValidateStruct(missingProject)
	if err == nil {
		t.Error("Expected error for invalid struct (missing project), got nil")
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	// 有效 owner
	err := rule.ValidateVar("ann@example.com", "required,max=255")
	if err != nil {
		t.Errorf("Expected no error for valid owner, got %v", err)
	}

	// 空 owner
	err = rule.ValidateVar("", "required,max=255")
	if err == nil {
		t.Error("Expected error for empty owner, got nil")
	}
}
