package service

import (
	"reflect"
	"testing"

	"github.com/yeisme/tunevault/pkg/internal/model"
	"github.com/yeisme/tunevault/pkg/internal/storage/media"
)

// TestComputeDrift 对账差异计算：媒体库是存在性的权威来源.
func TestComputeDrift(t *testing.T) {
	rows := []model.Association{
		{PublicID: "both-1"},
		{PublicID: "orphan-1"},
		{PublicID: "orphan-2"},
	}
	objects := []media.Resource{
		{PublicID: "both-1"},
		{PublicID: "missing-1", Owner: "ann@example.com"},
	}

	report := computeDrift(rows, objects)

	if !reflect.DeepEqual(report.orphanIDs, []string{"orphan-1", "orphan-2"}) {
		t.Errorf("orphan ids mismatch: got %v", report.orphanIDs)
	}

	if len(report.missing) != 1 || report.missing[0].PublicID != "missing-1" {
		t.Errorf("missing objects mismatch: got %v", report.missing)
	}
}

// TestComputeDriftInSync 两侧一致时没有任何差异.
func TestComputeDriftInSync(t *testing.T) {
	rows := []model.Association{{PublicID: "a"}, {PublicID: "b"}}
	objects := []media.Resource{{PublicID: "b"}, {PublicID: "a"}}

	report := computeDrift(rows, objects)

	if len(report.orphanIDs) != 0 || len(report.missing) != 0 {
		t.Errorf("expected no drift, got orphans %v missing %v", report.orphanIDs, report.missing)
	}
}

// TestParseTagList 逗号分隔的标签原文解析：裁剪空白、去重、过滤空串.
func TestParseTagList(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"riff,slow", []string{"riff", "slow"}},
		{" riff , slow ,riff, ", []string{"riff", "slow"}},
		{"", []string{}},
		{" , ,", []string{}},
	}

	for _, tc := range cases {
		got := parseTagList(tc.raw)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("parseTagList(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
