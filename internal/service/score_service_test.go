package service

import (
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"stu-dashboard/backend/internal/model"
)

// ── 测试辅助 ──

func setupTestScoreService() (ScoreService, *mockScoreRepo) {
	repo, mocks := newMockRepository()
	return NewScoreService(repo, zap.NewNop()), mocks.score
}

// ── List 测试 ──

func TestScoreService_List_LabelsNature(t *testing.T) {
	svc, scoreRepo := setupTestScoreService()
	scoreRepo.rows["2021001"] = []model.ScoreRow{
		{CourseName: ptr("Algorithms"), NatureOfExam: ptr(1.0), Credit: ptr(3.0), Score: ptr(88.0)},
		{CourseName: ptr("Compilers"), NatureOfExam: ptr(0.8), Credit: ptr(2.5), Score: ptr(61.0)},
	}

	result, err := svc.List(context.Background(), "2021001")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("期望 2 条成绩，实际=%d", len(result))
	}
	if result[0].NatureOfExam == nil || *result[0].NatureOfExam != model.ExamNatureNormal {
		t.Errorf("期望第一条为 %q，实际=%v", model.ExamNatureNormal, result[0].NatureOfExam)
	}
	if result[1].NatureOfExam == nil || *result[1].NatureOfExam != model.ExamNatureRetake {
		t.Errorf("期望第二条为 %q，实际=%v", model.ExamNatureRetake, result[1].NatureOfExam)
	}
	if *result[0].Credit != 3 || *result[0].Score != 88 {
		t.Errorf("学分/成绩应原样返回，实际=%+v", result[0])
	}
}

func TestScoreService_List_NullColumnsStayNil(t *testing.T) {
	svc, scoreRepo := setupTestScoreService()
	scoreRepo.rows["2021001"] = []model.ScoreRow{{CourseName: ptr("Algorithms")}}

	result, err := svc.List(context.Background(), "2021001")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	r := result[0]
	if r.NatureOfExam != nil || r.Credit != nil || r.Score != nil {
		t.Errorf("NULL 列不应被填充为零值，实际=%+v", r)
	}
}

func TestScoreService_List_NoRows(t *testing.T) {
	svc, _ := setupTestScoreService()

	result, err := svc.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if result == nil || len(result) != 0 {
		t.Errorf("无记录时应返回空切片而非 nil，实际=%v", result)
	}
}

func TestScoreService_List_PassesIdentifierThrough(t *testing.T) {
	svc, scoreRepo := setupTestScoreService()

	_, _ = svc.List(context.Background(), float64(2021001))
	if scoreRepo.lastArg != float64(2021001) {
		t.Errorf("学号应原样透传，实际=%v", scoreRepo.lastArg)
	}
}

func TestScoreService_List_RepoError(t *testing.T) {
	svc, scoreRepo := setupTestScoreService()
	dbErr := errors.New("connection refused")
	scoreRepo.err = dbErr

	_, err := svc.List(context.Background(), "2021001")
	if !errors.Is(err, dbErr) {
		t.Errorf("期望包装原始错误，实际: %v", err)
	}
}

// ── Export 测试 ──

func TestScoreService_Export_Success(t *testing.T) {
	svc, scoreRepo := setupTestScoreService()
	scoreRepo.rows["2021001"] = []model.ScoreRow{
		{CourseName: ptr("Algorithms"), NatureOfExam: ptr(1.0), Credit: ptr(3.0), Score: ptr(88.0)},
		{CourseName: ptr("Physics"), NatureOfExam: ptr(0.5), Credit: ptr(4.0), Score: nil},
	}

	buf, filename, err := svc.Export(context.Background(), "2021001")
	if err != nil {
		t.Fatalf("Export 应成功: %v", err)
	}
	if filename != "成绩单_2021001.xlsx" {
		t.Errorf("文件名不符: %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("生成的文件不是合法 xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("成绩单")
	if err != nil {
		t.Fatalf("读取成绩单 Sheet 失败: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("期望 1 行表头 + 2 行数据，实际=%d", len(rows))
	}
	if rows[0][0] != "课程名称" {
		t.Errorf("表头不符: %v", rows[0])
	}
	if rows[1][0] != "Algorithms" || rows[1][1] != model.ExamNatureNormal {
		t.Errorf("第一行数据不符: %v", rows[1])
	}
	if rows[2][1] != "-" {
		t.Errorf("未知考试性质应显示为 -，实际=%v", rows[2][1])
	}
	if len(rows[2]) != 3 {
		t.Errorf("NULL 成绩应留空单元格，实际=%v", rows[2])
	}
}

func TestScoreService_Export_RepoError(t *testing.T) {
	svc, scoreRepo := setupTestScoreService()
	scoreRepo.err = errors.New("timeout")

	if _, _, err := svc.Export(context.Background(), "2021001"); err == nil {
		t.Error("查询失败时 Export 应返回错误")
	}
}

func TestFormatID(t *testing.T) {
	cases := map[interface{}]string{
		"2021001":         "2021001",
		float64(2021001): "2021001",
		float64(12.5):    "12.5",
		nil:              "null",
	}
	for in, want := range cases {
		if got := formatID(in); got != want {
			t.Errorf("formatID(%v) = %s，期望 %s", in, got, want)
		}
	}
}
