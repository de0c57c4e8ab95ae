package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"stu-dashboard/backend/internal/dto"
	"stu-dashboard/backend/internal/model"
	"stu-dashboard/backend/internal/repository"
)

// ScoreService 成绩业务接口
type ScoreService interface {
	List(ctx context.Context, stuID interface{}) ([]dto.ScoreResponse, error)
	Export(ctx context.Context, stuID interface{}) (*bytes.Buffer, string, error)
}

type scoreService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScoreService 创建 ScoreService 实例
func NewScoreService(repo *repository.Repository, logger *zap.Logger) ScoreService {
	return &scoreService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *scoreService) List(ctx context.Context, stuID interface{}) ([]dto.ScoreResponse, error) {
	rows, err := s.repo.Score.ListByStudent(ctx, stuID)
	if err != nil {
		s.logger.Error("查询成绩失败", zap.Any("stu_id", stuID), zap.Error(err))
		return nil, fmt.Errorf("查询成绩失败: %w", err)
	}

	result := make([]dto.ScoreResponse, 0, len(rows))
	for i := range rows {
		result = append(result, toScoreResponse(&rows[i]))
	}
	return result, nil
}

// ────────────────────── Export ──────────────────────

var scoreSheetHeaders = []string{"课程名称", "考试性质", "学分", "成绩"}

func (s *scoreService) Export(ctx context.Context, stuID interface{}) (*bytes.Buffer, string, error) {
	scores, err := s.List(ctx, stuID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "成绩单"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "B", 16)
	f.SetColWidth(sheetName, "C", "D", 10)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头
	for i, h := range scoreSheetHeaders {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(scoreSheetHeaders)-1), 1), headerStyle)

	// 数据行
	for i, sc := range scores {
		row := i + 2
		nature := "-"
		if sc.NatureOfExam != nil {
			nature = *sc.NatureOfExam
		}
		if sc.CourseName != nil {
			f.SetCellValue(sheetName, cell("A", row), *sc.CourseName)
		}
		f.SetCellValue(sheetName, cell("B", row), nature)
		// NULL 学分/成绩留空单元格
		if sc.Credit != nil {
			f.SetCellValue(sheetName, cell("C", row), *sc.Credit)
		}
		if sc.Score != nil {
			f.SetCellValue(sheetName, cell("D", row), *sc.Score)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", fmt.Errorf("生成成绩单失败: %w", err)
	}

	filename := fmt.Sprintf("成绩单_%s.xlsx", formatID(stuID))
	return buf, filename, nil
}

// ── 内部辅助方法 ──

func toScoreResponse(r *model.ScoreRow) dto.ScoreResponse {
	return dto.ScoreResponse{
		CourseName:   r.CourseName,
		NatureOfExam: r.NatureLabel(),
		Credit:       r.Credit,
		Score:        r.Score,
	}
}

// formatID 数字学号按原样输出，避免 float64 的科学计数法
func formatID(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return "null"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
