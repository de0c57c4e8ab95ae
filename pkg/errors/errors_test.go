package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestToDetail_MySQLError(t *testing.T) {
	base := &mysql.MySQLError{
		Number:   1146,
		SQLState: [5]byte{'4', '2', 'S', '0', '2'},
		Message:  "Table 'student_management.stu_score' doesn't exist",
	}
	err := fmt.Errorf("查询成绩失败: %w", base)

	d := ToDetail(err)
	if d.Code != 1146 {
		t.Errorf("期望 code=1146，实际=%d", d.Code)
	}
	if d.SQLState != "42S02" {
		t.Errorf("期望 sql_state=42S02，实际=%s", d.SQLState)
	}
	if d.Message != base.Message {
		t.Errorf("期望 message 为 MySQL 原始信息，实际=%s", d.Message)
	}
}

func TestToDetail_GenericError(t *testing.T) {
	d := ToDetail(errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"))
	if d.Code != 0 || d.SQLState != "" {
		t.Errorf("普通错误不应携带 code/sql_state: %+v", d)
	}
	if d.Message == "" {
		t.Error("message 不能为空")
	}
}

func TestToDetail_MissingParam(t *testing.T) {
	d := ToDetail(ErrMissingParam)
	if d.Message != ErrMissingParam.Error() {
		t.Errorf("期望 message=%s，实际=%s", ErrMissingParam.Error(), d.Message)
	}
}

func TestToDetail_MySQLErrorWithoutSQLState(t *testing.T) {
	d := ToDetail(&mysql.MySQLError{Number: 1045, Message: "Access denied"})
	if d.SQLState != "" {
		t.Errorf("未携带 SQLSTATE 时应为空，实际=%q", d.SQLState)
	}
}
