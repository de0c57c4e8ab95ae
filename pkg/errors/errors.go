package errors

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrMissingParam 请求体缺少查询标识字段（stu_id / year）
	ErrMissingParam = errors.New("缺少查询参数")
	// ErrBodyTooLarge 请求体超过 server.body_limit
	ErrBodyTooLarge = errors.New("请求体过大")
)

// Detail 失败信封中 error 字段的内容
// MySQL 服务端错误额外携带错误码与 SQLSTATE
type Detail struct {
	Code     uint16 `json:"code,omitempty"`
	SQLState string `json:"sql_state,omitempty"`
	Message  string `json:"message"`
}

// ToDetail 将任意错误转换为可序列化的错误详情
func ToDetail(err error) Detail {
	if err == nil {
		return Detail{}
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		d := Detail{Code: mysqlErr.Number, Message: mysqlErr.Message}
		if mysqlErr.SQLState[0] != 0 {
			d.SQLState = string(mysqlErr.SQLState[:])
		}
		return d
	}

	return Detail{Message: err.Error()}
}
