package handler

import (
	"github.com/gin-gonic/gin"

	"stu-dashboard/backend/pkg/response"
)

// QueryFunc 查询型处理函数：返回结果集或错误，不直接写响应
type QueryFunc func(c *gin.Context) (interface{}, error)

// Query 统一的错误映射层
// 成功写 {status:1, error:"", data}；任何错误写 {status:0, error, data:null}，HTTP 状态均为 200
func Query(fn QueryFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := fn(c)
		if err != nil {
			_ = c.Error(err)
			response.Fail(c, err)
			return
		}
		response.OK(c, data)
	}
}
