package handler

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"stu-dashboard/backend/internal/service"
	"stu-dashboard/backend/pkg/response"
)

// MenuHandler 静态路由/菜单 HTTP 处理器
// 响应体在构造时序列化一次，保证重复请求字节级一致
type MenuHandler struct {
	routes []byte
	menus  []byte
}

// NewMenuHandler 创建 MenuHandler
func NewMenuHandler(menuSvc service.MenuService) *MenuHandler {
	return &MenuHandler{
		routes: mustMarshal(response.Success(menuSvc.Routes())),
		menus:  mustMarshal(response.Success(menuSvc.Menus())),
	}
}

// ListRoutes 后端获取路由数据
// GET /mock/app/route/list
func (h *MenuHandler) ListRoutes(c *gin.Context) {
	response.Raw(c, h.routes)
}

// ListMenus 获取导航菜单数据
// GET /mock/app/menu/list
func (h *MenuHandler) ListMenus(c *gin.Context) {
	response.Raw(c, h.menus)
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
