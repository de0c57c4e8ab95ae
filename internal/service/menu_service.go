package service

import "stu-dashboard/backend/internal/dto"

// MenuService 前端路由/导航菜单数据
// 路由表与导航菜单目前内容一致，分别供两个端点使用
type MenuService interface {
	Routes() []dto.MenuItem
	Menus() []dto.MenuItem
}

type menuService struct {
	tree []dto.MenuItem
}

// NewMenuService 创建 MenuService 实例
func NewMenuService() MenuService {
	return &menuService{tree: navigationTree()}
}

func (s *menuService) Routes() []dto.MenuItem { return s.tree }

func (s *menuService) Menus() []dto.MenuItem { return s.tree }

func hidden() *bool {
	v := false
	return &v
}

// navigationTree 主导航：成绩管理、课程管理（不在菜单中显示）与就业管理子树
func navigationTree() []dto.MenuItem {
	return []dto.MenuItem{
		{
			Meta: dto.MenuMeta{Title: "主导航", Icon: "uim:box"},
			Children: []dto.MenuItem{
				{
					Path:      "score",
					Name:      "score",
					Component: "score_management/score.vue",
					Meta: dto.MenuMeta{
						Title:      "成绩管理",
						Menu:       hidden(),
						Breadcrumb: hidden(),
						ActiveMenu: "/score_management",
					},
				},
				{
					Path:      "course",
					Name:      "course",
					Component: "course_management/course.vue",
					Meta: dto.MenuMeta{
						Title:      "课程管理",
						Menu:       hidden(),
						Breadcrumb: hidden(),
						ActiveMenu: "/course_management",
					},
				},
				{
					Path:      "/employment_management",
					Name:      "index",
					Component: "Layout",
					Redirect:  "/employment_management/index",
					Meta:      dto.MenuMeta{Title: "就业管理", Icon: "ep:avatar"},
					Children: []dto.MenuItem{
						{
							Path:      "index",
							Name:      "index",
							Component: "employment_management/index.vue",
							Meta: dto.MenuMeta{
								Title:      "简介",
								Icon:       "line-md:text-box-to-text-box-multiple-transition",
								ActiveMenu: "/employment_management",
							},
						},
						{
							Path:      "ability_evaluation",
							Name:      "ability",
							Component: "employment_management/ability_evaluation/ability.vue",
							Meta: dto.MenuMeta{
								Title:      "就业能力评估",
								Icon:       "line-md:speedometer-loop",
								ActiveMenu: "/employment_management",
							},
						},
						{
							Path:      "employment_prediction",
							Name:      "employment",
							Component: "employment_management/employment_prediction/employment.vue",
							Meta: dto.MenuMeta{
								Title:      "就业去向预测",
								Icon:       "line-md:uploading-loop",
								ActiveMenu: "/employment_management",
							},
						},
						{
							Path:      "realtime_evaluation_prediction",
							Name:      "realtime",
							Component: "employment_management/realtime_evaluation_prediction/realtime.vue",
							Meta: dto.MenuMeta{
								Title:      "实时评估和预测",
								Icon:       "line-md:loading-loop",
								ActiveMenu: "/employment_management",
							},
						},
					},
				},
			},
		},
	}
}
