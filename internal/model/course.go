package model

// CourseRow 课程-能力矩阵行，列名与列值均由数据库决定，原样返回
type CourseRow = map[string]interface{}
