package service

import (
	"context"

	"stu-dashboard/backend/internal/model"
	"stu-dashboard/backend/internal/repository"
)

func ptr[T any](v T) *T { return &v }

// ── Mock ScoreRepository ──

type mockScoreRepo struct {
	rows    map[string][]model.ScoreRow
	err     error
	lastArg interface{}
}

func newMockScoreRepo() *mockScoreRepo {
	return &mockScoreRepo{rows: make(map[string][]model.ScoreRow)}
}

func (m *mockScoreRepo) ListByStudent(_ context.Context, stuID interface{}) ([]model.ScoreRow, error) {
	m.lastArg = stuID
	if m.err != nil {
		return nil, m.err
	}
	key, _ := stuID.(string)
	return append([]model.ScoreRow{}, m.rows[key]...), nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	rows []model.CourseRow
	err  error
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{}
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.CourseRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

// ── Mock AbilityRepository ──

type mockAbilityRepo struct {
	personal map[string][]model.AbilityVector
	yearly   map[float64][]model.YearlyAbility
	err      error
	lastArg  interface{}
}

func newMockAbilityRepo() *mockAbilityRepo {
	return &mockAbilityRepo{
		personal: make(map[string][]model.AbilityVector),
		yearly:   make(map[float64][]model.YearlyAbility),
	}
}

func (m *mockAbilityRepo) ListByStudent(_ context.Context, stuID interface{}) ([]model.AbilityVector, error) {
	m.lastArg = stuID
	if m.err != nil {
		return nil, m.err
	}
	key, _ := stuID.(string)
	return m.personal[key], nil
}

func (m *mockAbilityRepo) ListByYear(_ context.Context, year interface{}) ([]model.YearlyAbility, error) {
	m.lastArg = year
	if m.err != nil {
		return nil, m.err
	}
	key, _ := year.(float64)
	return m.yearly[key], nil
}

// ── Mock EmploymentRepository ──

type mockEmploymentRepo struct {
	rows map[string][]model.EmploymentPrediction
	err  error
}

func newMockEmploymentRepo() *mockEmploymentRepo {
	return &mockEmploymentRepo{rows: make(map[string][]model.EmploymentPrediction)}
}

func (m *mockEmploymentRepo) ListByStudent(_ context.Context, stuID interface{}) ([]model.EmploymentPrediction, error) {
	if m.err != nil {
		return nil, m.err
	}
	key, _ := stuID.(string)
	return m.rows[key], nil
}

// ── 测试辅助 ──

type mockRepos struct {
	score      *mockScoreRepo
	course     *mockCourseRepo
	ability    *mockAbilityRepo
	employment *mockEmploymentRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		score:      newMockScoreRepo(),
		course:     newMockCourseRepo(),
		ability:    newMockAbilityRepo(),
		employment: newMockEmploymentRepo(),
	}
	return &repository.Repository{
		Score:      m.score,
		Course:     m.course,
		Ability:    m.ability,
		Employment: m.employment,
	}, m
}
