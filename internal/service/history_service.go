package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"eatsmart-api/internal/domain"
	"eatsmart-api/internal/repository"
)

var ErrHistoryServiceNotConfigured = errors.New("history service not configured")

// HistoryService filtra el historial de comidas y resume la semana.
type HistoryService struct {
	meals repository.MealRepository
}

func NewHistoryService(meals repository.MealRepository) *HistoryService {
	return &HistoryService{meals: meals}
}

// Meals devuelve las comidas cuyo nombre contiene el termino de busqueda
// (case-insensitive) y cuyo tipo coincide con el filtro; "all" o vacio
// aceptan cualquier tipo.
func (s *HistoryService) Meals(ctx context.Context, search, mealType string) ([]domain.Meal, error) {
	if s == nil || s.meals == nil {
		return nil, ErrHistoryServiceNotConfigured
	}

	all, err := s.meals.List(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	mealType = strings.ToLower(strings.TrimSpace(mealType))

	filtered := make([]domain.Meal, 0, len(all))
	for _, meal := range all {
		if search != "" && !strings.Contains(strings.ToLower(meal.Name), search) {
			continue
		}
		if mealType != "" && mealType != domain.MealTypeAll && meal.Type != mealType {
			continue
		}
		filtered = append(filtered, meal)
	}
	return filtered, nil
}

// WeeklyStats resume la semana para la cabecera del historial.
func (s *HistoryService) WeeklyStats(ctx context.Context) (domain.WeeklyStats, error) {
	if s == nil || s.meals == nil {
		return domain.WeeklyStats{}, ErrHistoryServiceNotConfigured
	}

	meals, err := s.meals.List(ctx)
	if err != nil {
		return domain.WeeklyStats{}, err
	}
	if len(meals) == 0 {
		return domain.WeeklyStats{}, nil
	}

	var calories, score int
	counts := make(map[string]int)
	for _, meal := range meals {
		calories += meal.Calories
		score += meal.HealthScore
		counts[meal.Name]++
	}

	top := make([]string, 0, len(counts))
	for name := range counts {
		top = append(top, name)
	}
	// Mas frecuentes primero, empates por nombre.
	sort.Slice(top, func(i, j int) bool {
		if counts[top[i]] != counts[top[j]] {
			return counts[top[i]] > counts[top[j]]
		}
		return top[i] < top[j]
	})
	if len(top) > 4 {
		top = top[:4]
	}

	return domain.WeeklyStats{
		TotalMeals:     len(meals),
		AvgCalories:    calories / len(meals),
		AvgHealthScore: score / len(meals),
		TopFoods:       top,
	}, nil
}
