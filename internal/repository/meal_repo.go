package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"eatsmart-api/internal/domain"
)

// MealRepository expone el historial de comidas del usuario.
type MealRepository interface {
	List(ctx context.Context) ([]domain.Meal, error)
}

type PgMealRepository struct {
	pool *pgxpool.Pool
}

func NewPgMealRepository(pool *pgxpool.Pool) *PgMealRepository {
	return &PgMealRepository{pool: pool}
}

func (r *PgMealRepository) List(ctx context.Context) ([]domain.Meal, error) {
	const query = `
		SELECT id, name, eaten_on, eaten_at, calories, health_score, meal_type, image_url
		FROM meals
		ORDER BY eaten_on DESC, eaten_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []domain.Meal
	for rows.Next() {
		var meal domain.Meal
		var image *string

		err = rows.Scan(
			&meal.ID,
			&meal.Name,
			&meal.Date,
			&meal.Time,
			&meal.Calories,
			&meal.HealthScore,
			&meal.Type,
			&image,
		)
		if err != nil {
			return nil, err
		}
		if image != nil {
			meal.Image = *image
		}
		meals = append(meals, meal)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return meals, nil
}

// FixtureMealRepository sirve el historial de demostracion cuando no hay base
// de datos configurada.
type FixtureMealRepository struct {
	meals []domain.Meal
}

func NewFixtureMealRepository() *FixtureMealRepository {
	return &FixtureMealRepository{meals: demoMeals()}
}

func (r *FixtureMealRepository) List(_ context.Context) ([]domain.Meal, error) {
	out := make([]domain.Meal, len(r.meals))
	copy(out, r.meals)
	return out, nil
}

func demoMeals() []domain.Meal {
	return []domain.Meal{
		{ID: 1, Name: "Grilled Chicken Salad", Date: "2024-01-15", Time: "12:30 PM", Calories: 320, HealthScore: 85, Type: domain.MealTypeLunch},
		{ID: 2, Name: "Oatmeal with Berries", Date: "2024-01-15", Time: "8:00 AM", Calories: 280, HealthScore: 92, Type: domain.MealTypeBreakfast},
		{ID: 3, Name: "Salmon with Quinoa", Date: "2024-01-14", Time: "7:00 PM", Calories: 450, HealthScore: 88, Type: domain.MealTypeDinner},
		{ID: 4, Name: "Greek Yogurt Parfait", Date: "2024-01-14", Time: "3:00 PM", Calories: 180, HealthScore: 78, Type: domain.MealTypeSnack},
		{ID: 5, Name: "Vegetable Stir Fry", Date: "2024-01-14", Time: "12:00 PM", Calories: 350, HealthScore: 90, Type: domain.MealTypeLunch},
	}
}
