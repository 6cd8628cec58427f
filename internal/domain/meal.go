package domain

// Meal es una comida registrada en el historial del usuario.
type Meal struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Calories    int    `json:"calories"`
	HealthScore int    `json:"health_score"`
	Type        string `json:"type"`
	Image       string `json:"image,omitempty"`
}

// Tipos de comida aceptados por el filtro del historial.
const (
	MealTypeAll       = "all"
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// WeeklyStats resume la semana para la cabecera del historial.
type WeeklyStats struct {
	TotalMeals     int      `json:"total_meals"`
	AvgCalories    int      `json:"avg_calories"`
	AvgHealthScore int      `json:"avg_health_score"`
	TopFoods       []string `json:"top_foods"`
}
