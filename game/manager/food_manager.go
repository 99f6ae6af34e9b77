package manager

import (
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager owns the single food cell. New food is drawn uniformly from the
// whole grid, snake cells included.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
	food types.Point
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	fm := &FoodManager{
		grid: grid,
		rng:  rng,
	}
	fm.food = fm.GenerateFood()
	return fm
}

func (fm *FoodManager) GenerateFood() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

// Respawn moves the food to a new random cell and returns it.
func (fm *FoodManager) Respawn() types.Point {
	fm.food = fm.GenerateFood()
	return fm.food
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// SetFood places the food on a given cell.
func (fm *FoodManager) SetFood(food types.Point) {
	fm.food = food
}
