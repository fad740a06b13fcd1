package exercises

import (
	"slices"
	"time"
)

var MuscleGroup = struct {
	Chest     string
	Back      string
	Shoulders string
	Biceps    string
	Triceps   string
	Legs      string
	Glutes    string
	Abs       string
	Calves    string
	Cardio    string
}{
	Chest:     "chest",
	Back:      "back",
	Shoulders: "shoulders",
	Biceps:    "biceps",
	Triceps:   "triceps",
	Legs:      "legs",
	Glutes:    "glutes",
	Abs:       "abs",
	Calves:    "calves",
	Cardio:    "cardio",
}

var MuscleGroups = []string{
	MuscleGroup.Chest,
	MuscleGroup.Back,
	MuscleGroup.Shoulders,
	MuscleGroup.Biceps,
	MuscleGroup.Triceps,
	MuscleGroup.Legs,
	MuscleGroup.Glutes,
	MuscleGroup.Abs,
	MuscleGroup.Calves,
	MuscleGroup.Cardio,
}

func IsMuscleGroup(group string) bool {
	return slices.Contains(MuscleGroups, group)
}

type Exercise struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	MuscleGroups []string  `json:"muscleGroups"`
	Equipment    *string   `json:"equipment"`
	Instructions *string   `json:"instructions"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SharesMuscleGroup reports whether the exercise targets at least one of groups.
func (e Exercise) SharesMuscleGroup(groups []string) bool {
	for _, g := range groups {
		if slices.Contains(e.MuscleGroups, g) {
			return true
		}
	}
	return false
}

type CreateExerciseRequest struct {
	Name         string   `json:"name"`
	MuscleGroups []string `json:"muscleGroups"`
	Equipment    *string  `json:"equipment,omitempty"`
	Instructions *string  `json:"instructions,omitempty"`
}

type ListParams struct {
	UserID string
	// MuscleGroups keeps exercises sharing at least one group, empty means all.
	MuscleGroups []string
}
