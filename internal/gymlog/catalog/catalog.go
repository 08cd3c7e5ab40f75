package catalog

import (
	"errors"
	"strings"
)

var (
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrCardioTypeNotFound = errors.New("cardio type not found")
	ErrDuplicateName      = errors.New("name already exists")
	ErrNameEmpty          = errors.New("name empty")
	ErrMuscleGroupEmpty   = errors.New("muscle group empty")
)

// Exercise is a named strength exercise. Exercises without an owner are
// shared with every user.
type Exercise struct {
	ID          int64  `json:"id"`
	OwnerID     *int64 `json:"-"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
}

func (e Exercise) Shared() bool {
	return e.OwnerID == nil
}

type CardioType struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"-"`
	Name    string `json:"name"`
}

type NewExercise struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
}

// Normalize trims both fields and lowercases the muscle group token.
func (n NewExercise) Normalize() (NewExercise, error) {
	n.Name = strings.TrimSpace(n.Name)
	n.MuscleGroup = strings.ToLower(strings.TrimSpace(n.MuscleGroup))
	if n.Name == "" {
		return n, ErrNameEmpty
	}
	if n.MuscleGroup == "" {
		return n, ErrMuscleGroupEmpty
	}
	return n, nil
}

type NewCardioType struct {
	Name string `json:"name"`
}

func (n NewCardioType) Normalize() (NewCardioType, error) {
	n.Name = strings.TrimSpace(n.Name)
	if n.Name == "" {
		return n, ErrNameEmpty
	}
	return n, nil
}
