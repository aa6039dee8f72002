package service

import (
	"database/sql"
	"fmt"

	"github.com/samuhlo/diet-planner-cli/internal/model"
)

type ProfileInput struct {
	Gender           string
	Age              int
	HeightCM         float64
	WeightKG         float64
	DailySteps       int
	StrengthTraining bool
	TrainingDays     int
	BMROverride      *int
}

// SaveProfile upserts the single local profile row.
func SaveProfile(db *sql.DB, in ProfileInput) error {
	gender, err := parseGender(in.Gender)
	if err != nil {
		return err
	}
	if in.Age <= 0 {
		return fmt.Errorf("age must be > 0")
	}
	if in.HeightCM <= 0 {
		return fmt.Errorf("height must be > 0")
	}
	if in.WeightKG <= 0 {
		return fmt.Errorf("weight must be > 0")
	}
	if err := validateNonNegativeInt("daily steps", in.DailySteps); err != nil {
		return err
	}
	if in.TrainingDays < 0 || in.TrainingDays > 7 {
		return fmt.Errorf("training days must be between 0 and 7")
	}
	if in.BMROverride != nil && *in.BMROverride <= 0 {
		return fmt.Errorf("bmr override must be > 0")
	}
	training := 0
	if in.StrengthTraining {
		training = 1
	}

	_, err = db.Exec(`
INSERT INTO profile(id, gender, age, height_cm, weight_kg, daily_steps, strength_training, training_days, bmr_override)
VALUES(1, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  gender=excluded.gender,
  age=excluded.age,
  height_cm=excluded.height_cm,
  weight_kg=excluded.weight_kg,
  daily_steps=excluded.daily_steps,
  strength_training=excluded.strength_training,
  training_days=excluded.training_days,
  bmr_override=excluded.bmr_override,
  updated_at=CURRENT_TIMESTAMP
`, string(gender), in.Age, in.HeightCM, in.WeightKG, in.DailySteps, training, in.TrainingDays, in.BMROverride)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetProfile returns nil without error when no profile exists yet; the
// calculator substitutes neutral defaults in that case.
func GetProfile(db *sql.DB) (*model.Profile, error) {
	var p model.Profile
	var gender string
	var training int
	var override sql.NullInt64
	err := db.QueryRow(`
SELECT id, gender, age, height_cm, weight_kg, daily_steps, strength_training, training_days, bmr_override, created_at, updated_at
FROM profile WHERE id = 1
`).Scan(&p.ID, &gender, &p.Age, &p.HeightCM, &p.WeightKG, &p.DailySteps, &training, &p.TrainingDays, &override, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	p.Gender = model.Gender(gender)
	p.StrengthTraining = training != 0
	if override.Valid {
		v := int(override.Int64)
		p.BMROverride = &v
	}
	return &p, nil
}

func parseGender(value string) (model.Gender, error) {
	switch model.Gender(normalizeToken(value)) {
	case model.GenderMale:
		return model.GenderMale, nil
	case model.GenderFemale:
		return model.GenderFemale, nil
	case model.GenderOther:
		return model.GenderOther, nil
	default:
		return "", fmt.Errorf("invalid gender %q (use male, female or other)", value)
	}
}
