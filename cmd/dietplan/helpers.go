package dietplan

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/samuhlo/diet-planner-cli/internal/app"
	"github.com/samuhlo/diet-planner-cli/internal/catalog"
	"github.com/samuhlo/diet-planner-cli/internal/db"
	"github.com/samuhlo/diet-planner-cli/internal/logger"
	"github.com/samuhlo/diet-planner-cli/internal/model"
	"github.com/samuhlo/diet-planner-cli/internal/service"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if env := os.Getenv("DIETPLAN_DB"); env != "" {
		return env, nil
	}
	return app.DefaultDBPath()
}

// resolveDataDir order: --data flag, DIETPLAN_DATA, the data_dir config
// key, then the default location.
func resolveDataDir(sqldb *sql.DB) (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	if env := os.Getenv("DIETPLAN_DATA"); env != "" {
		return env, nil
	}
	if value, ok, err := service.GetConfig(sqldb, service.ConfigDataDir); err != nil {
		return "", err
	} else if ok && value != "" {
		return value, nil
	}
	return app.DefaultDataDir()
}

func newLogger() *zap.Logger {
	log, err := logger.New(verbose)
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func loadAggregator(sqldb *sql.DB, log *zap.Logger) (*service.Aggregator, *catalog.Index, error) {
	dir, err := resolveDataDir(sqldb)
	if err != nil {
		return nil, nil, err
	}
	set, err := catalog.LoadDir(dir, log)
	if err != nil {
		return nil, nil, err
	}
	ix := catalog.BuildIndex(set, log)
	return service.NewAggregator(ix, log), ix, nil
}

func loadStore(sqldb *sql.DB) (*service.PlanStore, error) {
	plan, err := service.LoadPlan(sqldb)
	if err != nil {
		return nil, err
	}
	store := service.NewPlanStore()
	store.Replace(plan)
	return store, nil
}

func parseDay(value string) (model.Weekday, error) {
	day := model.Weekday(strings.ToLower(strings.TrimSpace(value)))
	for _, d := range model.WeekDays {
		if d == day {
			return day, nil
		}
	}
	return "", fmt.Errorf("invalid day %q (use monday..sunday)", value)
}

func parseMeal(value string) (model.MealType, error) {
	meal := model.MealType(strings.ToLower(strings.TrimSpace(value)))
	for _, m := range model.MealTypes {
		if m == meal {
			return meal, nil
		}
	}
	return "", fmt.Errorf("invalid meal %q (use breakfast, lunch or dinner)", value)
}

// parseSelections reads "id:qty,id:qty" item lists. Quantity defaults
// to 1 when omitted.
func parseSelections(value string) ([]model.ItemSelection, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	items := make([]model.ItemSelection, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sel := model.ItemSelection{Quantity: 1}
		if i := strings.LastIndex(part, ":"); i >= 0 {
			qty, err := strconv.ParseFloat(strings.TrimSpace(part[i+1:]), 64)
			if err != nil || qty <= 0 {
				return nil, fmt.Errorf("invalid quantity in %q (use id:qty)", part)
			}
			sel.ID = strings.TrimSpace(part[:i])
			sel.Quantity = qty
		} else {
			sel.ID = part
		}
		if sel.ID == "" {
			return nil, fmt.Errorf("missing item id in %q", part)
		}
		items = append(items, sel)
	}
	return items, nil
}

func parseDateOrNow(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", value)
	}
	return t, nil
}

// currentTargets resolves profile, goal and current weight into the
// nutrition targets, degrading to defaults when data is missing.
func currentTargets(sqldb *sql.DB) (service.Targets, error) {
	profile, err := service.GetProfile(sqldb)
	if err != nil {
		return service.Targets{}, err
	}
	goal, err := service.CurrentGoal(sqldb)
	if err != nil {
		return service.Targets{}, err
	}
	weight, err := service.CurrentWeightKG(sqldb, profile)
	if err != nil {
		return service.Targets{}, err
	}
	return service.ComputeTargets(profile, goal, weight), nil
}
