package store

import (
	"context"
	"fmt"

	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/models"
)

// progressRepository computes dashboard aggregates with SQL. It never
// writes.
type progressRepository struct {
	*DB
	logger *logger.Logger
}

// NewProgressRepository constructs a [ProgressRepository].
func NewProgressRepository(db *DB, logger *logger.Logger) ProgressRepository {
	return &progressRepository{
		DB:     db,
		logger: logger,
	}
}

// ClientStats returns one row per client of nutritionistID: meals logged in
// [from, to], distinct (day, meal type) slots filled in the same range, and
// unread comments across all of the client's meals.
func (p *progressRepository) ClientStats(ctx context.Context, nutritionistID int64, from, to models.Date) ([]models.ClientStats, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, clientStats, nutritionistID, from, to)
	if err != nil {
		log.Err(err).
			Str("func", "progressRepository.ClientStats").
			Int64("nutritionist_id", nutritionistID).
			Msg("failed to execute client stats query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stats := make([]models.ClientStats, 0)
	for rows.Next() {
		var s models.ClientStats
		scanErr := rows.Scan(
			&s.Client.ID,
			&s.Client.Email,
			&s.Client.Name,
			&s.Client.Role,
			&s.Client.NutritionistID,
			&s.Client.Active,
			&s.Client.CreatedAt,
			&s.WeeklyMeals,
			&s.FilledSlots,
			&s.PendingComments,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "progressRepository.ClientStats").
				Int64("nutritionist_id", nutritionistID).
				Msg("failed to scan client stats row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		stats = append(stats, s)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "progressRepository.ClientStats").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return stats, nil
}

// LatestMeals returns, per user, the meal with the latest date in
// [from, to]. Ties on date go to the later clock time, meals without a time
// last, then to the higher id.
func (p *progressRepository) LatestMeals(ctx context.Context, userIDs []int64, from, to models.Date) (map[int64]models.Meal, error) {
	latest := make(map[int64]models.Meal, len(userIDs))
	if len(userIDs) == 0 {
		return latest, nil
	}

	meals, err := queryList(ctx, p.DB, "progressRepository.LatestMeals", scanMeal, latestMeals, userIDs, from, to)
	if err != nil {
		return nil, err
	}

	for _, meal := range meals {
		latest[meal.UserID] = meal
	}

	return latest, nil
}
