package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/models"
)

const (
	userColumns = `id, email, password, name, role, nutritionist_id, active, invite_token, invite_expires, created_at`

	createUser = `INSERT INTO users (email, password, name, role, nutritionist_id, active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		ON CONFLICT (email) DO UPDATE
		SET password = EXCLUDED.password,
			name = EXCLUDED.name,
			role = EXCLUDED.role,
			nutritionist_id = EXCLUDED.nutritionist_id,
			active = TRUE,
			invite_token = NULL,
			invite_expires = NULL
		WHERE users.active = FALSE
		RETURNING ` + userColumns + `;`

	upsertInvitedUser = `INSERT INTO users (email, password, name, role, nutritionist_id, active, invite_token, invite_expires)
		VALUES ($1, $2, $3, 'client', $4, FALSE, $5, $6)
		ON CONFLICT (email) DO UPDATE
		SET password = EXCLUDED.password,
			name = EXCLUDED.name,
			role = 'client',
			nutritionist_id = EXCLUDED.nutritionist_id,
			invite_token = EXCLUDED.invite_token,
			invite_expires = EXCLUDED.invite_expires
		WHERE users.active = FALSE
		RETURNING ` + userColumns + `;`

	findActiveUserByEmail = `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND active = TRUE;`

	findUserByID = `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1;`

	findUserByInviteToken = `SELECT ` + userColumns + `
		FROM users
		WHERE invite_token = $1 AND invite_expires > $2 AND active = FALSE;`

	activateUser = `UPDATE users
		SET password = $1, active = TRUE, invite_token = NULL, invite_expires = NULL
		WHERE invite_token = $2 AND invite_expires > $3 AND active = FALSE
		RETURNING ` + userColumns + `;`

	listClients = `SELECT ` + userColumns + `
		FROM users
		WHERE nutritionist_id = $1 AND role = 'client'
		ORDER BY name, id;`
)

const (
	createSession = `INSERT INTO sessions (id, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4);`

	findSession = `SELECT id, user_id, created_at, expires_at
		FROM sessions
		WHERE id = $1;`

	deleteSession = `DELETE FROM sessions WHERE id = $1;`

	deleteExpiredSessions = `DELETE FROM sessions WHERE expires_at <= $1;`
)

const (
	mealColumns = `id, user_id, meal_date, to_char(meal_time, 'HH24:MI'), meal_type, name, description,
		calories, duration, water_intake, notes, created_at, updated_at`

	createMeal = `INSERT INTO meals (user_id, meal_date, meal_time, meal_type, name, description, calories, duration, water_intake, notes)
		VALUES ($1, $2, $3::time, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + mealColumns + `;`

	getMeal = `SELECT ` + mealColumns + `
		FROM meals
		WHERE id = $1;`

	deleteMeal = `DELETE FROM meals WHERE id = $1;`

	dailyTotalsByType = `SELECT meal_type, COUNT(*), COALESCE(SUM(calories), 0), COALESCE(SUM(water_intake), 0)
		FROM meals
		WHERE user_id = $1 AND meal_date = $2
		GROUP BY meal_type;`
)

const (
	commentColumns = `id, meal_id, nutritionist_id, content, read, created_at`

	createComment = `INSERT INTO comments (meal_id, nutritionist_id, content)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns + `;`

	getComment = `SELECT ` + commentColumns + `
		FROM comments
		WHERE id = $1;`

	listComments = `SELECT ` + commentColumns + `
		FROM comments
		WHERE meal_id = $1
		ORDER BY created_at, id;`

	markCommentRead = `UPDATE comments SET read = TRUE WHERE id = $1;`

	markMealCommentsRead = `UPDATE comments SET read = TRUE WHERE meal_id = $1 AND read = FALSE;`
)

const (
	mealPlanColumns = `id, user_id, nutritionist_id, week_start, week_end, published, active, notes, created_at`

	deactivateMealPlans = `UPDATE meal_plans SET active = FALSE WHERE user_id = $1 AND active = TRUE;`

	createMealPlan = `INSERT INTO meal_plans (user_id, nutritionist_id, week_start, week_end, published, active, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + mealPlanColumns + `;`

	createMealPlanDetail = `INSERT INTO meal_plan_details (meal_plan_id, day, meal_type, description, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;`

	getMealPlan = `SELECT ` + mealPlanColumns + `
		FROM meal_plans
		WHERE id = $1;`

	listMealPlanDetails = `SELECT id, meal_plan_id, day, meal_type, description, image_url
		FROM meal_plan_details
		WHERE meal_plan_id = ANY($1)
		ORDER BY meal_plan_id, day, id;`

	publishMealPlan = `UPDATE meal_plans SET published = TRUE WHERE id = $1;`

	deleteMealPlan = `DELETE FROM meal_plans WHERE id = $1;`
)

const (
	activityColumns = `id, user_id, date, steps, source, updated_at`

	upsertActivity = `INSERT INTO physical_activities (user_id, date, steps, source)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date) DO UPDATE
		SET steps = EXCLUDED.steps, source = EXCLUDED.source, updated_at = NOW()
		WHERE EXCLUDED.source = 'manual' OR physical_activities.source = 'integration'
		RETURNING ` + activityColumns + `;`

	exerciseTypeColumns = `id, name, calories_per_minute`

	createExerciseType = `INSERT INTO exercise_types (name, calories_per_minute)
		VALUES ($1, $2)
		RETURNING ` + exerciseTypeColumns + `;`

	getExerciseType = `SELECT ` + exerciseTypeColumns + ` FROM exercise_types WHERE id = $1;`

	listExerciseTypes = `SELECT ` + exerciseTypeColumns + ` FROM exercise_types ORDER BY name;`

	exerciseColumns = `id, user_id, exercise_type_id, date, duration, calories, notes, created_at`

	createExercise = `INSERT INTO exercise_entries (user_id, exercise_type_id, date, duration, calories, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + exerciseColumns + `;`

	getExercise = `SELECT ` + exerciseColumns + ` FROM exercise_entries WHERE id = $1;`

	deleteExercise = `DELETE FROM exercise_entries WHERE id = $1;`
)

const (
	integrationColumns = `id, user_id, provider, access_token, refresh_token, token_expiry, last_synced_at, created_at`

	saveIntegration = `INSERT INTO health_integrations (user_id, provider, access_token, refresh_token, token_expiry)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, provider) DO UPDATE
		SET access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_expiry = EXCLUDED.token_expiry
		RETURNING ` + integrationColumns + `;`

	getIntegration = `SELECT ` + integrationColumns + ` FROM health_integrations WHERE id = $1;`

	listIntegrations = `SELECT ` + integrationColumns + `
		FROM health_integrations
		WHERE user_id = $1
		ORDER BY id;`

	listAllIntegrations = `SELECT ` + integrationColumns + ` FROM health_integrations ORDER BY id;`

	updateIntegrationTokens = `UPDATE health_integrations
		SET access_token = $2, refresh_token = $3, token_expiry = $4
		WHERE id = $1;`

	markIntegrationSynced = `UPDATE health_integrations SET last_synced_at = $2 WHERE id = $1;`

	deleteIntegration = `DELETE FROM health_integrations WHERE id = $1;`
)

const (
	clientStats = `SELECT u.id, u.email, u.name, u.role, u.nutritionist_id, u.active, u.created_at,
			COALESCE(w.meal_count, 0), COALESCE(w.filled_slots, 0), COALESCE(c.pending, 0)
		FROM users u
		LEFT JOIN (
			SELECT m.user_id, COUNT(*) AS meal_count, COUNT(DISTINCT (m.meal_date, m.meal_type)) AS filled_slots
			FROM meals m
			JOIN users owner ON owner.id = m.user_id AND owner.nutritionist_id = $1
			WHERE m.meal_date BETWEEN $2 AND $3
			GROUP BY m.user_id
		) w ON w.user_id = u.id
		LEFT JOIN (
			SELECT m.user_id, COUNT(*) AS pending
			FROM comments cm
			JOIN meals m ON m.id = cm.meal_id
			JOIN users owner ON owner.id = m.user_id AND owner.nutritionist_id = $1
			WHERE cm.read = FALSE
			GROUP BY m.user_id
		) c ON c.user_id = u.id
		WHERE u.nutritionist_id = $1 AND u.role = 'client'
		ORDER BY u.name, u.id;`

	latestMeals = `SELECT DISTINCT ON (user_id) ` + mealColumns + `
		FROM meals
		WHERE user_id = ANY($1) AND meal_date BETWEEN $2 AND $3
		ORDER BY user_id, meal_date DESC, meal_time DESC NULLS LAST, id DESC;`
)

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// buildListMealsQuery builds the SELECT for a filtered meal listing, newest
// first.
func buildListMealsQuery(ctx context.Context, filter models.MealFilter) (string, []any, error) {
	builder := psql().
		Select(mealColumns).
		From("meals").
		Where(sq.Eq{"user_id": filter.UserID})

	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"meal_date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.LtOrEq{"meal_date": *filter.To})
	}
	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"meal_type": *filter.Type})
	}

	builder = builder.OrderBy("meal_date DESC", "meal_time DESC NULLS LAST", "id DESC")

	return toSQL(ctx, builder, "buildListMealsQuery")
}

// buildUpdateMealQuery builds a partial UPDATE writing only the non-nil
// fields of update. It fails when update changes nothing.
func buildUpdateMealQuery(ctx context.Context, update models.MealUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: empty meal update", ErrBuildingSQLQuery)
	}

	builder := psql().Update("meals")

	if update.Date != nil {
		builder = builder.Set("meal_date", *update.Date)
	}
	if update.Time != nil {
		builder = builder.Set("meal_time", sq.Expr("?::time", *update.Time))
	}
	if update.Type != nil {
		builder = builder.Set("meal_type", *update.Type)
	}
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Calories != nil {
		builder = builder.Set("calories", *update.Calories)
	}
	if update.Duration != nil {
		builder = builder.Set("duration", *update.Duration)
	}
	if update.WaterIntake != nil {
		builder = builder.Set("water_intake", *update.WaterIntake)
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING " + mealColumns)

	return toSQL(ctx, builder, "buildUpdateMealQuery")
}

// buildListMealPlansQuery builds the SELECT for the plans of one client,
// latest week first.
func buildListMealPlansQuery(ctx context.Context, filter models.MealPlanFilter) (string, []any, error) {
	builder := psql().
		Select(mealPlanColumns).
		From("meal_plans").
		Where(sq.Eq{"user_id": filter.UserID})

	if filter.PublishedOnly {
		builder = builder.Where(sq.Eq{"published": true})
	}
	if filter.ActiveOnly {
		builder = builder.Where(sq.Eq{"active": true})
	}

	builder = builder.OrderBy("week_start DESC", "id DESC")

	return toSQL(ctx, builder, "buildListMealPlansQuery")
}

// buildListByDateQuery builds a per-user, date-ranged listing over table.
// It serves both physical_activities and exercise_entries.
func buildListByDateQuery(ctx context.Context, table, columns string, filter models.ActivityFilter) (string, []any, error) {
	builder := psql().
		Select(columns).
		From(table).
		Where(sq.Eq{"user_id": filter.UserID})

	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.LtOrEq{"date": *filter.To})
	}

	builder = builder.OrderBy("date DESC", "id DESC")

	return toSQL(ctx, builder, "buildListByDateQuery")
}

type sqlizer interface {
	ToSql() (string, []any, error)
}

func toSQL(ctx context.Context, builder sqlizer, funcName string) (string, []any, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
