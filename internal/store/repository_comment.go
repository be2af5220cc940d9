package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/models"
)

type commentRepository struct {
	*DB
	logger *logger.Logger
}

// NewCommentRepository constructs a [CommentRepository] over the
// "comments" table.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	return &commentRepository{
		DB:     db,
		logger: logger,
	}
}

func scanComment(row rowScanner, comment *models.Comment) error {
	return row.Scan(
		&comment.ID,
		&comment.MealID,
		&comment.NutritionistID,
		&comment.Content,
		&comment.Read,
		&comment.CreatedAt,
	)
}

func (c *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, createComment, comment.MealID, comment.NutritionistID, comment.Content)

	var created models.Comment
	if err := scanComment(row, &created); err != nil {
		log.Err(err).
			Str("func", "commentRepository.CreateComment").
			Int64("meal_id", comment.MealID).
			Msg("failed to insert comment")
		return models.Comment{}, classifyError(err, ErrAlreadyExists, ErrExecutingQuery)
	}

	return created, nil
}

func (c *commentRepository) GetComment(ctx context.Context, id int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	var comment models.Comment
	if err := scanComment(c.DB.QueryRowContext(ctx, getComment, id), &comment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrNotFound
		}
		log.Err(err).Str("func", "commentRepository.GetComment").Int64("comment_id", id).Msg("failed to query comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return comment, nil
}

// ListComments returns the comments of a meal, oldest first.
func (c *commentRepository) ListComments(ctx context.Context, mealID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, listComments, mealID)
	if err != nil {
		log.Err(err).
			Str("func", "commentRepository.ListComments").
			Int64("meal_id", mealID).
			Msg("failed to execute query for listing comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		if scanErr := scanComment(rows, &comment); scanErr != nil {
			log.Err(scanErr).Str("func", "commentRepository.ListComments").Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		comments = append(comments, comment)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return comments, nil
}

// MarkCommentRead flags one comment as read. Marking an already read
// comment succeeds.
func (c *commentRepository) MarkCommentRead(ctx context.Context, id int64) error {
	return c.DB.execOne(ctx, "commentRepository.MarkCommentRead", markCommentRead, id)
}

// MarkMealCommentsRead flags every unread comment of a meal as read and
// returns how many changed.
func (c *commentRepository) MarkMealCommentsRead(ctx context.Context, mealID int64) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, markMealCommentsRead, mealID)
	if err != nil {
		log.Err(err).
			Str("func", "commentRepository.MarkMealCommentsRead").
			Int64("meal_id", mealID).
			Msg("failed to mark comments read")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	marked, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return marked, nil
}
