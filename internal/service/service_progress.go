// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/ralona/nutritracker/internal/cache"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/store"
	"github.com/ralona/nutritracker/models"
)

// progressWindowDays is the trailing window of the dashboard, today included.
const progressWindowDays = 7

type progressService struct {
	progressRepository store.ProgressRepository
	cache              *cache.Client
	cacheTTL           time.Duration
	now                func() time.Time
	logger             *logger.Logger
}

// NewProgressService builds the dashboard aggregator with a read-through
// cache kept for cacheTTL.
func NewProgressService(progress store.ProgressRepository, cache *cache.Client, cacheTTL time.Duration, logger *logger.Logger) ProgressService {
	return &progressService{
		progressRepository: progress,
		cache:              cache,
		cacheTTL:           cacheTTL,
		now:                time.Now,
		logger:             logger,
	}
}

// Summarize builds the dashboard rows of every client of the nutritionist.
func (p *progressService) Summarize(ctx context.Context, actor models.Actor) ([]models.ClientSummary, error) {
	log := logger.FromContext(ctx)

	nutritionist, ok := actor.(models.NutritionistActor)
	if !ok {
		return nil, ErrForbidden
	}

	key := summaryKey(nutritionist.ID)
	if cached := p.cache.Get(ctx, key); cached != nil {
		var summaries []models.ClientSummary
		if err := json.Unmarshal(cached, &summaries); err == nil {
			return summaries, nil
		}
		log.Warn().Str("key", key).Msg("discarding undecodable cached summary")
	}

	to := models.NewDate(p.now())
	from := to.AddDays(-(progressWindowDays - 1))

	stats, err := p.progressRepository.ClientStats(ctx, nutritionist.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("client stats failed: %w", err)
	}

	userIDs := make([]int64, 0, len(stats))
	for _, s := range stats {
		userIDs = append(userIDs, s.Client.ID)
	}

	latest, err := p.progressRepository.LatestMeals(ctx, userIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("latest meals failed: %w", err)
	}

	summaries := make([]models.ClientSummary, 0, len(stats))
	for _, s := range stats {
		summary := models.ClientSummary{
			Client: models.ClientInfo{
				ID:     s.Client.ID,
				Name:   s.Client.Name,
				Email:  s.Client.Email,
				Active: s.Client.Active,
			},
			PendingComments: s.PendingComments,
			WeeklyMeals:     s.WeeklyMeals,
			WeeklyStatus:    models.ClassifyWeek(s.WeeklyMeals),
			Progress:        models.ProgressPercent(s.FilledSlots),
		}
		if meal, found := latest[s.Client.ID]; found {
			summary.LastMeal = &meal
		}
		summaries = append(summaries, summary)
	}

	if encoded, err := json.Marshal(summaries); err == nil {
		p.cache.Set(ctx, key, encoded, p.cacheTTL)
	}

	return summaries, nil
}

func summaryKey(nutritionistID int64) string {
	return "summaries:" + strconv.FormatInt(nutritionistID, 10)
}

// invalidateSummaries drops the cached dashboard of a nutritionist.
func invalidateSummaries(ctx context.Context, c *cache.Client, nutritionistID *int64) {
	if nutritionistID == nil {
		return
	}
	c.Delete(ctx, summaryKey(*nutritionistID))
}
