package http

import (
	"workout-core/internal/model"
	"workout-core/internal/rankings"
)

// --- Request DTOs ---

type getRankReq struct {
	UserID      int
	CategoryKey string
}

func (r getRankReq) toInput() rankings.GetRankInput {
	return rankings.GetRankInput{UserID: r.UserID, CategoryKey: r.CategoryKey}
}

type awardPointsReq struct {
	UserID      int    `json:"-"` // populated from URI param
	CategoryKey string `json:"-"` // populated from URI param
	Points      int    `json:"points" binding:"required,gt=0"`
}

func (r awardPointsReq) toInput() rankings.AwardPointsInput {
	return rankings.AwardPointsInput{
		UserID:      r.UserID,
		CategoryKey: r.CategoryKey,
		Points:      r.Points,
	}
}

// --- Response DTOs ---

type bandResp struct {
	Name      string     `json:"name"`
	MinPoints int        `json:"min_points"`
	MaxPoints int        `json:"max_points"`
	Color     model.RGBA `json:"color"`
	ImagePath string     `json:"image_path"`
}

func newBandResp(b model.RankDefinition) bandResp {
	return bandResp{
		Name:      b.Name,
		MinPoints: b.MinPoints,
		MaxPoints: b.MaxPoints,
		Color:     b.Color,
		ImagePath: b.ImagePath,
	}
}

type rankResp struct {
	UserID       int      `json:"user_id"`
	CategoryKey  string   `json:"category_key"`
	Points       int      `json:"points"`
	Band         bandResp `json:"band"`
	PointsToNext int      `json:"points_to_next"`
}

func (h *handler) newRankResp(out rankings.GetRankOutput) rankResp {
	return rankResp{
		UserID:       out.Ranking.UserID,
		CategoryKey:  out.Ranking.CategoryKey,
		Points:       out.Ranking.Points,
		Band:         newBandResp(out.Band),
		PointsToNext: out.PointsToNext,
	}
}

type awardResp struct {
	UserID      int      `json:"user_id"`
	CategoryKey string   `json:"category_key"`
	Points      int      `json:"points"`
	Band        bandResp `json:"band"`
}

func (h *handler) newAwardResp(out rankings.AwardPointsOutput) awardResp {
	return awardResp{
		UserID:      out.Ranking.UserID,
		CategoryKey: out.Ranking.CategoryKey,
		Points:      out.Ranking.Points,
		Band:        newBandResp(out.Band),
	}
}

type bandsResp struct {
	Bands []bandResp `json:"bands"`
}

func (h *handler) newBandsResp(out rankings.ListBandsOutput) bandsResp {
	bands := make([]bandResp, len(out.Bands))
	for i, b := range out.Bands {
		bands[i] = newBandResp(b)
	}
	return bandsResp{Bands: bands}
}
