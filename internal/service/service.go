package service

import (
	"github.com/jmoiron/sqlx"

	"github.com/wastedash/wastedash/internal/config"
	"github.com/wastedash/wastedash/internal/repository"
)

type Services struct {
	Repos     *repository.Repos
	Dashboard *DashboardService
	Detail    *DetailService
	Readings  *ReadingService
}

func New(db *sqlx.DB) *Services {
	repos := repository.New(db, config.DataDir())
	return &Services{
		Repos: repos,
		Dashboard: &DashboardService{
			repos:     repos,
			fullMM:    config.DistanceFullMM(),
			threshold: config.ActiveThreshold(),
		},
		Detail:   &DetailService{repos: repos},
		Readings: &ReadingService{repos: repos},
	}
}
