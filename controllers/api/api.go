package apiController

import (
	"context"

	"smartscholar/models"
	"smartscholar/planner"
	"smartscholar/predictor"
)

// ReviewStore is the persistence the review endpoints need.
type ReviewStore interface {
	Add(ctx context.Context, review *models.Review) error
	List(ctx context.Context) ([]models.Review, error)
	Delete(ctx context.Context, id uint) error
	Ping(ctx context.Context) error
}

type Controller struct {
	Predictor *predictor.Predictor
	Reviews   ReviewStore
	Planner   planner.Options
}

func New(p *predictor.Predictor, reviews ReviewStore, plan planner.Options) *Controller {
	return &Controller{Predictor: p, Reviews: reviews, Planner: plan}
}
