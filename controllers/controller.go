package controllers

import (
	"github.com/vietthanh-tce/feedback-backend/config"
	"github.com/vietthanh-tce/feedback-backend/services"
	"github.com/vietthanh-tce/feedback-backend/store"
	"github.com/vietthanh-tce/feedback-backend/utils"
)

// Controller gom các handler của API, mọi phụ thuộc đều truyền qua constructor
type Controller struct {
	cfg      *config.Config
	store    store.UserStore
	feedback *services.FeedbackService
	importer *services.ImportService
	sheets   *services.SheetsClient
	jwt      *utils.JWTUtil
}

func New(cfg *config.Config, st store.UserStore, sheets *services.SheetsClient, jwtUtil *utils.JWTUtil) *Controller {
	return &Controller{
		cfg:      cfg,
		store:    st,
		feedback: services.NewFeedbackService(st),
		importer: services.NewImportService(st),
		sheets:   sheets,
		jwt:      jwtUtil,
	}
}
