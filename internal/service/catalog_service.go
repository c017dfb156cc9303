package service

import (
	"study-buddy/backend/internal/model"
	"study-buddy/backend/internal/prompt"
)

// ActionInfo describes one action the router accepts.
type ActionInfo struct {
	Name     model.Action `json:"name" example:"generate_quiz"`
	Streamed bool         `json:"streamed"`
}

// Catalog lists what a client can ask for.
type Catalog struct {
	Actions   []ActionInfo     `json:"actions"`
	Languages []model.Language `json:"languages"`
}

// CatalogService handles listing the available actions and languages.
type CatalogService struct{}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// Get returns the catalog.
func (s *CatalogService) Get() *Catalog {
	actions := make([]ActionInfo, 0, len(model.Actions))
	for _, a := range model.Actions {
		actions = append(actions, ActionInfo{Name: a, Streamed: a.Streamed()})
	}
	return &Catalog{Actions: actions, Languages: prompt.Languages()}
}
