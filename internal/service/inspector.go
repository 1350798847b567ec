package service

import "smartcloth/internal/engine"

type InspectorService struct {
	engine EngineView
}

func NewInspectorService(e EngineView) *InspectorService {
	return &InspectorService{engine: e}
}

func (s *InspectorService) Rules() []engine.Rule { return s.engine.Rules() }

func (s *InspectorService) Dump() string { return s.engine.Dump() }
