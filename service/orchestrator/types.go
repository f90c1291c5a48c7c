package orchestrator

import (
	"io"

	"github.com/elC0mpa/azure-advisor/config"
	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/advisor"
)

type service struct {
	advisor advisor.AdvisorService
	cfg     *config.Config
	out     io.Writer
}

type OrchestratorService interface {
	Orchestrate(model.Flags) error
}
