package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
)

type ReportDelayCommandHandler struct {
	runner driverActionRunner
}

func NewReportDelayCommandHandler(uowFactory ShipmentUoWFactory) ReportDelayCommandHandler {
	return ReportDelayCommandHandler{runner: newDriverActionRunner(uowFactory)}
}

func (h ReportDelayCommandHandler) Handle(ctx context.Context, command ReportDelayCommand) (*shipment.Shipment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return h.runner.run(ctx, command.driverTarget, shipment.ActionReportDelay, func(s *shipment.Shipment, at time.Time) error {
		return s.ReportDelay(command.Reason(), command.Notes(), at)
	})
}
