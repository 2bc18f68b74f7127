package response

import "servicios_ili/internal/domain/entities"

// TaskPatchResponse is the updated task plus the budget-offer signal raised
// by the lifecycle manager when the task transitions into Finalizado.
type TaskPatchResponse struct {
	entities.Task
	OfferBudget bool `json:"offer_budget"`
}

func FromTaskPatch(t entities.Task, offerBudget bool) TaskPatchResponse {
	return TaskPatchResponse{Task: t, OfferBudget: offerBudget}
}
