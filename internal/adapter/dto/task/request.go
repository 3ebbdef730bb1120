package task

import "github.com/johnquangdev/meeting-intelligence/pkg/nullable"

// ListTasksRequest represents query parameters for listing tasks
type ListTasksRequest struct {
	Status string `query:"status" validate:"omitempty,max=50"`
	Skip   int    `query:"skip" validate:"min=0"`
	Limit  int    `query:"limit" validate:"min=1,max=1000"`
}

// DefaultListTasksRequest returns the paging used when the client sends none
func DefaultListTasksRequest() ListTasksRequest {
	return ListTasksRequest{Skip: 0, Limit: 50}
}

// UpdateTaskRequest is a partial update. A field left out of the body is not touched,
// a field sent as null is cleared where the column allows it.
type UpdateTaskRequest struct {
	Description nullable.Value[string] `json:"description" validate:"omitempty,min=1" swaggertype:"string"`
	Assignee    nullable.Value[string] `json:"assignee" validate:"omitempty,max=255" swaggertype:"string"`
	DueDate     nullable.Value[string] `json:"due_date" validate:"omitempty,datetime=2006-01-02" swaggertype:"string" example:"2024-06-30"`
	Priority    nullable.Value[string] `json:"priority" validate:"omitempty,max=50" swaggertype:"string"`
	Status      nullable.Value[string] `json:"status" validate:"omitempty,max=50" swaggertype:"string"`
}
