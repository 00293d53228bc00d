package domain

import "time"

// Model is a named machine-learning model belonging to exactly one Project.
//
// ModelName is unique within its project, not globally.
type Model struct {
	ModelId     string
	ProjectId   string
	ModelName   string
	Description *string
	CreatedAt   time.Time
}

func (m *Model) Equal(o *Model) bool {
	if (m == nil) || (o == nil) {
		return (m == nil) && (o == nil)
	}
	return m.ModelId == o.ModelId &&
		m.ProjectId == o.ProjectId &&
		m.ModelName == o.ModelName &&
		equalTextPtr(m.Description, o.Description) &&
		m.CreatedAt.Equal(o.CreatedAt)
}

// ModelSpec is the insertable shape of Model.
type ModelSpec struct {
	ProjectId   string
	ModelName   string
	Description *string
}
