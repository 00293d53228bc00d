package domain

import "time"

// Project is the top-level grouping of related model-development work.
//
// Records are created once and never updated nor deleted.
type Project struct {
	ProjectId   string
	ProjectName string
	Description *string
	CreatedAt   time.Time
}

func (p *Project) Equal(o *Project) bool {
	if (p == nil) || (o == nil) {
		return (p == nil) && (o == nil)
	}
	return p.ProjectId == o.ProjectId &&
		p.ProjectName == o.ProjectName &&
		equalTextPtr(p.Description, o.Description) &&
		p.CreatedAt.Equal(o.CreatedAt)
}

// ProjectSpec is the insertable shape of Project.
//
// Identifier and creation timestamp are assigned by the storage layer.
type ProjectSpec struct {
	ProjectName string
	Description *string
}

func equalTextPtr(a, b *string) bool {
	if (a == nil) || (b == nil) {
		return (a == nil) && (b == nil)
	}
	return *a == *b
}
