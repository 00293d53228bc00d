package domain

import "time"

// Experiment is one recorded training/evaluation run for a model version.
//
// Evaluations and ArtifactFilePaths are the only mutable fields;
// both are updated by merge (see JsonMap.Merge), never replaced blindly.
type Experiment struct {
	ExperimentId      string
	ModelId           string
	ModelVersionId    string
	Parameters        JsonMap
	TrainingDataset   *string
	ValidationDataset *string
	TestDataset       *string
	Evaluations       JsonMap
	ArtifactFilePaths JsonMap
	CreatedAt         time.Time
}

func (e *Experiment) Equal(o *Experiment) bool {
	if (e == nil) || (o == nil) {
		return (e == nil) && (o == nil)
	}
	return e.ExperimentId == o.ExperimentId &&
		e.ModelId == o.ModelId &&
		e.ModelVersionId == o.ModelVersionId &&
		e.Parameters.Equal(o.Parameters) &&
		equalTextPtr(e.TrainingDataset, o.TrainingDataset) &&
		equalTextPtr(e.ValidationDataset, o.ValidationDataset) &&
		equalTextPtr(e.TestDataset, o.TestDataset) &&
		e.Evaluations.Equal(o.Evaluations) &&
		e.ArtifactFilePaths.Equal(o.ArtifactFilePaths) &&
		e.CreatedAt.Equal(o.CreatedAt)
}

// ExperimentSpec is the insertable shape of Experiment.
type ExperimentSpec struct {
	ModelId           string
	ModelVersionId    string
	Parameters        JsonMap
	TrainingDataset   *string
	ValidationDataset *string
	TestDataset       *string
	Evaluations       JsonMap
	ArtifactFilePaths JsonMap
}
