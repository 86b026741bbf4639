package tree

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrCannotPredictFromSample is the error returned by the Predict method of a tree
when the prediction cannot be made because the tree itself cannot make
a prediction for that kind of sample, as opposed to cases where values
for an attribute cannot be obtained for example. It happens when the
sample takes a value for a split's attribute that no training example
reaching that split took.
*/
const ErrCannotPredictFromSample = PredictionError("no prediction available for this kind of sample")

func (pe PredictionError) Error() string {
	return string(pe)
}
