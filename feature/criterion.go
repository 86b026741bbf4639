package feature

import (
	"fmt"
)

/*
Criterion represents a constraint on an attribute.

Its SatisfiedBy method takes a sample and returns a boolean indicating if
the sample's value for the attribute satisfies the criterion.

Its Attribute method returns the attribute on which the criterion is applied.
*/
type Criterion interface {
	Attribute() Attribute
	SatisfiedBy(sample Sample) (bool, error)
}

/*
Sample is an interface for something that can satisfy a Criterion.

Its ValueFor method returns the value corresponding to the attribute
passed as parameter.
*/
type Sample interface {
	ValueFor(Attribute) (string, error)
}

/*
ValueCriterion represents a constraint on an attribute to take a specific
value.

Its Value method returns the value to which the attribute is constrained.
*/
type ValueCriterion interface {
	Criterion
	Value() string
}

type valueCriterion struct {
	attribute Attribute
	value     string
}

/*
NewValueCriterion takes an attribute and a value and returns a
ValueCriterion satisfied by samples whose value for the attribute equals the
given one.
*/
func NewValueCriterion(a Attribute, value string) ValueCriterion {
	return &valueCriterion{a, value}
}

/*
Attribute returns the attribute to which the constraint applies.
*/
func (vc *valueCriterion) Attribute() Attribute {
	return vc.attribute
}

/*
SatisfiedBy receives a sample as parameter and returns true if the sample's
value for the attribute equals the value on the criterion, false otherwise.
An error is returned if the sample cannot provide a value for the attribute.
*/
func (vc *valueCriterion) SatisfiedBy(sample Sample) (bool, error) {
	val, err := sample.ValueFor(vc.attribute)
	if err != nil {
		return false, err
	}
	return vc.value == val, nil
}

func (vc *valueCriterion) Value() string {
	return vc.value
}

func (vc *valueCriterion) String() string {
	return fmt.Sprintf("%s is %s", vc.attribute.Name(), vc.value)
}
