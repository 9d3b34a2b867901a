// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GradeResult is the predicate function for graderesult builders.
type GradeResult func(*sql.Selector)

// GradingJob is the predicate function for gradingjob builders.
type GradingJob func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)
