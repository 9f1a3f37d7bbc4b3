// Package classlens analyzes the impact of AI tool usage on student
// academic performance from a fixed-schema CSV dataset.
//
// Usage:
//
//	records, err := dataset.Load("ai_impact_student_performance_dataset.csv")
//	outcome, err := analysis.Run(analysis.Config{
//	    Input:     "ai_impact_student_performance_dataset.csv",
//	    OutputDir: "outputs",
//	})
//
// The pipeline loads and validates the records, derives missing pass/banding
// fields, computes group aggregates, correlations, and an AI-user vs
// non-user t-test, then renders twelve PNG figures and a text report.
//
// All computation is local and single-pass — the pipeline never calls any
// external service and keeps no state between runs.
package classlens
