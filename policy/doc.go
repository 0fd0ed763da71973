// Package policy holds the end-of-run rules that can reject a pipeline run
// which otherwise completed, such as failing when warnings were reported.
package policy
