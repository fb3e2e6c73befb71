package bril

import (
	"fmt"
	"strings"
)

// DuplicateFunctionError reports function names defined more than once,
// either within a single unit or across merged modules. Each duplicated
// name appears once in Names.
type DuplicateFunctionError struct {
	Names []string
}

// Error implements the error interface.
func (e *DuplicateFunctionError) Error() string {
	return fmt.Sprintf("function(s) defined twice: %s", strings.Join(e.Names, ", "))
}

// DuplicateNames returns each function name that occurs more than once,
// in order of first occurrence.
func DuplicateNames(functions []Function) []string {
	counts := make(map[string]int, len(functions))
	for _, f := range functions {
		counts[f.Name]++
	}

	var dups []string
	reported := make(map[string]struct{})
	for _, f := range functions {
		if counts[f.Name] < 2 {
			continue
		}
		if _, ok := reported[f.Name]; ok {
			continue
		}
		reported[f.Name] = struct{}{}
		dups = append(dups, f.Name)
	}
	return dups
}
