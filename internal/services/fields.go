package services

import (
	"fmt"
	"sort"
	"strings"

	"jobly/internal/apperrors"
)

// pickFields keeps only whitelisted columns from a partial-update payload.
// Underscore-prefixed keys are transport-only (the statement builder drops
// them too) and are ignored without complaint; any other unknown key is a
// violation. An empty result after filtering is also a violation, since an
// update with zero SET clauses must never reach storage.
func pickFields(fields map[string]any, allowed ...string) (map[string]any, error) {
	ok := make(map[string]bool, len(allowed))
	for _, col := range allowed {
		ok[col] = true
	}

	picked := make(map[string]any, len(fields))
	var violations []string
	for col, v := range fields {
		if strings.HasPrefix(col, "_") {
			continue
		}
		if !ok[col] {
			violations = append(violations, fmt.Sprintf("%s is not an updatable field", col))
			continue
		}
		picked[col] = v
	}
	sort.Strings(violations)

	if len(violations) > 0 {
		return nil, apperrors.Validation(violations)
	}
	if len(picked) == 0 {
		return nil, apperrors.BadRequest("no fields to update")
	}
	return picked, nil
}
