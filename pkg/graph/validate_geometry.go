package graph

import "fmt"

// ---------------------------------------------------------------------------
// Tier 2 — Geometric validation (errors + warnings)
// ---------------------------------------------------------------------------

// validateGeometry runs all Tier 2 geometric checks.
// Returns errors (blocking) and warnings (advisory) separately.
func validateGeometry(g *DesignGraph) ([]ValidationError, []ValidationWarning) {
	var errs []ValidationError
	var warnings []ValidationWarning

	errs = append(errs, validateNonZeroDimensions(g)...)
	errs = append(errs, validateSegmentCounts(g)...)

	return errs, warnings
}

// validateNonZeroDimensions checks that every BoxData has positive X, Y, Z
// and every CylinderData has a positive height and radius.
func validateNonZeroDimensions(g *DesignGraph) []ValidationError {
	var errs []ValidationError

	for _, node := range g.Nodes {
		switch d := node.Data.(type) {
		case BoxData:
			if d.Dimensions.X <= 0 {
				errs = append(errs, ValidationError{
					NodeID:   node.ID,
					Message:  fmt.Sprintf("box dimension X is %.4f, must be positive", d.Dimensions.X),
					Severity: SeverityError,
				})
			}
			if d.Dimensions.Y <= 0 {
				errs = append(errs, ValidationError{
					NodeID:   node.ID,
					Message:  fmt.Sprintf("box dimension Y is %.4f, must be positive", d.Dimensions.Y),
					Severity: SeverityError,
				})
			}
			if d.Dimensions.Z <= 0 {
				errs = append(errs, ValidationError{
					NodeID:   node.ID,
					Message:  fmt.Sprintf("box dimension Z is %.4f, must be positive", d.Dimensions.Z),
					Severity: SeverityError,
				})
			}

		case CylinderData:
			if d.Height <= 0 {
				errs = append(errs, ValidationError{
					NodeID:   node.ID,
					Message:  fmt.Sprintf("cylinder height is %.4f, must be positive", d.Height),
					Severity: SeverityError,
				})
			}
			if d.Radius <= 0 {
				errs = append(errs, ValidationError{
					NodeID:   node.ID,
					Message:  fmt.Sprintf("cylinder radius is %.4f, must be positive", d.Radius),
					Severity: SeverityError,
				})
			}
		}
	}

	return errs
}

// validateSegmentCounts checks that an explicit cylinder segment count, when
// given, is large enough to bound a solid (a 1- or 2-gon prism degenerates).
func validateSegmentCounts(g *DesignGraph) []ValidationError {
	var errs []ValidationError

	for _, node := range g.Nodes {
		cd, ok := node.Data.(CylinderData)
		if !ok {
			continue
		}
		if cd.Segments != 0 && cd.Segments < 3 {
			errs = append(errs, ValidationError{
				NodeID:   node.ID,
				Message:  fmt.Sprintf("cylinder segment count %d is below the minimum of 3", cd.Segments),
				Severity: SeverityError,
			})
		}
	}

	return errs
}
