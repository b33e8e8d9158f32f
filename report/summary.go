package report

import (
	"fmt"
	"io"

	"github.com/hupe1980/fitgo/regress"
)

// WriteSummary prints the fitted coefficients in the canonical two-line form:
//
//	slope: <float>
//	y_intercept: <float>
func WriteSummary(w io.Writer, coef regress.Coefficients) error {
	if _, err := fmt.Fprintf(w, "slope: %v\n", coef.Slope); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "y_intercept: %v\n", coef.Intercept)
	return err
}
