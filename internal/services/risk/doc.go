/*
Package risk scores transactions for the fraud dashboard.

Two policies exist and are intentionally kept apart:

  - AmountThresholdPolicy is deterministic and scores amounts entered by a
    user: >1000 → 85 (flagged), >500 → 65, >250 → 45, otherwise 25.
  - DemoDataPolicy is randomized and only seeds sample data: about 15% of
    draws are flagged with a score in [70,99], the rest score in [0,64].

Whether the two should ever agree is an open product decision; until then
callers pick the policy explicitly.

Usage:

	policy := risk.NewAmountThresholdPolicy()
	assessment, err := policy.Classify(1200)
	if errors.Is(err, apperrors.ErrInvalidAmount) {
	    // reject the submission
	}
*/
package risk
