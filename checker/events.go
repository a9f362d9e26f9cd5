package checker

import "github.com/lukemcguire/nistcheck/result"

// CheckEvent reports progress for a single checked URL.
type CheckEvent struct {
	Index  int // 1-based position in the check order
	Total  int
	Result result.CheckResult
}
