package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

type ISanitizer interface {
	Sanitize(html string) string
}

var (
	policy *bluemonday.Policy
	once   sync.Once
)

type htmlSanitizer struct {
	policy *bluemonday.Policy
}

// New returns the process-wide sanitizer. The underlying policy is
// built once and is safe for concurrent use.
func New() ISanitizer {
	once.Do(func() {
		policy = bluemonday.UGCPolicy()
	})

	return &htmlSanitizer{policy: policy}
}

func (s *htmlSanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
