// Package identifier generates the human-readable ids shown to customers.
package identifier

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	ApplicationPrefix = "APP-"
	ClaimPrefix       = "CL-"
)

// suffixLen keeps ids short while leaving ~41 random bits per millisecond.
const suffixLen = 8

var now = time.Now

// NewApplicationID returns an id of the form APP-<base36 ms><base36 random>.
func NewApplicationID() string {
	return generate(ApplicationPrefix)
}

// NewClaimID returns an id of the form CL-<base36 ms><base36 random>.
func NewClaimID() string {
	return generate(ClaimPrefix)
}

func generate(prefix string) string {
	ts := strconv.FormatInt(now().UnixMilli(), 36)
	return strings.ToUpper(prefix + ts + randomSuffix())
}

func randomSuffix() string {
	u := uuid.New()
	var n uint64
	for _, b := range u[:8] {
		n = n<<8 | uint64(b)
	}
	s := strconv.FormatUint(n, 36)
	if len(s) > suffixLen {
		s = s[:suffixLen]
	}
	for len(s) < suffixLen {
		s = "0" + s
	}
	return s
}
