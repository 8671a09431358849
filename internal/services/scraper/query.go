package scraper

import (
	"fmt"

	"github.com/ternarybob/scrutor/internal/common"
)

// BuildSearchQuery renders one topic plus an optional star range into the
// forge search syntax. A half-open range uses the >= / <= qualifiers; both
// bounds together use the min..max form.
func BuildSearchQuery(topic string, stars common.StarRange) string {
	query := fmt.Sprintf("topic:%s", topic)

	switch {
	case stars.Min != nil && stars.Max != nil:
		query += fmt.Sprintf(" stars:%d..%d", *stars.Min, *stars.Max)
	case stars.Min != nil:
		query += fmt.Sprintf(" stars:>=%d", *stars.Min)
	case stars.Max != nil:
		query += fmt.Sprintf(" stars:<=%d", *stars.Max)
	}
	return query
}
