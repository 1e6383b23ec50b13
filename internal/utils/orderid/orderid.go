package orderid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format builds a gateway order id of the form <prefix>_<requestID>_<unixMillis>.
func Format(prefix string, requestID uint, at time.Time) string {
	return fmt.Sprintf("%s_%d_%d", prefix, requestID, at.UnixMilli())
}

// Parse extracts the request id from the last two fields, so the prefix may
// itself contain underscores. The prefix is not checked.
func Parse(orderID string) (uint, error) {
	tsSep := strings.LastIndex(orderID, "_")
	if tsSep < 0 {
		return 0, fmt.Errorf("order id %q: expected <prefix>_<id>_<timestamp>", orderID)
	}
	idSep := strings.LastIndex(orderID[:tsSep], "_")
	if idSep <= 0 {
		return 0, fmt.Errorf("order id %q: expected <prefix>_<id>_<timestamp>", orderID)
	}

	id, err := strconv.ParseUint(orderID[idSep+1:tsSep], 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("order id %q: invalid request id", orderID)
	}
	if _, err := strconv.ParseInt(orderID[tsSep+1:], 10, 64); err != nil {
		return 0, fmt.Errorf("order id %q: invalid timestamp", orderID)
	}
	return uint(id), nil
}
