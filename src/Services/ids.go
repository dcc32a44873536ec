package Services

import (
	"strconv"
	"sync/atomic"
	"time"
)

var lastId int64

// newId returns a timestamp-derived id, bumped past the previous one
// when two calls land on the same nanosecond.
func newId() string {
	for {
		prev := atomic.LoadInt64(&lastId)
		next := time.Now().UnixNano()
		if next <= prev {
			next = prev + 1
		}
		if atomic.CompareAndSwapInt64(&lastId, prev, next) {
			return strconv.FormatInt(next, 10)
		}
	}
}

func newNotificationId() string {
	return "notif-" + newId()
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
