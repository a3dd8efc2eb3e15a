package utils

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// GenerateOrderNumber builds a human-readable, globally unique order
// number: ORD-<epoch millis, base36>-<random base36>. Uniqueness is backed
// by the unique index on orders.order_number.
func GenerateOrderNumber() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	rnd := strconv.FormatInt(rand.Int63n(36*36*36*36*36), 36)
	for len(rnd) < 5 {
		rnd = "0" + rnd
	}
	return "ORD-" + strings.ToUpper(ts) + "-" + strings.ToUpper(rnd)
}
