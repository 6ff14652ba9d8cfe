package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgingBucketFor(t *testing.T) {
	asOf := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	due := func(daysAgo int) *time.Time {
		d := asOf.AddDate(0, 0, -daysAgo)
		return &d
	}

	tests := []struct {
		name       string
		dueDate    *time.Time
		wantBucket string
		wantDays   int
	}{
		{name: "no due date is current", dueDate: nil, wantBucket: BucketCurrent, wantDays: 0},
		{name: "due in the future is current", dueDate: due(-10), wantBucket: BucketCurrent, wantDays: 0},
		{name: "due today is current", dueDate: due(0), wantBucket: BucketCurrent, wantDays: 0},
		{name: "one day late", dueDate: due(1), wantBucket: Bucket1To30, wantDays: 1},
		{name: "thirty days late", dueDate: due(30), wantBucket: Bucket1To30, wantDays: 30},
		{name: "thirty-one days late", dueDate: due(31), wantBucket: Bucket31To60, wantDays: 31},
		{name: "sixty days late", dueDate: due(60), wantBucket: Bucket31To60, wantDays: 60},
		{name: "sixty-one days late", dueDate: due(61), wantBucket: BucketOver60, wantDays: 61},
		{name: "half a year late", dueDate: due(183), wantBucket: BucketOver60, wantDays: 183},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, days := AgingBucketFor(tt.dueDate, asOf)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}
