package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecordFieldState(t *testing.T) {
	var rec Record
	assert.False(t, rec.HasDate())
	assert.False(t, rec.HasAmount())
	assert.False(t, rec.IsClean())

	rec.Date = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	rec.Amount = NewAmount(decimal.NewFromInt(10))
	assert.True(t, rec.IsClean())
}

func TestRecordFlowDirection(t *testing.T) {
	inflow := Record{Amount: NewAmount(decimal.NewFromInt(100))}
	outflow := Record{Amount: NewAmount(decimal.NewFromInt(-50))}
	zero := Record{Amount: NewAmount(decimal.Zero)}
	unset := Record{}

	assert.True(t, inflow.IsInflow())
	assert.False(t, inflow.IsOutflow())
	assert.True(t, outflow.IsOutflow())
	assert.False(t, zero.IsInflow())
	assert.False(t, zero.IsOutflow())
	assert.False(t, unset.IsInflow())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "raw", StatusRaw.String())
	assert.Equal(t, "cleaned", StatusCleaned.String())
	assert.Equal(t, "categorized", StatusCategorized.String())
	assert.Equal(t, "unknown", Status(42).String())
}

func TestRecordSetLen(t *testing.T) {
	set := RecordSet{Status: StatusRaw}
	assert.True(t, set.Empty())
	assert.Zero(t, set.Len())

	set.Records = append(set.Records, Record{})
	assert.False(t, set.Empty())
	assert.Equal(t, 1, set.Len())
}
