package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olyamironova/matching-core/internal/domain"
)

func TestStopQueueRemoveFromHead(t *testing.T) {
	q := NewStopQueue(d("15"))
	q.Append(stopOrder("a", domain.Buy, "1", "15"))
	q.Append(stopOrder("b", domain.Buy, "1", "15"))

	assert.Equal(t, "a", q.RemoveFromHead().ID)
	assert.Equal(t, "b", q.RemoveFromHead().ID)
	assert.Nil(t, q.RemoveFromHead())
	assert.Equal(t, 0, q.Len())
}

func TestStopQueueRemoveByID(t *testing.T) {
	q := NewStopQueue(d("15"))
	q.Append(stopOrder("a", domain.Buy, "1", "15"))
	q.Append(stopOrder("b", domain.Buy, "1", "15"))
	q.Append(stopOrder("c", domain.Buy, "1", "15"))

	removed := q.Remove("b")
	assert.Equal(t, "b", removed.ID)
	assert.Nil(t, q.Remove("unknown"))

	var ids []string
	for _, o := range q.Orders() {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)
}
