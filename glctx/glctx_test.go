package glctx_test

import (
	"sync"
	"testing"

	"github.com/bloeys/learnopengl/glctx"
	"github.com/stretchr/testify/assert"
)

func TestReleaseQueueDrain(t *testing.T) {

	q := &glctx.ReleaseQueue{}
	q.QueueProgramRelease(3)
	q.QueueProgramRelease(0)
	q.QueueProgramRelease(7)
	assert.Equal(t, 2, q.Len())

	deleted := []uint32{}
	n := q.Drain(func(program uint32) { deleted = append(deleted, program) })

	assert.Equal(t, 2, n)
	assert.Equal(t, []uint32{3, 7}, deleted)
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 0, q.Drain(func(uint32) { t.Fatal("queue should be empty") }))
}

func TestReleaseQueueConcurrentQueue(t *testing.T) {

	q := &glctx.ReleaseQueue{}

	wg := sync.WaitGroup{}
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id uint32) {
			defer wg.Done()
			q.QueueProgramRelease(id)
		}(uint32(i))
	}
	wg.Wait()

	seen := map[uint32]bool{}
	q.Drain(func(program uint32) { seen[program] = true })
	assert.Len(t, seen, 50)
}
