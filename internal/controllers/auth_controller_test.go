package controllers

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginAttempt_Blocked(t *testing.T) {
	now := time.Now()
	attempt := &loginAttempt{LastAttempt: now}

	for i := 0; i < maxLoginAttempts-1; i++ {
		attempt.fail(now)
	}
	assert.False(t, attempt.blocked(now))

	attempt.fail(now)
	assert.True(t, attempt.blocked(now.Add(30*time.Second)))

	// 一分钟后重置
	assert.False(t, attempt.blocked(now.Add(time.Minute)))
	assert.Zero(t, attempt.Count)
}

func TestLoginAttempt_ConcurrentFailures(t *testing.T) {
	now := time.Now()
	attempt := &loginAttempt{LastAttempt: now}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			attempt.fail(now)
		}()
		go func() {
			defer wg.Done()
			attempt.blocked(now)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, attempt.Count)
	assert.True(t, attempt.blocked(now))
}
