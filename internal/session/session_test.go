package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWatcher_ExpireOnce(t *testing.T) {
	w := NewWatcher()
	assert.False(t, w.Expired())

	select {
	case <-w.Done():
		t.Fatal("Done must not be closed before Expire")
	default:
	}

	w.Expire()
	assert.True(t, w.Expired())

	select {
	case <-w.Done():
	default:
		t.Fatal("Done must be closed after Expire")
	}

	// second Expire must not panic on double close
	w.Expire()
	assert.True(t, w.Expired())
}
