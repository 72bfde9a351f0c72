// SPDX-License-Identifier: MIT

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsSentinel(t *testing.T) {
	err := Wrapf(ErrNotFound, "read %s", "std_msgs/Header")
	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrExists))
	assert.Contains(t, err.Error(), "std_msgs/Header")
}

func TestMarkMatchesSentinel(t *testing.T) {
	err := Mark(fmt.Errorf("open Point.msg: no such file"), ErrNotFound)
	assert.True(t, Is(err, ErrNotFound))
}

func TestHints(t *testing.T) {
	err := WithHint(ErrUnsupported, "use ros1 or ros2")
	assert.Equal(t, []string{"use ros1 or ros2"}, GetAllHints(err))
}
