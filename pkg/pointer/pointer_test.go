package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zestagio/dev-server/pkg/pointer"
)

func TestPtrWithZeroAsNil(t *testing.T) {
	assert.Nil(t, pointer.PtrWithZeroAsNil(""))
	assert.Nil(t, pointer.PtrWithZeroAsNil(0))
	assert.Nil(t, pointer.PtrWithZeroAsNil([3]int{}))
	assert.Nil(t, pointer.PtrWithZeroAsNil((*struct{ string })(nil)))

	assert.NotNil(t, pointer.PtrWithZeroAsNil("42"))
	assert.NotNil(t, pointer.PtrWithZeroAsNil(42))
	assert.NotNil(t, pointer.PtrWithZeroAsNil([3]int{1}))
	assert.NotNil(t, pointer.PtrWithZeroAsNil(new(struct{ string })))

	local := "42"
	assert.Equal(t, &local, pointer.PtrWithZeroAsNil(local))
}
