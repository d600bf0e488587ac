package intint

import "testing"
import "github.com/stretchr/testify/assert"

func TestAddCountIterate(x *testing.T) {
	t := assert.New(x)
	b, err := AnonBpTree()
	t.Nil(err)
	defer b.Delete()
	t.Nil(b.Add(2, 0))
	t.Nil(b.Add(1, 0))
	t.Nil(b.Add(2, 1))
	t.Equal(3, b.Size())
	count, err := b.Count(2)
	t.Nil(err)
	t.Equal(2, count)
	has, err := b.Has(3)
	t.Nil(err)
	t.False(has)
	keys := make([]int32, 0, 3)
	err = Do(b.Iterate, func(key, value int32) error {
		keys = append(keys, key)
		return nil
	})
	t.Nil(err)
	t.Equal([]int32{1, 2, 2}, keys)
}
